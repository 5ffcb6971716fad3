package domain

import "testing"

func TestTripRecordLegIDsAreMonotonic(t *testing.T) {
	r := &TripRecord{}

	a := r.AddLeg(TripLeg{From: "Brno", To: "Praha"})
	b := r.AddLeg(TripLeg{From: "Praha", To: "Brno"})

	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a.ID, b.ID)
	}

	// Removing a leg must not free its identifier for reuse.
	if !r.RemoveLeg(b.ID) {
		t.Fatal("expected RemoveLeg to succeed")
	}
	c := r.AddLeg(TripLeg{From: "Brno", To: "Ostrava"})
	if c.ID != 3 {
		t.Fatalf("id after removal = %d, want 3", c.ID)
	}
}

func TestTripRecordRemoveLegPreservesOrder(t *testing.T) {
	r := &TripRecord{}
	r.AddLeg(TripLeg{From: "A", To: "B"})
	r.AddLeg(TripLeg{From: "B", To: "C"})
	r.AddLeg(TripLeg{From: "C", To: "D"})

	if !r.RemoveLeg(2) {
		t.Fatal("expected RemoveLeg to succeed")
	}

	if len(r.Legs) != 2 {
		t.Fatalf("len(Legs) = %d, want 2", len(r.Legs))
	}
	if r.Legs[0].From != "A" || r.Legs[1].From != "C" {
		t.Fatalf("unexpected leg order: %q, %q", r.Legs[0].From, r.Legs[1].From)
	}

	if r.RemoveLeg(99) {
		t.Fatal("expected RemoveLeg of unknown id to report false")
	}
}

func TestTripRecordAddReturnLeg(t *testing.T) {
	r := &TripRecord{}
	leg := r.AddLeg(TripLeg{From: "Brno", To: "Ostrava", Km: 170, KmRaw: 168})

	ret, err := r.AddReturnLeg(leg.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ret.From != "Ostrava" || ret.To != "Brno" {
		t.Fatalf("return leg endpoints = %q -> %q", ret.From, ret.To)
	}
	if ret.Km != 170 || ret.KmRaw != 168 {
		t.Fatalf("return leg distances = %v / %v, want 170 / 168", ret.Km, ret.KmRaw)
	}

	empty := r.AddLeg(TripLeg{})
	if _, err := r.AddReturnLeg(empty.ID); err == nil {
		t.Fatal("expected error for leg with empty endpoints")
	}
	if _, err := r.AddReturnLeg(42); err == nil {
		t.Fatal("expected error for unknown leg id")
	}
}

func TestTripRecordSetManualKm(t *testing.T) {
	r := &TripRecord{}
	leg := r.AddLeg(TripLeg{From: "Brno", To: "Praha"})

	if !r.SetManualKm(leg.ID, 205) {
		t.Fatal("expected SetManualKm to succeed")
	}
	if leg.Km != 205 || leg.KmRaw != 205 {
		t.Fatalf("manual override km = %v raw = %v, want both 205", leg.Km, leg.KmRaw)
	}

	// Negative input clamps to zero; km must never go negative.
	r.SetManualKm(leg.ID, -10)
	if leg.Km != 0 || leg.KmRaw != 0 {
		t.Fatalf("negative override km = %v raw = %v, want both 0", leg.Km, leg.KmRaw)
	}

	if r.SetManualKm(99, 10) {
		t.Fatal("expected SetManualKm of unknown id to report false")
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    FormVariant
		wantErr bool
	}{
		{"", VariantBasic, false},
		{"basic", VariantBasic, false},
		{"extended", VariantExtended, false},
		{"club", "", true},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVariant(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVariant(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
