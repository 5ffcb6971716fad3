package dto

import (
	"encoding/json"
	"testing"
)

func TestAmountLenientDecoding(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`6.5`, 6.5},
		{`"6.5"`, 6.5},
		{`" 170 "`, 170},
		{`""`, 0},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
	}

	for _, tc := range cases {
		var a Amount
		if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", tc.in, err)
			continue
		}
		if a.Float() != tc.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, a.Float(), tc.want)
		}
	}
}

func TestTripRecordToDomainAssignsLegIDs(t *testing.T) {
	req := TripRecordRequest{
		Legs: []TripLegRequest{
			{From: "Brno", To: "Ostrava", Km: 170},
			{From: "Ostrava", To: "Brno"},
		},
	}

	r := req.ToDomain("basic")
	if len(r.Legs) != 2 {
		t.Fatalf("got %d legs", len(r.Legs))
	}
	if r.Legs[0].ID != 1 || r.Legs[1].ID != 2 {
		t.Errorf("leg ids = %d, %d", r.Legs[0].ID, r.Legs[1].ID)
	}
	if r.Legs[0].Km != 170 || r.Legs[0].KmRaw != 170 {
		t.Errorf("leg distance not carried over: %+v", r.Legs[0])
	}
	if r.Legs[1].Km != 0 {
		t.Errorf("empty distance should stay zero: %+v", r.Legs[1])
	}
}
