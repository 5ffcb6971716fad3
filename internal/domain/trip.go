package domain

import "fmt"

// FormVariant selects one of the two fixed report templates.
type FormVariant string

const (
	VariantBasic    FormVariant = "basic"
	VariantExtended FormVariant = "extended"
)

// ParseVariant maps a request string onto a FormVariant.
// The empty string defaults to the basic template.
func ParseVariant(s string) (FormVariant, error) {
	switch s {
	case "", string(VariantBasic):
		return VariantBasic, nil
	case string(VariantExtended):
		return VariantExtended, nil
	}
	return "", fmt.Errorf("unknown form variant %q", s)
}

// TripLeg is one directional segment of a trip.
//
// Km holds the adjusted/display distance (surcharge applied, rounded to a
// multiple of 5). KmRaw holds the unadjusted resolved distance, or the same
// value as Km after a manual override. Both are zero until a resolution or a
// manual entry happens.
type TripLeg struct {
	ID         int
	From       string
	To         string
	Date       string
	DepartTime string
	ArriveTime string
	Km         float64
	KmRaw      float64
}

// TripRecord is an ordered sequence of legs plus the scalar configuration
// and identity fields of one travel order. Leg order is iteration and
// rendering order; legs are never reordered implicitly.
type TripRecord struct {
	Variant FormVariant
	Legs    []TripLeg

	RatePerKm        float64
	SurchargePercent float64
	MealAllowance    float64
	Accommodation    float64
	OtherCosts       float64
	Advance          float64

	// Identity and trip metadata, opaque to the calculation core.
	FullName       string
	Address        string
	Department     string
	PersonalNumber string
	Phone          string
	BankAccount    string

	TripPurpose     string
	TripStart       string
	TripStartDate   string
	TripDestination string
	TripEndDate     string
	TripEnd         string
	Companions      string
	VehicleType     string
	VehiclePlate    string
	FreeFood        bool

	// Extended-variant fields.
	OPNumber      string
	WorkHoursFrom string
	WorkHoursTo   string
	ExpectedCosts float64
	AdvanceDate   string
	ReportDate    string

	lastLegID int
}

// AddLeg appends a leg to the record, assigning the next identifier from the
// record's monotonic counter. Identifiers are unique and never reused while
// the leg exists. The stored leg is returned for further mutation.
func (r *TripRecord) AddLeg(leg TripLeg) *TripLeg {
	r.lastLegID++
	leg.ID = r.lastLegID
	r.Legs = append(r.Legs, leg)
	return &r.Legs[len(r.Legs)-1]
}

// Leg returns the leg with the given id, or nil when absent.
func (r *TripRecord) Leg(id int) *TripLeg {
	for i := range r.Legs {
		if r.Legs[i].ID == id {
			return &r.Legs[i]
		}
	}
	return nil
}

// RemoveLeg deletes the leg with the given id, preserving the order of the
// remaining legs. It reports whether a leg was removed.
func (r *TripRecord) RemoveLeg(id int) bool {
	for i := range r.Legs {
		if r.Legs[i].ID == id {
			r.Legs = append(r.Legs[:i], r.Legs[i+1:]...)
			return true
		}
	}
	return false
}

// AddReturnLeg appends a mirror of the identified leg with origin and
// destination swapped, carrying over the resolved distances.
func (r *TripRecord) AddReturnLeg(id int) (*TripLeg, error) {
	leg := r.Leg(id)
	if leg == nil {
		return nil, fmt.Errorf("add return leg: no leg with id %d", id)
	}
	if leg.From == "" || leg.To == "" {
		return nil, fmt.Errorf("add return leg: leg %d has empty endpoints", id)
	}

	return r.AddLeg(TripLeg{
		From:  leg.To,
		To:    leg.From,
		Km:    leg.Km,
		KmRaw: leg.KmRaw,
	}), nil
}

// SetManualKm records a user-entered distance on the identified leg.
// Manual overrides are stored as-is: raw and adjusted values are equal.
func (r *TripRecord) SetManualKm(id int, km float64) bool {
	leg := r.Leg(id)
	if leg == nil {
		return false
	}
	if km < 0 {
		km = 0
	}
	leg.Km = km
	leg.KmRaw = km
	return true
}
