package dto

import "travel-order-service/internal/domain"

type TripLegRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	DepartTime string `json:"depart_time"`
	ArriveTime string `json:"arrive_time"`
	Km         Amount `json:"km"`
}

type TripRecordRequest struct {
	Variant string           `json:"variant"`
	Legs    []TripLegRequest `json:"legs"`

	RatePerKm        Amount `json:"rate_per_km"`
	SurchargePercent Amount `json:"surcharge_percent"`
	MealAllowance    Amount `json:"meal_allowance"`
	Accommodation    Amount `json:"accommodation"`
	OtherCosts       Amount `json:"other_costs"`
	Advance          Amount `json:"advance"`

	FullName       string `json:"full_name"`
	Address        string `json:"address"`
	Department     string `json:"department"`
	PersonalNumber string `json:"personal_number"`
	Phone          string `json:"phone"`
	BankAccount    string `json:"bank_account"`

	TripPurpose     string `json:"trip_purpose"`
	TripStart       string `json:"trip_start"`
	TripStartDate   string `json:"trip_start_date"`
	TripDestination string `json:"trip_destination"`
	TripEndDate     string `json:"trip_end_date"`
	TripEnd         string `json:"trip_end"`
	Companions      string `json:"companions"`
	VehicleType     string `json:"vehicle_type"`
	VehiclePlate    string `json:"vehicle_plate"`
	FreeFood        bool   `json:"free_food"`

	OPNumber      string `json:"op_number"`
	WorkHoursFrom string `json:"work_hours_from"`
	WorkHoursTo   string `json:"work_hours_to"`
	ExpectedCosts Amount `json:"expected_costs"`
	AdvanceDate   string `json:"advance_date"`
	ReportDate    string `json:"report_date"`
}

// ToDomain builds the domain record, assigning leg identifiers in request
// order. The variant string is validated separately by the handler.
func (req *TripRecordRequest) ToDomain(variant domain.FormVariant) *domain.TripRecord {
	r := &domain.TripRecord{
		Variant: variant,

		RatePerKm:        req.RatePerKm.Float(),
		SurchargePercent: req.SurchargePercent.Float(),
		MealAllowance:    req.MealAllowance.Float(),
		Accommodation:    req.Accommodation.Float(),
		OtherCosts:       req.OtherCosts.Float(),
		Advance:          req.Advance.Float(),

		FullName:       req.FullName,
		Address:        req.Address,
		Department:     req.Department,
		PersonalNumber: req.PersonalNumber,
		Phone:          req.Phone,
		BankAccount:    req.BankAccount,

		TripPurpose:     req.TripPurpose,
		TripStart:       req.TripStart,
		TripStartDate:   req.TripStartDate,
		TripDestination: req.TripDestination,
		TripEndDate:     req.TripEndDate,
		TripEnd:         req.TripEnd,
		Companions:      req.Companions,
		VehicleType:     req.VehicleType,
		VehiclePlate:    req.VehiclePlate,
		FreeFood:        req.FreeFood,

		OPNumber:      req.OPNumber,
		WorkHoursFrom: req.WorkHoursFrom,
		WorkHoursTo:   req.WorkHoursTo,
		ExpectedCosts: req.ExpectedCosts.Float(),
		AdvanceDate:   req.AdvanceDate,
		ReportDate:    req.ReportDate,
	}

	for _, leg := range req.Legs {
		added := r.AddLeg(domain.TripLeg{
			From:       leg.From,
			To:         leg.To,
			Date:       leg.Date,
			DepartTime: leg.DepartTime,
			ArriveTime: leg.ArriveTime,
		})
		if km := leg.Km.Float(); km > 0 {
			added.Km = km
			added.KmRaw = km
		}
	}

	return r
}
