package services

import (
	"fmt"
	"strconv"
	"time"

	"travel-order-service/internal/domain"
)

// Layout constants of the fixed regulatory form, in canvas units.
const (
	fontLabel     = 7.0
	fontValue     = 9.0
	fontHeader    = 12.0
	fontSubheader = 10.0
	fontTable     = 6.5
	fontTableBody = 7.0
	rowHeight     = 6.0
	summaryRow    = 7.0
	lineSpacing   = 7.0
)

// Labels are kept free of diacritics: the form renders with the base
// Latin-1 PDF fonts, matching the printed original.
type settlementColumn struct {
	label string
	width float64
}

// Fixed settlement-table columns. Widths are physical; no dynamic sizing.
var settlementColumns = []settlementColumn{
	{"Datum", 14},
	{"Odjezd-Prijezd", 30},
	{"hod.", 10},
	{"Dopr.", 12},
	{"km", 12},
	{"Jizdne Kc", 18},
	{"Stravne Kc", 18},
	{"Noclezne Kc", 18},
	{"Vedl. Kc", 16},
	{"Celkem Kc", 18},
	{"Upraveno", 18},
}

// ComposeReport lays out a finalized trip record as a Document.
//
// The basic variant is a single page; the extended variant appends one page
// of additional fields. The settlement table is assumed to fit on the first
// page together with the header: the composer does not paginate it for
// large leg counts. That is a known constraint of the fixed form, kept
// deliberately.
func ComposeReport(r *domain.TripRecord, totals domain.Totals) *domain.Document {
	doc := &domain.Document{}

	composeSettlementPage(doc.AddPage(), r, totals)
	if r.Variant == domain.VariantExtended {
		composeSupplementPage(doc.AddPage(), r)
	}

	return doc
}

// ExportFileName derives the artifact name from variant, destination and
// export date. The derivation is deterministic.
func ExportFileName(variant domain.FormVariant, destination string, at time.Time) string {
	if destination == "" {
		destination = "export"
	}
	return fmt.Sprintf("cestak_%s_%s_%s.pdf", variant, destination, at.Format("2006-01-02"))
}

// labeledField draws a small label, a value and an underline for the value,
// the way the paper form pairs captions with fill-in lines.
func labeledField(p *domain.Page, label, value string, labelX, valueX, y float64) {
	p.Text(labelX, y, fontLabel, false, domain.AlignLeft, label)
	p.Text(valueX, y, fontValue, false, domain.AlignLeft, value)
	p.Line(valueX, y+1, valueX+40, y+1)
}

func composeSettlementPage(p *domain.Page, r *domain.TripRecord, totals domain.Totals) {
	const margin = domain.CanvasMargin
	center := domain.CanvasWidth / 2

	p.Text(center, 15, fontHeader, true, domain.AlignCenter, "C E S T O V N I   P R I K A Z")

	// Identity block.
	y := 25.0
	const (
		labelX      = margin
		valueX      = 55.0
		rightLabelX = 115.0
		rightValueX = 155.0
	)

	labeledField(p, "Firma - razitko:", "", labelX, valueX-10, y)

	y += 8
	labeledField(p, "1. Prijmeni, jmeno, titul", r.FullName, labelX, valueX, y)
	labeledField(p, "Osobni cislo", r.PersonalNumber, rightLabelX, rightValueX, y)

	y += lineSpacing
	labeledField(p, "2. Bydliste", r.Address, labelX, valueX, y)
	labeledField(p, "Utvar", r.Department, rightLabelX, rightValueX, y)

	y += lineSpacing
	labeledField(p, "Telefon", r.Phone, rightLabelX, rightValueX, y)

	// Trip-metadata box with four labeled quadrants.
	y += 10
	boxW := domain.CanvasWidth - 2*margin
	p.Rect(margin, y, boxW, 16)

	colW := boxW / 4
	headers := []string{
		"Pocatek cesty (misto, datum, hodina)",
		"Misto jednani",
		"Ucel a prubeh cesty",
		"Konec cesty (misto, dat.)",
	}
	for i, h := range headers {
		p.Text(margin+colW*float64(i)+2, y+4, fontLabel, false, domain.AlignLeft, h)
		if i > 0 {
			p.Line(margin+colW*float64(i), y, margin+colW*float64(i), y+16)
		}
	}

	p.Text(margin+2, y+10, 8, false, domain.AlignLeft, r.TripStart)
	p.Text(margin+2, y+14, 8, false, domain.AlignLeft, formatFormDateTime(r.TripStartDate))
	p.Text(margin+colW+2, y+10, 8, false, domain.AlignLeft, r.TripDestination)
	p.Text(margin+colW*2+2, y+10, 8, false, domain.AlignLeft, r.TripPurpose)
	p.Text(margin+colW*3+2, y+10, 8, false, domain.AlignLeft, r.TripEnd)
	p.Text(margin+colW*3+2, y+14, 8, false, domain.AlignLeft, formatFormDateTime(r.TripEndDate))

	y += 20
	labeledField(p, "3. Spolucestujici", r.Companions, labelX, valueX, y)

	y += lineSpacing
	vehicleDesc := r.VehicleType
	if r.VehiclePlate != "" {
		vehicleDesc = fmt.Sprintf("%s, %s", r.VehicleType, r.VehiclePlate)
	}
	labeledField(p, "4. Urceny dopr. prostredek", vehicleDesc, labelX, valueX+20, y)

	// Settlement table.
	y += 15
	p.Text(center, y, fontSubheader, true, domain.AlignCenter, "V Y U C T O V A N I   P R A C O V N I   C E S T Y")

	y += 8
	y = composeSettlementTable(p, r, totals, y)

	// Advance and balance below the table.
	tableX := settlementTableX()
	y += 12
	p.Text(tableX+100, y, fontValue, false, domain.AlignLeft, fmt.Sprintf("Zaloha: %s Kc", formatAmount(r.Advance)))
	y += 6
	p.Text(tableX+100, y, fontValue, true, domain.AlignLeft, fmt.Sprintf("Doplatek / Preplatek: %s Kc", formatAmount(totals.GrandTotal)))

	y += 10
	p.Text(tableX+80, y, fontLabel, false, domain.AlignLeft, "Prohlasuji, ze jsem vsechny udaje uvedl uplne a spravne.")

	// Signature lines: traveler and approver.
	y += 15
	p.Line(margin+5, y, margin+55, y)
	p.Line(center+10, y, center+70, y)
	p.Text(margin+10, y+4, 6, false, domain.AlignLeft, "Datum a podpis pracovnika")
	p.Text(center+15, y+4, 6, false, domain.AlignLeft, "Schvalil (datum a podpis)")

	if r.BankAccount != "" {
		y += 12
		p.Text(margin, y, 8, true, domain.AlignLeft, fmt.Sprintf("Cislo meho uctu je: %s", r.BankAccount))
	}
}

func settlementTableWidth() float64 {
	var w float64
	for _, col := range settlementColumns {
		w += col.width
	}
	return w
}

// The table is centered horizontally on the page.
func settlementTableX() float64 {
	return (domain.CanvasWidth - settlementTableWidth()) / 2
}

// composeSettlementTable draws the header row, two stacked sub-rows per leg
// and the totals row. It returns the y coordinate below the table.
func composeSettlementTable(p *domain.Page, r *domain.TripRecord, totals domain.Totals, y float64) float64 {
	tableX := settlementTableX()
	cols := settlementColumns

	// Header row.
	cx := tableX
	for _, col := range cols {
		p.Rect(cx, y, col.width, 8)
		p.Text(cx+col.width/2, y+5, fontTable, true, domain.AlignCenter, col.label)
		cx += col.width
	}
	y += 8

	// One leg renders as two stacked sub-rows: departure and arrival share a
	// merged date cell, and the vehicle/distance/fare cells span both.
	for i := range r.Legs {
		leg := &r.Legs[i]
		fare := leg.Km * r.RatePerKm

		cx = tableX
		p.Rect(cx, y, cols[0].width, rowHeight*2)
		p.Text(cx+cols[0].width/2, y+4, fontTableBody, false, domain.AlignCenter, formatLegDate(leg.Date))
		cx += cols[0].width

		p.Rect(cx, y, cols[1].width, rowHeight)
		p.Text(cx+1, y+4, fontTableBody, false, domain.AlignLeft,
			trimJoin("Odj: ", leg.From, leg.DepartTime))
		cx += cols[1].width

		p.Rect(cx, y, cols[2].width, rowHeight*2)
		cx += cols[2].width

		p.Rect(cx, y, cols[3].width, rowHeight*2)
		p.Text(cx+cols[3].width/2, y+7, fontTableBody, false, domain.AlignCenter, r.VehicleType)
		cx += cols[3].width

		p.Rect(cx, y, cols[4].width, rowHeight*2)
		p.Text(cx+cols[4].width/2, y+7, fontTableBody, false, domain.AlignCenter, formatKm(leg.Km))
		cx += cols[4].width

		p.Rect(cx, y, cols[5].width, rowHeight*2)
		if fare != 0 {
			p.Text(cx+cols[5].width/2, y+7, fontTableBody, false, domain.AlignCenter, formatAmount(fare))
		}
		cx += cols[5].width

		for j := 6; j < len(cols); j++ {
			p.Rect(cx, y, cols[j].width, rowHeight*2)
			cx += cols[j].width
		}

		// Arrival sub-row under the departure description.
		y += rowHeight
		cx = tableX + cols[0].width
		p.Rect(cx, y, cols[1].width, rowHeight)
		p.Text(cx+1, y+4, fontTableBody, false, domain.AlignLeft,
			trimJoin("Prij: ", leg.To, leg.ArriveTime))

		y += rowHeight
	}

	// Totals row: the first four columns merge under one label; the
	// adjusted-total cell stays blank for manual annotation.
	subtotal := totals.TotalFare + r.MealAllowance + r.Accommodation + r.OtherCosts

	cx = tableX
	mergedW := cols[0].width + cols[1].width + cols[2].width + cols[3].width
	p.Rect(cx, y, mergedW, summaryRow)
	p.Text(cx+2, y+5, fontTableBody, true, domain.AlignLeft, "Celkem")
	cx += mergedW

	totalCells := []string{
		strconv.FormatFloat(totals.TotalKm, 'f', -1, 64),
		formatAmount(totals.TotalFare),
		nonzeroAmount(r.MealAllowance),
		nonzeroAmount(r.Accommodation),
		nonzeroAmount(r.OtherCosts),
		formatAmount(subtotal),
		"",
	}
	for j, val := range totalCells {
		w := cols[4+j].width
		p.Rect(cx, y, w, summaryRow)
		if val != "" {
			p.Text(cx+w/2, y+5, fontTableBody, true, domain.AlignCenter, val)
		}
		cx += w
	}

	return y + summaryRow
}

// composeSupplementPage lays out the extended variant's second page of
// association-specific fields with its own signature lines.
func composeSupplementPage(p *domain.Page, r *domain.TripRecord) {
	const margin = domain.CanvasMargin
	center := domain.CanvasWidth / 2

	p.Text(center, 20, fontHeader, true, domain.AlignCenter, "C B a S  -  D O P L N U J I C I   U D A J E")

	field := func(label, value string, y float64) {
		p.Text(margin, y, fontLabel, false, domain.AlignLeft, label)
		p.Text(margin+55, y, fontValue, false, domain.AlignLeft, value)
		p.Line(margin+55, y+1, margin+140, y+1)
	}

	expected := ""
	if r.ExpectedCosts != 0 {
		expected = formatAmount(r.ExpectedCosts) + " Kc"
	}

	y := 35.0
	field("Cislo OP:", r.OPNumber, y)
	y += lineSpacing + 2
	field("Pracovni doba od:", r.WorkHoursFrom, y)
	y += lineSpacing + 2
	field("Pracovni doba do:", r.WorkHoursTo, y)
	y += lineSpacing + 2
	field("Predpokladana castka vydaju:", expected, y)
	y += lineSpacing + 2
	field("Zaloha vyplacena dne:", formatFormDate(r.AdvanceDate), y)
	y += lineSpacing + 2
	field("Zprava podana dne:", formatFormDate(r.ReportDate), y)

	y += 20
	p.Line(margin+5, y, margin+55, y)
	p.Line(center+10, y, center+70, y)
	p.Text(margin+10, y+4, 6, false, domain.AlignLeft, "Podpis pracovnika")
	p.Text(center+15, y+4, 6, false, domain.AlignLeft, "Schvalil (datum a podpis)")
}

// formatAmount prints a money value with no decimal places.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// nonzeroAmount prints a money value, or nothing at all for zero, so empty
// cost cells stay blank on the form.
func nonzeroAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return formatAmount(v)
}

func formatKm(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatLegDate renders a leg date as the short Czech "day.month." form.
// Unparseable input passes through untouched.
func formatLegDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d.%d.", t.Day(), int(t.Month()))
}

// formatFormDate renders a full Czech date, e.g. "14.03.2026".
func formatFormDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02.01.2006")
}

// formatFormDateTime renders a date-and-time field, e.g. "14.03.2026 06:30".
func formatFormDateTime(s string) string {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		return formatFormDate(s)
	}
	return t.Format("02.01.2006 15:04")
}

func trimJoin(prefix, place, clock string) string {
	out := prefix + place
	if clock != "" {
		out += " " + clock
	}
	return out
}
