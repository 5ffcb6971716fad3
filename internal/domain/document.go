package domain

// Physical canvas of one report page, in millimeters (A4 portrait).
const (
	CanvasWidth  = 210.0
	CanvasHeight = 297.0
	CanvasMargin = 12.0
)

// Alignment positions a text block relative to its X coordinate.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Block is one drawable element at an absolute position on a page.
// Blocks are write-once: a composed Document is never mutated afterwards.
type Block interface {
	block()
}

// Text draws a string at (X, Y) with the given font size and weight.
// For AlignCenter and AlignRight, X is the center respectively the right
// edge of the rendered string.
type Text struct {
	X     float64
	Y     float64
	Size  float64
	Bold  bool
	Align Alignment
	Value string
}

// Line draws a straight segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Rect draws an unfilled rectangle outline.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (Text) block() {}
func (Line) block() {}
func (Rect) block() {}

// Page is an ordered sequence of blocks on one fixed-size canvas.
type Page struct {
	Blocks []Block
}

func (p *Page) Add(b Block) { p.Blocks = append(p.Blocks, b) }

func (p *Page) Text(x, y, size float64, bold bool, align Alignment, value string) {
	p.Add(Text{X: x, Y: y, Size: size, Bold: bold, Align: align, Value: value})
}

func (p *Page) Line(x1, y1, x2, y2 float64) {
	p.Add(Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (p *Page) Rect(x, y, w, h float64) {
	p.Add(Rect{X: x, Y: y, W: w, H: h})
}

// Document is an ordered sequence of pages. It is created fresh for every
// export, holds no reference back to the TripRecord that produced it, and
// is serialized verbatim once composed.
type Document struct {
	Pages []*Page
}

func (d *Document) AddPage() *Page {
	p := &Page{}
	d.Pages = append(d.Pages, p)
	return p
}
