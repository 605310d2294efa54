package render

// Painter is the rasterizer the render list is handed to.
// Coordinates are integer pixels.
type Painter interface {
	DrawLine(x0, y0, x1, y1 int, c Color)
	FillCircle(x, y, r int, c Color)
}

// PrimKind selects the primitive type.
type PrimKind uint8

const (
	PrimLine PrimKind = iota
	PrimCircle
)

// Primitive is one screen-space draw command.
//
// Lines use X0,Y0 → X1,Y1. Circles use X0,Y0 as center and R as radius.
type Primitive struct {
	Kind   PrimKind
	X0, Y0 int
	X1, Y1 int
	R      int
	Color  Color
}

// List is an ordered set of primitives for one frame.
//
// Primitives are replayed in the order they were added, with no depth sort and
// no blending: later ones overwrite earlier ones. Reuse a List across frames to
// avoid allocations.
type List struct {
	Prims []Primitive
}

// Reset empties the list but keeps its capacity.
func (l *List) Reset() { l.Prims = l.Prims[:0] }

func (l *List) Len() int { return len(l.Prims) }

func (l *List) AddLine(x0, y0, x1, y1 int, c Color) {
	l.Prims = append(l.Prims, Primitive{Kind: PrimLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

func (l *List) AddCircle(x, y, r int, c Color) {
	l.Prims = append(l.Prims, Primitive{Kind: PrimCircle, X0: x, Y0: y, R: r, Color: c})
}

// count returns the number of primitives of kind k.
func (l *List) count(k PrimKind) int {
	n := 0
	for i := range l.Prims {
		if l.Prims[i].Kind == k {
			n++
		}
	}
	return n
}

// Submit replays the list into p in order.
func (l *List) Submit(p Painter) {
	if p == nil {
		return
	}
	for i := range l.Prims {
		pr := &l.Prims[i]
		switch pr.Kind {
		case PrimLine:
			p.DrawLine(pr.X0, pr.Y0, pr.X1, pr.Y1, pr.Color)
		case PrimCircle:
			p.FillCircle(pr.X0, pr.Y0, pr.R, pr.Color)
		}
	}
}
