package domain

// Point is a 2D chart coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(c float64) Point { return Point{p.X * c, p.Y * c} }
func (p Point) MapY(fn func(float64) float64) Point { return Point{p.X, fn(p.Y)} }

// Segment is a cubic Bezier from P0 to P1 with control points C0 and C1.
// A straight segment has C0 == P0 and C1 == P1.
type Segment struct {
	P0 Point `json:"p0"`
	C0 Point `json:"c0"`
	C1 Point `json:"c1"`
	P1 Point `json:"p1"`
}

// Curve is the list of segments joining consecutive points.
type Curve struct {
	Linear   bool      `json:"linear"`
	Segments []Segment `json:"segments"`
}

// bezierSegment builds the segment from p1 to p2, using p0 and p3 as the
// neighbours that shape the tangents.
func bezierSegment(p0, p1, p2, p3 Point) Segment {
	c0 := p1.Add(p2.Sub(p1).Scale(1.5).Add(p1.Sub(p0).Scale(0.5)).Scale(1.0 / 6.0))
	c1 := p2.Sub(p3.Sub(p2).Scale(1.5).Add(p2.Sub(p1).Scale(0.5)).Scale(1.0 / 6.0))
	return Segment{P0: p1, C0: c0, C1: c1, P1: p2}
}

// BuildCurve joins consecutive points with one segment each. Segment i uses
// points i-1, i, i+1 and i+2, repeating the first and last point at the
// boundaries. Fewer than two points produce no segment.
func BuildCurve(points []Point, linear bool) Curve {
	curve := Curve{Linear: linear, Segments: []Segment{}}
	last := len(points) - 1
	for i := 0; i < last; i++ {
		if linear {
			curve.Segments = append(curve.Segments, Segment{
				P0: points[i], C0: points[i], C1: points[i+1], P1: points[i+1],
			})
			continue
		}
		curve.Segments = append(curve.Segments, bezierSegment(
			points[max(0, i-1)], points[i], points[i+1], points[min(last, i+2)],
		))
	}
	return curve
}

// MapY returns a copy of the curve with fn applied to every Y coordinate.
func (c Curve) MapY(fn func(float64) float64) Curve {
	out := Curve{Linear: c.Linear, Segments: make([]Segment, len(c.Segments))}
	for i, s := range c.Segments {
		out.Segments[i] = Segment{P0: s.P0.MapY(fn), C0: s.C0.MapY(fn), C1: s.C1.MapY(fn), P1: s.P1.MapY(fn)}
	}
	return out
}
