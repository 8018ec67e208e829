/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"strings"
)

// Op is a path command operator.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case QuadTo:
		return "Q"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Command is a single path command with absolute coordinates. Control is only meaningful for
// QuadTo.
type Command struct {
	Op      Op
	Control Point
	To      Point
}

func (c Command) String() string {
	if c.Op == QuadTo {
		return fmt.Sprintf("Q%d,%d %d,%d", c.Control.X, c.Control.Y, c.To.X, c.To.Y)
	}
	return fmt.Sprintf("%s%d,%d", c.Op, c.To.X, c.To.Y)
}

// Outline is an ordered sequence of path commands. Each contour starts with a MoveTo.
type Outline []Command

// NumContours returns the number of contours in `o`.
func (o Outline) NumContours() int {
	n := 0
	for _, c := range o {
		if c.Op == MoveTo {
			n++
		}
	}
	return n
}

func (o Outline) String() string {
	parts := make([]string, len(o))
	for i, c := range o {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// NewOutline builds the path for the contours given by `points` and `endPoints`.
//
// An on-curve point following an on-curve point is joined by a line, an on-curve point following
// an off-curve point completes a quadratic curve. Two consecutive off-curve points imply an
// on-curve point at their midpoint. Each contour is closed back to its starting point.
func NewOutline(points []ContourPoint, endPoints []int) Outline {
	var o Outline
	start := 0
	for _, end := range endPoints {
		if end < start || end >= len(points) {
			continue
		}
		o = appendContour(o, points[start:end+1])
		start = end + 1
	}
	return o
}

func appendContour(o Outline, pts []ContourPoint) Outline {
	n := len(pts)

	first := -1
	for i, p := range pts {
		if p.OnCurve {
			first = i
			break
		}
	}

	// Points following the start point, in contour order.
	var seq []ContourPoint
	var start Point
	if first >= 0 {
		start = Point{pts[first].X, pts[first].Y}
		seq = append(seq, pts[first+1:]...)
		seq = append(seq, pts[:first]...)
	} else {
		start = midpoint(pts[n-1], pts[0])
		seq = pts
	}

	o = append(o, Command{Op: MoveTo, To: start})

	last := start
	var ctrl Point
	pending := false
	for _, p := range seq {
		pt := Point{p.X, p.Y}
		if p.OnCurve {
			if pending {
				o = append(o, Command{Op: QuadTo, Control: ctrl, To: pt})
				pending = false
			} else {
				o = append(o, Command{Op: LineTo, To: pt})
			}
			last = pt
			continue
		}
		if pending {
			mid := midpoint(ContourPoint{X: ctrl.X, Y: ctrl.Y}, p)
			o = append(o, Command{Op: QuadTo, Control: ctrl, To: mid})
			last = mid
		}
		ctrl = pt
		pending = true
	}

	switch {
	case pending:
		o = append(o, Command{Op: QuadTo, Control: ctrl, To: start})
	case last != start:
		o = append(o, Command{Op: LineTo, To: start})
	}
	return o
}

func midpoint(a, b ContourPoint) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}
