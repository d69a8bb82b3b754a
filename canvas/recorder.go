// seehuhn.de/go/semicircle - elliptical wedges and arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a single recorded context call.  For Arc, the last argument is 1
// for counterclockwise arcs and 0 otherwise.
type Op struct {
	Name string
	Args []float64
}

func (op Op) String() string {
	if len(op.Args) == 0 {
		return op.Name
	}
	args := make([]string, len(op.Args))
	for i, a := range op.Args {
		args[i] = strconv.FormatFloat(a, 'g', 6, 64)
	}
	return op.Name + "(" + strings.Join(args, ",") + ")"
}

// Recorder is a Context which records all calls into a display list.
// It serves as a test double for code driving a Context, and as a display
// list which can be replayed onto another Context later.
// The zero value is ready to use.
type Recorder struct {
	Ops []Op
}

var _ Context = (*Recorder)(nil)

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

func (r *Recorder) Save()                { r.add("save") }
func (r *Recorder) Restore()             { r.add("restore") }
func (r *Recorder) Scale(sx, sy float64) { r.add("scale", sx, sy) }
func (r *Recorder) BeginPath()           { r.add("beginPath") }
func (r *Recorder) MoveTo(x, y float64)  { r.add("moveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)  { r.add("lineTo", x, y) }
func (r *Recorder) Fill()                { r.add("fill") }
func (r *Recorder) Stroke()              { r.add("stroke") }

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	ccw := 0.0
	if counterclockwise {
		ccw = 1
	}
	r.add("arc", x, y, radius, startAngle, endAngle, ccw)
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Names returns the names of the recorded calls, in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Name
	}
	return names
}

// Replay issues the recorded calls on ctx.
func (r *Recorder) Replay(ctx Context) error {
	for i, op := range r.Ops {
		if err := replayOp(ctx, op); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	return nil
}

func replayOp(ctx Context, op Op) error {
	want := map[string]int{
		"save": 0, "restore": 0, "beginPath": 0, "fill": 0, "stroke": 0,
		"scale": 2, "moveTo": 2, "lineTo": 2, "arc": 6,
	}
	n, ok := want[op.Name]
	if !ok {
		return fmt.Errorf("unknown operation %q", op.Name)
	}
	if len(op.Args) != n {
		return fmt.Errorf("%s: expected %d arguments, got %d", op.Name, n, len(op.Args))
	}

	a := op.Args
	switch op.Name {
	case "save":
		ctx.Save()
	case "restore":
		ctx.Restore()
	case "beginPath":
		ctx.BeginPath()
	case "fill":
		ctx.Fill()
	case "stroke":
		ctx.Stroke()
	case "scale":
		ctx.Scale(a[0], a[1])
	case "moveTo":
		ctx.MoveTo(a[0], a[1])
	case "lineTo":
		ctx.LineTo(a[0], a[1])
	case "arc":
		ctx.Arc(a[0], a[1], a[2], a[3], a[4], a[5] != 0)
	}
	return nil
}
