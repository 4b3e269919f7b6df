package builder

import (
	"strconv"
	"strings"
)

// Part names one field of an App.
type Part uint8

const (
	PartA Part = iota
	PartB
	PartC
)

// String returns the part's field name.
func (p Part) String() string {
	switch p {
	case PartA:
		return "A"
	case PartB:
		return "B"
	case PartC:
		return "C"
	default:
		return "Part(" + strconv.Itoa(int(p)) + ")"
	}
}

// AllParts lists every part in field order.
var AllParts = []Part{PartA, PartB, PartC}

// unset is how String renders a part that was never built.
const unset = "<unset>"

// App is the accumulator a Builder fills in. Fields not built stay unset.
type App struct {
	A, B, C string

	built [3]bool
}

// set assigns v to part p and marks it built.
func (a *App) set(p Part, v string) {
	switch p {
	case PartA:
		a.A = v
	case PartB:
		a.B = v
	case PartC:
		a.C = v
	default:
		return
	}
	a.built[p] = true
}

// IsSet reports whether part p has been built.
func (a *App) IsSet(p Part) bool {
	if a == nil || int(p) >= len(a.built) {
		return false
	}
	return a.built[p]
}

// Value returns the value of part p and whether it has been built.
func (a *App) Value(p Part) (string, bool) {
	if !a.IsSet(p) {
		return "", false
	}
	switch p {
	case PartA:
		return a.A, true
	case PartB:
		return a.B, true
	default:
		return a.C, true
	}
}

// Parts returns the built parts in field order.
func (a *App) Parts() []Part {
	out := make([]Part, 0, len(AllParts))
	for _, p := range AllParts {
		if a.IsSet(p) {
			out = append(out, p)
		}
	}
	return out
}

// String renders the three fields separated by spaces, e.g.
// "SuperA SuperB <unset>".
func (a *App) String() string {
	vals := make([]string, 0, len(AllParts))
	for _, p := range AllParts {
		v, ok := a.Value(p)
		if !ok {
			v = unset
		}
		vals = append(vals, v)
	}
	return strings.Join(vals, " ")
}
