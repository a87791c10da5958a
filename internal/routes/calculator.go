// Package routes provides interchangeable route-calculation variants and
// the planner that dispatches to whichever one is currently selected.
package routes

import (
	"context"
	"fmt"
	"strings"
)

// Route is the advisory result of a calculation. It is descriptive text,
// not routing-engine output.
type Route struct {
	Mode        string
	Start       string
	End         string
	Description string
}

// Calculator is the route-calculation capability. Variants are pure and
// deterministic: the same endpoints always produce the same route.
type Calculator interface {
	Calculate(ctx context.Context, start, end string) (Route, error)
}

// Driving calculates the fastest driving route.
type Driving struct{}

func (Driving) Calculate(ctx context.Context, start, end string) (Route, error) {
	return describe("driving", "Fastest driving route from %s to %s", start, end), nil
}

// Walking calculates the safest walking route.
type Walking struct{}

func (Walking) Calculate(ctx context.Context, start, end string) (Route, error) {
	return describe("walking", "Safest walking route from %s to %s", start, end), nil
}

// Cycling calculates the most scenic cycling route.
type Cycling struct{}

func (Cycling) Calculate(ctx context.Context, start, end string) (Route, error) {
	return describe("cycling", "Most scenic cycling route from %s to %s", start, end), nil
}

// describe builds the advisory route text. Blank endpoints yield an empty
// description rather than an error: this is advisory text generation, so
// invalid input degrades to saying nothing.
func describe(mode, format, start, end string) Route {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Route{Mode: mode, Start: start, End: end}
	}
	return Route{
		Mode:        mode,
		Start:       start,
		End:         end,
		Description: fmt.Sprintf(format, start, end),
	}
}
