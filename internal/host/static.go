package host

import (
	"context"

	"github.com/rafiki270/XCUIDebug/internal/model"
)

// NullProber reports the default state for every identifier. Used when the
// dump comes from a file and no live host is reachable; the rendered glyphs
// are display placeholders in that case.
type NullProber struct{}

func (NullProber) ElementState(context.Context, string) (model.State, error) {
	return model.DefaultState, nil
}

// StaticProber serves states from a fixed map. Identifiers absent from the
// map get the default state.
type StaticProber map[string]model.State

func (p StaticProber) ElementState(_ context.Context, identifier string) (model.State, error) {
	return p[identifier], nil
}
