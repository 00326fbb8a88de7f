// Package host holds the collaborator surface toward the external
// UI-automation host: acquiring the raw hierarchy dump and probing the
// runtime state of identified elements. The core never talks to the host
// directly; it goes through these interfaces.
package host

import (
	"context"
	"errors"

	"github.com/rafiki270/XCUIDebug/internal/model"
)

// Source supplies the raw hierarchy dump text.
type Source interface {
	FetchDump(ctx context.Context) (string, error)
}

// StateProber answers the per-identifier hittable/enabled lookup.
type StateProber interface {
	ElementState(ctx context.Context, identifier string) (model.State, error)
}

// Provider bundles the host collaborators for one invocation.
type Provider struct {
	Source Source
	Prober StateProber
}

// ErrNoSource is returned when neither a dump file nor a host URL is configured.
var ErrNoSource = errors.New("no dump source configured: pass --file or --host")
