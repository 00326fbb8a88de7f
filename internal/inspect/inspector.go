// Package inspect runs the one-shot pipeline behind every report: fetch the
// dump, parse it, filter, enrich with probed state, render. No state survives
// between calls; each report re-parses the full dump.
package inspect

import (
	"context"

	"go.uber.org/zap"

	"github.com/rafiki270/XCUIDebug/internal/host"
	"github.com/rafiki270/XCUIDebug/internal/model"
	"github.com/rafiki270/XCUIDebug/internal/output"
	"github.com/rafiki270/XCUIDebug/internal/report"
)

// Inspector ties the host collaborators to the parse/filter/render core.
type Inspector struct {
	source host.Source
	prober host.StateProber
	log    *zap.Logger
}

// New builds an Inspector from a provider. A nil prober degrades to the
// default state for every identifier; a nil logger discards diagnostics.
func New(p *host.Provider, log *zap.Logger) *Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	prober := p.Prober
	if prober == nil {
		prober = host.NullProber{}
	}
	return &Inspector{source: p.Source, prober: prober, log: log}
}

// TreeReport renders the full or filtered tree report.
func (in *Inspector) TreeReport(ctx context.Context, f model.Filter) (string, error) {
	records, err := in.load(ctx)
	if err != nil {
		return "", err
	}
	sel := model.Select(records, f)
	states := in.enrich(ctx, records, sel.Kept)
	return report.Tree(records, sel, states, f), nil
}

// PathReport renders the root-to-leaf ancestor chain for an identifier.
func (in *Inspector) PathReport(ctx context.Context, identifier string) (string, error) {
	records, err := in.load(ctx)
	if err != nil {
		return "", err
	}
	return report.Path(records, identifier), nil
}

// TreeSnapshot returns the structured form of a tree report.
func (in *Inspector) TreeSnapshot(ctx context.Context, f model.Filter) (output.TreeResult, error) {
	records, err := in.load(ctx)
	if err != nil {
		return output.TreeResult{}, err
	}
	sel := model.Select(records, f)
	states := in.enrich(ctx, records, sel.Kept)
	return output.NewTreeResult(records, sel, states, f), nil
}

// PathSnapshot returns the structured form of a path report.
func (in *Inspector) PathSnapshot(ctx context.Context, identifier string) (output.PathResult, error) {
	records, err := in.load(ctx)
	if err != nil {
		return output.PathResult{}, err
	}
	res := output.PathResult{Identifier: identifier}
	for i, r := range records {
		if identifier == "" || r.Identifier != identifier {
			continue
		}
		res.Found = true
		res.Paths = append(res.Paths, report.Segments(records, i))
	}
	return res, nil
}

func (in *Inspector) load(ctx context.Context) ([]model.Record, error) {
	if in.source == nil {
		return nil, host.ErrNoSource
	}
	dump, err := in.source.FetchDump(ctx)
	if err != nil {
		return nil, err
	}
	records := model.ParseDump(dump)
	in.log.Debug("parsed hierarchy dump", zap.Int("records", len(records)))
	return records, nil
}
