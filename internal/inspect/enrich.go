package inspect

import (
	"context"

	"go.uber.org/zap"

	"github.com/rafiki270/XCUIDebug/internal/model"
)

// enrich performs one state lookup per distinct identifier among the kept
// records, bounding host traffic to O(unique identifiers) per call. The
// mapping is rebuilt on every call; nothing is cached across reports.
// Failed probes degrade to the default state.
func (in *Inspector) enrich(ctx context.Context, records []model.Record, kept []int) map[string]model.State {
	states := make(map[string]model.State)
	for _, i := range kept {
		id := records[i].Identifier
		if id == "" {
			continue
		}
		if _, ok := states[id]; ok {
			continue
		}
		st, err := in.prober.ElementState(ctx, id)
		if err != nil {
			in.log.Warn("state probe failed", zap.String("identifier", id), zap.Error(err))
			st = model.DefaultState
		}
		states[id] = st
	}
	return states
}
