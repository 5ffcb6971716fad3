package services

import (
	"context"
	"sort"
	"sync"

	"travel-order-service/internal/domain"
)

// LegResolution pairs one leg with the outcome of its distance resolution.
// Err is ErrDistanceNotFound when every tier was exhausted for that leg.
type LegResolution struct {
	LegID    int
	Resolved domain.ResolvedDistance
	Err      error
}

const maxConcurrentResolutions = 5

// ResolveRecord resolves every leg of the record that has no distance yet.
// Legs resolve concurrently; the resolver holds no shared mutable state, so
// the only coordination is collecting results. Legs that miss keep their
// zero distance for manual entry, they are never given a stale value.
//
// Results are applied to the record before returning and reported in leg
// order.
func (r *DistanceResolver) ResolveRecord(ctx context.Context, record *domain.TripRecord) []LegResolution {
	pending := make([]int, 0, len(record.Legs))
	for i := range record.Legs {
		if record.Legs[i].Km == 0 && record.Legs[i].From != "" && record.Legs[i].To != "" {
			pending = append(pending, record.Legs[i].ID)
		}
	}

	if len(pending) == 0 {
		return nil
	}

	sem := make(chan struct{}, maxConcurrentResolutions)
	resultsCh := make(chan LegResolution, len(pending))
	var wg sync.WaitGroup

	for _, id := range pending {
		leg := record.Leg(id)

		wg.Add(1)
		go func(id int, from, to string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			resolved, err := r.Resolve(ctx, from, to, record.SurchargePercent)
			resultsCh <- LegResolution{LegID: id, Resolved: resolved, Err: err}
		}(id, leg.From, leg.To)
	}

	wg.Wait()
	close(resultsCh)

	out := make([]LegResolution, 0, len(pending))
	for res := range resultsCh {
		out = append(out, res)
		if res.Err != nil {
			continue
		}

		if leg := record.Leg(res.LegID); leg != nil {
			leg.KmRaw = res.Resolved.RawKm
			leg.Km = res.Resolved.SurchargedKm
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].LegID < out[j].LegID })
	return out
}
