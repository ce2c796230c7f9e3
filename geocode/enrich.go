package geocode

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/bungo"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of place names geocoded in parallel.
const DefaultConcurrency = 4

// Enricher fills in coordinates for stored mentions that lack them.
type Enricher struct {
	Mentions bungo.MentionService
	Geocoder bungo.Geocoder

	// Concurrency bounds parallel lookups. Defaults to DefaultConcurrency.
	Concurrency int

	// MinConfidence skips provider matches below this confidence.
	MinConfidence float64
}

// Result holds the outcome of an enrichment run.
type Result struct {
	Places   int
	Resolved int
	NotFound int
	Failed   int
	Updated  int
}

// Event reports the outcome for one place name.
type Event struct {
	PlaceName string
	Mentions  int
	Result    *bungo.GeocodeResult
	Error     error
}

// EventFunc receives one Event per distinct place name. It may be called
// from several goroutines, one call at a time.
type EventFunc func(Event)

// Enrich geocodes up to limit mentions without coordinates (zero means all).
// Each distinct place name is looked up once and its coordinates are copied
// to every mention with that name. Lookup failures are counted, not returned.
func (e *Enricher) Enrich(ctx context.Context, limit int, onEvent EventFunc) (*Result, error) {
	mentions, err := e.Mentions.ListMentionsMissingCoordinates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}

	var names []string
	byName := make(map[string][]*bungo.PlaceMention)
	for _, m := range mentions {
		if _, ok := byName[m.PlaceName]; !ok {
			names = append(names, m.PlaceName)
		}
		byName[m.PlaceName] = append(byName[m.PlaceName], m)
	}

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var (
		mu     sync.Mutex
		result = &Result{Places: len(names)}
	)
	report := func(ev Event, apply func(*Result)) {
		mu.Lock()
		defer mu.Unlock()
		apply(result)
		if onEvent != nil {
			onEvent(ev)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, name := range names {
		group := byName[name]
		g.Go(func() error {
			return e.enrichPlace(gctx, name, group, report)
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

func (e *Enricher) enrichPlace(ctx context.Context, name string, group []*bungo.PlaceMention, report func(Event, func(*Result))) error {
	ev := Event{PlaceName: name, Mentions: len(group)}

	found, err := e.Geocoder.Geocode(ctx, name)
	if err == nil && found.Confidence < e.MinConfidence {
		err = bungo.Errorf(bungo.ENOTFOUND, "match for %q below confidence %.2f", name, e.MinConfidence)
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ev.Error = err
		if bungo.ErrorCode(err) == bungo.ENOTFOUND {
			report(ev, func(r *Result) { r.NotFound++ })
		} else {
			report(ev, func(r *Result) { r.Failed++ })
		}
		return nil
	}

	coords := found.Coordinates()
	updated := 0
	for _, m := range group {
		if err := e.Mentions.UpdateMentionCoordinates(ctx, m.ID, coords); err != nil {
			return fmt.Errorf("update mention %s: %w", m.ID, err)
		}
		updated++
	}

	ev.Result = found
	report(ev, func(r *Result) {
		r.Resolved++
		r.Updated += updated
	})
	return nil
}
