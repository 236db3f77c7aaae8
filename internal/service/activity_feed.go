package service

import (
	"context"
	"sync"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/bus"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
)

// ActivityFeed keeps the activity view of the current bus selection. Every
// selection change bumps a generation counter; a load that finishes after
// a newer selection is discarded with ErrStaleSelection instead of
// overwriting fresher state.
type ActivityFeed struct {
	bus        *bus.Bus
	activities ActivityService
	handles    []*bus.Handle

	mu         sync.Mutex
	generation uint64
	loadedGen  uint64
	loaded     bool
	current    []domain.ActivityViewRecord
}

// NewActivityFeed subscribes to the selection topics of b. Call Close to
// release the subscriptions.
func NewActivityFeed(b *bus.Bus, activities ActivityService) *ActivityFeed {
	f := &ActivityFeed{bus: b, activities: activities}
	f.handles = []*bus.Handle{
		bus.Subscribe(b, bus.SelectedPeriod, func(domain.Period) { f.bump() }),
		bus.Subscribe(b, bus.SelectedSubject, func(domain.Subject) { f.bump() }),
		bus.Subscribe(b, bus.SelectedGroup, func(domain.Group) { f.bump() }),
		bus.Subscribe(b, bus.ActingUser, func(domain.Actor) { f.bump() }),
	}
	return f
}

func (f *ActivityFeed) bump() {
	f.mu.Lock()
	f.generation++
	f.mu.Unlock()
}

// Generation returns the current selection generation.
func (f *ActivityFeed) Generation() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation
}

// Request builds the aggregation request from the bus. It reports false
// while any selection is still absent.
func (f *ActivityFeed) Request() (contract.ActivitiesRequest, bool) {
	period, ok := bus.Current(f.bus, bus.SelectedPeriod)
	if !ok {
		return contract.ActivitiesRequest{}, false
	}
	subject, ok := bus.Current(f.bus, bus.SelectedSubject)
	if !ok {
		return contract.ActivitiesRequest{}, false
	}
	group, ok := bus.Current(f.bus, bus.SelectedGroup)
	if !ok {
		return contract.ActivitiesRequest{}, false
	}
	actor, ok := bus.Current(f.bus, bus.ActingUser)
	if !ok {
		return contract.ActivitiesRequest{}, false
	}
	scope := domain.Scope{PeriodID: period.ID, SubjectID: subject.ID, GroupID: group.ID}
	return contract.NewActivitiesRequest(scope, actor), true
}

// Refresh aggregates the current selection. While a selection is absent it
// returns (nil, nil) without fetching.
func (f *ActivityFeed) Refresh(ctx context.Context) ([]domain.ActivityViewRecord, error) {
	gen := f.Generation()
	req, ok := f.Request()
	if !ok {
		return nil, nil
	}
	return f.load(ctx, gen, req)
}

func (f *ActivityFeed) load(ctx context.Context, gen uint64, req contract.ActivitiesRequest) ([]domain.ActivityViewRecord, error) {
	records, err := f.activities.GetActivities(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		return nil, ErrStaleSelection
	}
	if err != nil {
		return nil, err
	}
	f.current = records
	f.loadedGen = gen
	f.loaded = true
	return records, nil
}

// Current returns the last loaded records and whether they still match the
// current selection.
func (f *ActivityFeed) Current() ([]domain.ActivityViewRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.loaded && f.loadedGen == f.generation
}

// Close releases the bus subscriptions. It is safe to call more than once.
func (f *ActivityFeed) Close() {
	for _, h := range f.handles {
		h.Release()
	}
}
