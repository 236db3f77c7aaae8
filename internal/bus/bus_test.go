package bus

import (
	"sync"
	"testing"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCounter = NewTopic[int]("testCounter")

func TestSubscribe_ReplaysLastValue(t *testing.T) {
	b := New()
	Publish(b, testCounter, 3)
	Publish(b, testCounter, 7)

	var got []int
	h := Subscribe(b, testCounter, func(v int) { got = append(got, v) })
	defer h.Release()

	assert.Equal(t, []int{7}, got, "replay-of-one, not full history")
}

func TestSubscribe_NoReplayWhenAbsent(t *testing.T) {
	b := New()
	called := false
	h := Subscribe(b, testCounter, func(int) { called = true })
	defer h.Release()

	assert.False(t, called)
}

func TestPublish_DeliversInOrderToEverySubscriber(t *testing.T) {
	b := New()
	var a, c []int
	h1 := Subscribe(b, testCounter, func(v int) { a = append(a, v) })
	h2 := Subscribe(b, testCounter, func(v int) { c = append(c, v) })
	defer h1.Release()
	defer h2.Release()

	for i := 1; i <= 5; i++ {
		Publish(b, testCounter, i)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, a)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c)
}

func TestTopicsAreIndependent(t *testing.T) {
	b := New()
	periodCalls := 0
	h := Subscribe(b, SelectedPeriod, func(domain.Period) { periodCalls++ })
	defer h.Release()

	Publish(b, SelectedSubject, domain.Subject{ID: 7, Name: "Math"})

	assert.Equal(t, 0, periodCalls)
	_, ok := Current(b, SelectedPeriod)
	assert.False(t, ok)
	subj, ok := Current(b, SelectedSubject)
	require.True(t, ok)
	assert.Equal(t, 7, subj.ID)
}

func TestRelease_StopsDelivery(t *testing.T) {
	b := New()
	var got []int
	h := Subscribe(b, testCounter, func(v int) { got = append(got, v) })
	Publish(b, testCounter, 1)

	h.Release()
	h.Release()
	Publish(b, testCounter, 2)

	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 0, b.SubscriberCount(testCounter.Name()))
}

func TestRelease_OnlyRemovesOwnHandle(t *testing.T) {
	b := New()
	var first, second []int
	h1 := Subscribe(b, testCounter, func(v int) { first = append(first, v) })
	h2 := Subscribe(b, testCounter, func(v int) { second = append(second, v) })
	defer h2.Release()

	h1.Release()
	Publish(b, testCounter, 9)

	assert.Empty(t, first)
	assert.Equal(t, []int{9}, second)
	assert.Equal(t, 1, b.SubscriberCount(testCounter.Name()))
}

func TestCurrentOr_DefaultWhenAbsent(t *testing.T) {
	b := New()
	assert.Equal(t, 42, CurrentOr(b, testCounter, 42))
	Publish(b, testCounter, 7)
	assert.Equal(t, 7, CurrentOr(b, testCounter, 42))
}

func TestClear_DropsReplay(t *testing.T) {
	b := New()
	Publish(b, SelectedPeriod, domain.Period{ID: 7})
	Clear(b, SelectedPeriod)

	called := false
	h := Subscribe(b, SelectedPeriod, func(domain.Period) { called = true })
	defer h.Release()

	assert.False(t, called)
	_, ok := Current(b, SelectedPeriod)
	assert.False(t, ok)
}

func TestPublish_ConcurrentPublishersKeepSubscribersConsistent(t *testing.T) {
	b := New()
	var mu sync.Mutex
	var seen []int
	h := Subscribe(b, testCounter, func(v int) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})
	defer h.Release()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			Publish(b, testCounter, v)
		}(i)
	}
	wg.Wait()

	assert.Len(t, seen, 50)
	last, ok := Current(b, testCounter)
	require.True(t, ok)
	assert.Equal(t, seen[len(seen)-1], last, "latest value matches last delivery")
}

func TestSetViewMode(t *testing.T) {
	b := New()
	_, err := SetViewMode(b, domain.ViewAsUser)
	assert.ErrorIs(t, err, ErrNoActor)

	Publish(b, ActingUser, domain.Actor{ID: 1, Role: domain.RoleAdmin, ViewMode: domain.ViewDefault})
	var modes []domain.ViewMode
	h := Subscribe(b, ActingUser, func(a domain.Actor) { modes = append(modes, a.ViewMode) })
	defer h.Release()

	next, err := SetViewMode(b, domain.ViewAsUser)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewAsUser, next.ViewMode)
	assert.Equal(t, []domain.ViewMode{domain.ViewDefault, domain.ViewAsUser}, modes)

	Publish(b, ActingUser, domain.Actor{ID: 2, Role: domain.RoleStudent})
	_, err = SetViewMode(b, domain.ViewAsUser)
	assert.ErrorIs(t, err, domain.ErrInvalidViewTransition)
}

func TestViewAsUser(t *testing.T) {
	b := New()
	_, err := ViewAsUser(b, domain.Actor{ID: 7, Role: domain.RoleStudent})
	assert.ErrorIs(t, err, ErrNoActor)

	Publish(b, ActingUser, domain.Actor{ID: 1, Role: domain.RoleAdmin, ViewMode: domain.ViewDefault})
	next, err := ViewAsUser(b, domain.Actor{ID: 7, Role: domain.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, 7, next.Effective().ID)

	current, _ := Current(b, ActingUser)
	assert.Equal(t, domain.ViewAsUser, current.ViewMode)
	assert.Equal(t, 7, current.Effective().ID)

	back, err := SetViewMode(b, domain.ViewDefault)
	require.NoError(t, err)
	assert.Equal(t, 1, back.Effective().ID)
}

func TestRegistry_ListsCoreTopics(t *testing.T) {
	names := Registry()
	for _, want := range []string{"selectedPeriod", "selectedSubject", "actingUser", "teacherRoster", "directedGroups"} {
		assert.Contains(t, names, want)
	}
}
