package touch

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	wasActive := !f.stopped
	f.stopped = true
	return wasActive
}

// fakeClock captures scheduled tap releases so tests fire them by hand.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
	delays []time.Duration
}

func (c *fakeClock) afterFunc(d time.Duration, f func()) timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{fn: f}
	c.timers = append(c.timers, t)
	c.delays = append(c.delays, d)
	return t
}

func (c *fakeClock) fire(i int) {
	c.mu.Lock()
	t := c.timers[i]
	c.mu.Unlock()
	t.fn()
}

func newTestManager(t *testing.T, multi bool) (*Manager, *MockInjector, *fakeClock) {
	ctrl := gomock.NewController(t)
	inj := NewMockInjector(ctrl)
	inj.EXPECT().SupportsMultiTouch().Return(multi).AnyTimes()

	clock := &fakeClock{}
	m := NewManager(inj, 50*time.Millisecond)
	m.afterFunc = clock.afterFunc
	return m, inj, clock
}

func TestIDForKey(t *testing.T) {
	assert.Equal(t, 5, IDForKey(65))
	assert.Equal(t, 0, IDForKey(30))
	assert.Equal(t, 5, IDForKey(255))
	assert.Equal(t, 9, IDForKey(249))
}

func TestManager_OpenClose(t *testing.T) {
	m, inj, _ := newTestManager(t, true)

	gomock.InOrder(
		inj.EXPECT().OpenContact(5, 400, 300).Return(nil),
		inj.EXPECT().CloseContact(5, 400, 300).Return(nil),
	)

	require.NoError(t, m.Open(5, 400, 300))
	assert.True(t, m.IsActive(5))
	assert.Equal(t, []Contact{{ID: 5, X: 400, Y: 300, Active: true}}, m.Active())

	require.NoError(t, m.Close(5))
	assert.False(t, m.IsActive(5))
	assert.Equal(t, 0, m.Len())
}

func TestManager_OpenDuplicate(t *testing.T) {
	m, inj, _ := newTestManager(t, true)
	inj.EXPECT().OpenContact(1, 1, 1).Return(nil).Times(1)

	require.NoError(t, m.Open(1, 1, 1))
	err := m.Open(1, 2, 2)
	assert.ErrorIs(t, err, ErrDuplicateContact)
	assert.Equal(t, 1, m.Len())
}

func TestManager_OpenInjectionFailureRecordsNothing(t *testing.T) {
	m, inj, _ := newTestManager(t, true)
	inj.EXPECT().OpenContact(2, 1, 1).Return(errors.New("device gone"))

	err := m.Open(2, 1, 1)
	assert.ErrorIs(t, err, ErrInjectionFailed)
	assert.False(t, m.IsActive(2))
}

func TestManager_CloseUnknown(t *testing.T) {
	m, _, _ := newTestManager(t, true)
	assert.ErrorIs(t, m.Close(3), ErrNoSuchContact)
}

func TestManager_CloseForgetsContactOnInjectorFailure(t *testing.T) {
	m, inj, _ := newTestManager(t, true)
	inj.EXPECT().OpenContact(4, 1, 1).Return(nil)
	inj.EXPECT().CloseContact(4, 1, 1).Return(errors.New("write failed"))

	require.NoError(t, m.Open(4, 1, 1))
	assert.ErrorIs(t, m.Close(4), ErrInjectionFailed)
	assert.False(t, m.IsActive(4))
}

func TestManager_RejectsOutOfRangeID(t *testing.T) {
	m, _, _ := newTestManager(t, true)
	assert.ErrorIs(t, m.Open(MaxContacts, 1, 1), ErrInvalidID)
	assert.ErrorIs(t, m.Close(-1), ErrInvalidID)
	assert.ErrorIs(t, m.Tap(11, 1, 1), ErrInvalidID)
}

func TestManager_TapReleasesLater(t *testing.T) {
	m, inj, clock := newTestManager(t, true)

	inj.EXPECT().OpenContact(5, 400, 300).Return(nil)
	require.NoError(t, m.Tap(5, 400, 300))

	// Still down until the timer fires.
	assert.True(t, m.IsActive(5))
	require.Len(t, clock.timers, 1)
	assert.Equal(t, 50*time.Millisecond, clock.delays[0])

	inj.EXPECT().CloseContact(5, 400, 300).Return(nil)
	clock.fire(0)
	assert.False(t, m.IsActive(5))
}

func TestManager_TapFlushesPendingTapOnSameID(t *testing.T) {
	m, inj, clock := newTestManager(t, true)

	gomock.InOrder(
		inj.EXPECT().OpenContact(5, 400, 300).Return(nil),
		inj.EXPECT().CloseContact(5, 400, 300).Return(nil),
		inj.EXPECT().OpenContact(5, 400, 300).Return(nil),
		inj.EXPECT().CloseContact(5, 400, 300).Return(nil),
	)

	require.NoError(t, m.Tap(5, 400, 300))
	require.NoError(t, m.Tap(5, 400, 300))
	assert.True(t, clock.timers[0].stopped)

	// The stale timer must not close the second tap.
	clock.fire(0)
	assert.True(t, m.IsActive(5))

	clock.fire(1)
	assert.False(t, m.IsActive(5))
}

func TestManager_TapDoesNotStealHeldContact(t *testing.T) {
	m, inj, _ := newTestManager(t, true)
	inj.EXPECT().OpenContact(5, 1, 1).Return(nil)

	require.NoError(t, m.Open(5, 1, 1))
	assert.ErrorIs(t, m.Tap(5, 2, 2), ErrDuplicateContact)
	assert.Equal(t, []Contact{{ID: 5, X: 1, Y: 1, Active: true}}, m.Active())
}

func TestManager_CloseAllContinuesPastFailures(t *testing.T) {
	m, inj, clock := newTestManager(t, true)

	for id := 0; id < 3; id++ {
		inj.EXPECT().OpenContact(id, id, id).Return(nil)
		require.NoError(t, m.Open(id, id, id))
	}
	inj.EXPECT().OpenContact(7, 7, 7).Return(nil)
	require.NoError(t, m.Tap(7, 7, 7))

	inj.EXPECT().CloseContact(0, 0, 0).Return(nil)
	inj.EXPECT().CloseContact(1, 1, 1).Return(errors.New("boom"))
	inj.EXPECT().CloseContact(2, 2, 2).Return(nil)
	inj.EXPECT().CloseContact(7, 7, 7).Return(nil)

	m.CloseAll()
	assert.Equal(t, 0, m.Len())
	assert.True(t, clock.timers[0].stopped)

	// A late firing of the drained tap's timer is harmless.
	clock.fire(0)
	assert.Equal(t, 0, m.Len())
}

func TestManager_FallbackClicks(t *testing.T) {
	m, inj, clock := newTestManager(t, false)
	assert.False(t, m.MultiTouch())

	inj.EXPECT().Click(10, 20).Return(nil).Times(2)

	require.NoError(t, m.Tap(5, 10, 20))
	assert.Empty(t, clock.timers)
	assert.Equal(t, 0, m.Len())

	// Open degrades to a click, close injects nothing.
	require.NoError(t, m.Open(5, 10, 20))
	assert.True(t, m.IsActive(5))
	require.NoError(t, m.Close(5))
	assert.False(t, m.IsActive(5))
}

func TestManager_FallbackClickFailure(t *testing.T) {
	m, inj, _ := newTestManager(t, false)
	inj.EXPECT().Click(1, 1).Return(errors.New("no pointer"))

	assert.ErrorIs(t, m.Tap(0, 1, 1), ErrInjectionFailed)
}

func TestManager_TapWithRealTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	inj := NewMockInjector(ctrl)
	inj.EXPECT().SupportsMultiTouch().Return(true).AnyTimes()
	inj.EXPECT().OpenContact(1, 1, 1).Return(nil)
	inj.EXPECT().CloseContact(1, 1, 1).Return(nil)

	m := NewManager(inj, 200*time.Millisecond)

	// Tap returns while the contact is still down.
	require.NoError(t, m.Tap(1, 1, 1))
	assert.True(t, m.IsActive(1))

	assert.Eventually(t, func() bool { return m.Len() == 0 }, 2*time.Second, 5*time.Millisecond)
}
