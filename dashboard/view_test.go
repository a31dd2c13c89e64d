package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/orders-admin/models"
	"github.com/yeremiapane/orders-admin/store"
)

type fakeStore struct {
	mu        sync.Mutex
	orders    []models.Order
	fetchErr  error
	patchErr  error
	deleteErr error

	fetches int
	patches []string
	deletes []string

	// block, when set, holds PatchStatus until the channel for that id closes.
	block map[string]chan struct{}
}

func (f *fakeStore) Fetch(context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeStore) PatchStatus(_ context.Context, id string, status models.Status) error {
	f.mu.Lock()
	wait := f.block[id]
	f.mu.Unlock()
	if wait != nil {
		<-wait
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.patches = append(f.patches, id+"="+string(status))
	return f.patchErr
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

type fakeDialog struct {
	answer  bool
	prompts []Prompt
	notices []Notice
}

func (d *fakeDialog) Confirm(_ context.Context, p Prompt) bool {
	d.prompts = append(d.prompts, p)
	return d.answer
}

func (d *fakeDialog) Notify(_ context.Context, n Notice) {
	d.notices = append(d.notices, n)
}

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: "A", FirstName: "Ana", Status: models.StatusPending, Total: 10},
		{ID: "B", FirstName: "Ben", Status: models.StatusDispatch, Total: 20},
		{ID: "C", FirstName: "Cai", Status: models.StatusSuccess, Total: 30},
		{ID: "D", FirstName: "Dee", Status: models.StatusPending, Total: 40},
	}
}

func loadedView(t *testing.T, fs *fakeStore) *View {
	t.Helper()
	v := NewView(fs)
	require.NoError(t, v.Load(context.Background()))
	return v
}

func ids(orders []models.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestLoadReplacesOrdersInStoreOrder(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders()}
	v := loadedView(t, fs)

	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(v.Orders()))
}

func TestLoadFailureLeavesOrdersEmpty(t *testing.T) {
	fs := &fakeStore{fetchErr: store.NetworkFailure("fetch", "", errors.New("dial tcp: refused"))}
	v := NewView(fs)

	err := v.Load(context.Background())

	assert.Error(t, err)
	assert.Empty(t, v.Orders())
	assert.Empty(t, v.Filtered())
}

func TestActivateLoadsOnce(t *testing.T) {
	fs := &fakeStore{fetchErr: errors.New("boom")}
	v := NewView(fs)

	v.Activate(context.Background())
	v.Activate(context.Background())

	assert.Equal(t, 1, fs.fetches)
}

func TestFilter(t *testing.T) {
	fs := &fakeStore{orders: append(sampleOrders(), models.Order{ID: "E"})}
	v := loadedView(t, fs)

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"A", "B", "C", "D", "E"}},
		{Filter(models.StatusPending), []string{"A", "D"}},
		{Filter(models.StatusDispatch), []string{"B"}},
		{Filter(models.StatusSuccess), []string{"C"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			require.NoError(t, v.SetFilter(tt.filter))
			assert.Equal(t, tt.want, ids(v.Filtered()))
		})
	}
}

func TestFilterDefaultsToAll(t *testing.T) {
	v := NewView(&fakeStore{})
	assert.Equal(t, FilterAll, v.Filter())
}

func TestSetFilterRejectsUnknownValue(t *testing.T) {
	v := NewView(&fakeStore{})

	assert.ErrorIs(t, v.SetFilter("cancelled"), ErrInvalidFilter)
	assert.ErrorIs(t, v.SetFilter(""), ErrInvalidFilter)
	assert.Equal(t, FilterAll, v.Filter())
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilter("dispatch")
	require.NoError(t, err)
	assert.Equal(t, Filter("dispatch"), f)

	_, err = ParseFilter("Pending")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestToggleDetail(t *testing.T) {
	v := NewView(&fakeStore{})

	_, ok := v.Selected()
	assert.False(t, ok)

	v.ToggleDetail("X")
	id, ok := v.Selected()
	assert.True(t, ok)
	assert.Equal(t, "X", id)

	v.ToggleDetail("X")
	_, ok = v.Selected()
	assert.False(t, ok, "second toggle collapses")

	v.ToggleDetail("X")
	v.ToggleDetail("Y")
	id, _ = v.Selected()
	assert.Equal(t, "Y", id, "only the last toggled order stays expanded")
}

func TestDeleteConfirmed(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders()[:3]}
	v := loadedView(t, fs)
	d := &fakeDialog{answer: true}

	err := v.Delete(context.Background(), d, "B")

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ids(v.Orders()))
	assert.Equal(t, []string{"B"}, fs.deletes)
	require.Len(t, d.prompts, 1)
	assert.Equal(t, DeletePrompt, d.prompts[0])
	require.Len(t, d.notices, 1)
	assert.Equal(t, NoticeSuccess, d.notices[0].Kind)
	assert.Equal(t, "Deleted!", d.notices[0].Title)
}

func TestDeleteRejectedByStore(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders()[:3], deleteErr: store.RemoteRejected("delete", "B", errors.New("forbidden"))}
	v := loadedView(t, fs)
	d := &fakeDialog{answer: true}

	err := v.Delete(context.Background(), d, "B")

	assert.Error(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(v.Orders()))
	require.Len(t, d.notices, 1)
	assert.Equal(t, NoticeError, d.notices[0].Kind)
}

func TestDeleteDeclinedIsNoop(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders()[:3]}
	v := loadedView(t, fs)
	d := &fakeDialog{answer: false}

	err := v.Delete(context.Background(), d, "B")

	assert.ErrorIs(t, err, ErrDeclined)
	assert.Empty(t, fs.deletes, "no remote call")
	assert.Equal(t, []string{"A", "B", "C"}, ids(v.Orders()))
	assert.Empty(t, d.notices)
}

func TestDeleteUnknownIDLeavesListAlone(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders()[:3]}
	v := loadedView(t, fs)

	require.NoError(t, v.Delete(context.Background(), &fakeDialog{answer: true}, "Z"))
	assert.Equal(t, []string{"A", "B", "C"}, ids(v.Orders()))
}

func TestChangeStatusUpdatesOnlyTarget(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders()[:3]}
	v := loadedView(t, fs)
	before := v.Orders()
	d := &fakeDialog{}

	err := v.ChangeStatus(context.Background(), d, "B", models.StatusSuccess)

	require.NoError(t, err)
	after := v.Orders()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])

	wantB := before[1]
	wantB.Status = models.StatusSuccess
	assert.Equal(t, wantB, after[1])

	assert.Equal(t, []string{"B=success"}, fs.patches)
	assert.Empty(t, d.prompts, "status changes are not confirmed")
	require.Len(t, d.notices, 1)
	assert.Equal(t, "Success", d.notices[0].Title)
}

func TestChangeStatusNotices(t *testing.T) {
	tests := []struct {
		status    models.Status
		wantTitle string
	}{
		{models.StatusDispatch, "Dispatch"},
		{models.StatusSuccess, "Success"},
		{models.StatusPending, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			v := loadedView(t, &fakeStore{orders: sampleOrders()})
			d := &fakeDialog{}

			require.NoError(t, v.ChangeStatus(context.Background(), d, "C", tt.status))

			if tt.wantTitle == "" {
				assert.Empty(t, d.notices)
				return
			}
			require.Len(t, d.notices, 1)
			assert.Equal(t, tt.wantTitle, d.notices[0].Title)
		})
	}
}

func TestChangeStatusAllowsBackwardTransition(t *testing.T) {
	v := loadedView(t, &fakeStore{orders: sampleOrders()})

	require.NoError(t, v.ChangeStatus(context.Background(), &fakeDialog{}, "C", models.StatusPending))
	assert.Equal(t, models.StatusPending, v.Orders()[2].Status)
}

func TestChangeStatusRejectedByStore(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders(), patchErr: store.NotFound("patch", "B")}
	v := loadedView(t, fs)
	d := &fakeDialog{}

	err := v.ChangeStatus(context.Background(), d, "B", models.StatusSuccess)

	assert.True(t, store.IsNotFound(err))
	assert.Equal(t, models.StatusDispatch, v.Orders()[1].Status)
	require.Len(t, d.notices, 1)
	assert.Equal(t, NoticeError, d.notices[0].Kind)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	fs := &fakeStore{orders: sampleOrders()}
	v := loadedView(t, fs)
	d := &fakeDialog{}

	err := v.ChangeStatus(context.Background(), d, "B", "cancelled")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, fs.patches)
	assert.Len(t, d.notices, 1)
}

func TestMutationsInFlightReconcileIndependently(t *testing.T) {
	release := make(chan struct{})
	fs := &fakeStore{orders: sampleOrders(), block: map[string]chan struct{}{"A": release}}
	v := loadedView(t, fs)

	done := make(chan error)
	go func() {
		done <- v.ChangeStatus(context.Background(), &fakeDialog{}, "A", models.StatusDispatch)
	}()

	// The view stays usable while A's patch is pending.
	v.ToggleDetail("C")
	require.NoError(t, v.Delete(context.Background(), &fakeDialog{answer: true}, "B"))
	assert.Equal(t, models.StatusPending, v.Orders()[0].Status, "not mirrored before the store answers")

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"A", "C", "D"}, ids(v.Orders()))
	assert.Equal(t, models.StatusDispatch, v.Orders()[0].Status)
	id, _ := v.Selected()
	assert.Equal(t, "C", id)
}

func TestNoticeQueueDrain(t *testing.T) {
	q := &NoticeQueue{}
	q.Notify(context.Background(), deletedNotice)
	q.Notify(context.Background(), deleteErrorNotice)

	assert.Equal(t, []Notice{deletedNotice, deleteErrorNotice}, q.Drain())
	assert.Empty(t, q.Drain())
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewSessions(&fakeStore{})

	s.Get("one").View.ToggleDetail("A")

	assert.Same(t, s.Get("one"), s.Get("one"))
	_, ok := s.Get("two").View.Selected()
	assert.False(t, ok)
}

func TestSessionsEvictIdle(t *testing.T) {
	s := NewSessionsWithTTL(&fakeStore{}, time.Hour)
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	old := s.Get("old")
	old.View.ToggleDetail("A")
	s.Get("active")
	require.Equal(t, 2, s.Len())

	clock = clock.Add(45 * time.Minute)
	s.Get("active")

	clock = clock.Add(30 * time.Minute)
	s.Get("active")
	assert.Equal(t, 1, s.Len(), "idle session dropped")

	// Returning after expiry starts from scratch.
	fresh := s.Get("old")
	assert.NotSame(t, old, fresh)
	_, ok := fresh.View.Selected()
	assert.False(t, ok)
}
