package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/orders-admin/models"
	"github.com/yeremiapane/orders-admin/store"
	"github.com/yeremiapane/orders-admin/utils"
)

// Filter selects which orders the table shows.
type Filter string

const FilterAll Filter = "All"

// Filters lists the filter buttons in display order.
var Filters = []Filter{FilterAll, Filter(models.StatusPending), Filter(models.StatusDispatch), Filter(models.StatusSuccess)}

var (
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidFilter = errors.New("invalid status filter")
	ErrDeclined      = errors.New("delete declined")
)

// ParseFilter accepts the four filter values. An empty string means All.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrInvalidFilter
}

// View is the order management screen of one admin session. The order list
// is a cache of the store: it is replaced on load and otherwise changed only
// after the store has accepted a mutation. The lock is never held across a
// store call.
type View struct {
	store store.OrderStore

	loadOnce sync.Once

	mu       sync.Mutex
	orders   []models.Order
	selected *string
	filter   Filter
}

func NewView(s store.OrderStore) *View {
	return &View{store: s, filter: FilterAll}
}

// Activate loads the orders the first time the view is shown. Later calls do
// nothing, including after a failed load.
func (v *View) Activate(ctx context.Context) {
	v.loadOnce.Do(func() {
		v.Load(ctx)
	})
}

// Load replaces the order list with a fresh snapshot. On failure the list is
// left empty and the error is logged.
func (v *View) Load(ctx context.Context) error {
	orders, err := v.store.Fetch(ctx)
	if err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"kind": store.KindOf(err),
		}).Errorf("Error fetching orders: %v", err)
		orders = nil
	}

	v.mu.Lock()
	v.orders = orders
	v.mu.Unlock()
	return err
}

// Orders returns a copy of the loaded orders.
func (v *View) Orders() []models.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Order(nil), v.orders...)
}

// Filtered returns the orders matching the current filter, in load order.
func (v *View) Filtered() []models.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	return filterOrders(v.orders, v.filter)
}

func (v *View) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *View) SetFilter(f Filter) error {
	if _, err := ParseFilter(string(f)); err != nil || f == "" {
		return ErrInvalidFilter
	}
	v.mu.Lock()
	v.filter = f
	v.mu.Unlock()
	return nil
}

// ToggleDetail expands the order with the given id, or collapses it when it
// is already expanded. Only one order is expanded at a time.
func (v *View) ToggleDetail(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected != nil && *v.selected == id {
		v.selected = nil
		return
	}
	v.selected = &id
}

// Selected returns the id of the expanded order.
func (v *View) Selected() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == nil {
		return "", false
	}
	return *v.selected, true
}

// ChangeStatus patches the status in the store and mirrors it locally once
// the store accepts it. Any of the selectable statuses may be chosen from
// any other.
func (v *View) ChangeStatus(ctx context.Context, d Dialog, id string, status models.Status) error {
	if !status.Valid() {
		d.Notify(ctx, statusErrorNotice)
		return ErrInvalidStatus
	}

	if err := v.store.PatchStatus(ctx, id, status); err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"order_id": id,
			"status":   status,
			"kind":     store.KindOf(err),
		}).Errorf("Error updating order status: %v", err)
		d.Notify(ctx, statusErrorNotice)
		return err
	}

	v.mu.Lock()
	v.orders = withStatus(v.orders, id, status)
	v.mu.Unlock()

	utils.InfoLogger.WithFields(logrus.Fields{"order_id": id, "status": status}).Info("Order status updated")

	switch status {
	case models.StatusDispatch:
		d.Notify(ctx, dispatchedNotice)
	case models.StatusSuccess:
		d.Notify(ctx, completedNotice)
	}
	return nil
}

// Delete asks for confirmation, removes the order from the store and then
// from the local list. A declined prompt returns ErrDeclined and touches
// nothing.
func (v *View) Delete(ctx context.Context, d Dialog, id string) error {
	if !d.Confirm(ctx, DeletePrompt) {
		return ErrDeclined
	}

	if err := v.store.Delete(ctx, id); err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"order_id": id,
			"kind":     store.KindOf(err),
		}).Errorf("Error deleting order: %v", err)
		d.Notify(ctx, deleteErrorNotice)
		return err
	}

	v.mu.Lock()
	v.orders = without(v.orders, id)
	v.mu.Unlock()

	utils.InfoLogger.WithField("order_id", id).Info("Order deleted")
	d.Notify(ctx, deletedNotice)
	return nil
}

func filterOrders(orders []models.Order, f Filter) []models.Order {
	if f == FilterAll {
		return append([]models.Order(nil), orders...)
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == string(f) {
			out = append(out, o)
		}
	}
	return out
}

// withStatus returns a copy of orders with the status of id replaced. An
// unknown id leaves the list as is.
func withStatus(orders []models.Order, id string, status models.Status) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

func without(orders []models.Order, id string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}
