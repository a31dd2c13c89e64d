package dashboard

import (
	"context"
	"sync"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeWarning NoticeKind = "warning"
)

// Prompt is a destructive-action confirmation shown before a delete.
type Prompt struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	Icon        NoticeKind `json:"icon"`
	ConfirmText string     `json:"confirm_text"`
}

// Notice is an acknowledgment shown to the admin after an action.
type Notice struct {
	Title string     `json:"title"`
	Text  string     `json:"text"`
	Kind  NoticeKind `json:"kind"`
}

// Dialog is the UI surface the view talks to. Confirm blocks until the admin
// answers; Notify is fire-and-forget.
type Dialog interface {
	Confirm(ctx context.Context, p Prompt) bool
	Notify(ctx context.Context, n Notice)
}

var (
	DeletePrompt = Prompt{
		Title:       "Are you sure?",
		Text:        "You won't be able to revert this!",
		Icon:        NoticeWarning,
		ConfirmText: "Yes, delete it!",
	}

	deletedNotice     = Notice{Title: "Deleted!", Text: "Your order has been deleted.", Kind: NoticeSuccess}
	deleteErrorNotice = Notice{Title: "Error!", Text: "Something went wrong while deleting.", Kind: NoticeError}
	statusErrorNotice = Notice{Title: "Error!", Text: "Something went wrong while updating the status.", Kind: NoticeError}
	dispatchedNotice  = Notice{Title: "Dispatch", Text: "The order is now dispatched.", Kind: NoticeSuccess}
	completedNotice   = Notice{Title: "Success", Text: "The order has been completed.", Kind: NoticeSuccess}
)

// NoticeQueue collects notices until the next page render drains them.
type NoticeQueue struct {
	mu      sync.Mutex
	notices []Notice
}

func (q *NoticeQueue) Notify(_ context.Context, n Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notices = append(q.notices, n)
}

// Drain returns the queued notices and empties the queue.
func (q *NoticeQueue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.notices
	q.notices = nil
	return out
}

// Answered is a Dialog whose confirmation was already given (or refused) by
// the admin before the action reached the view, as with a posted form.
type Answered struct {
	Confirmed bool
	Notifier  interface {
		Notify(ctx context.Context, n Notice)
	}
}

func (a Answered) Confirm(context.Context, Prompt) bool { return a.Confirmed }

func (a Answered) Notify(ctx context.Context, n Notice) {
	if a.Notifier != nil {
		a.Notifier.Notify(ctx, n)
	}
}
