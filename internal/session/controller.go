package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/diogo/agentchat/internal/models"
)

// Exchanger performs one request/response exchange with the remote
// assistant service. The conversation passed in is the full ordered
// history at dispatch time; the returned string is the assistant's
// reply.
type Exchanger interface {
	Exchange(ctx context.Context, conv models.Conversation) (string, error)
}

// Controller owns the send operation: it validates a draft, performs
// the optimistic append, dispatches the exchange, and reconciles the
// outcome back into the store.
//
// Sends are not serialized. Overlapping sends each anchor to their own
// snapshot and the last reconciliation to finish determines the visible
// conversation, independent of dispatch order.
type Controller struct {
	store  *Store
	client Exchanger
	log    *slog.Logger

	rollback  bool
	onUpdate  func(models.Conversation)
	onFailure func(error)
}

// ControllerOption is a function that configures the controller
type ControllerOption func(*Controller)

// WithLogger sets the logger used for diagnostics
func WithLogger(log *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRollbackOnFailure removes the optimistically appended user
// message when its exchange fails. The default keeps it, matching the
// observed behavior of retaining what the user sent.
func WithRollbackOnFailure(enabled bool) ControllerOption {
	return func(c *Controller) {
		c.rollback = enabled
	}
}

// WithUpdateHook registers a callback invoked after every change to the
// visible conversation.
func WithUpdateHook(fn func(models.Conversation)) ControllerOption {
	return func(c *Controller) {
		c.onUpdate = fn
	}
}

// WithFailureHook registers a callback invoked once per failed
// exchange.
func WithFailureHook(fn func(error)) ControllerOption {
	return func(c *Controller) {
		c.onFailure = fn
	}
}

// NewController creates a controller over store and client.
func NewController(store *Store, client Exchanger, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:  store,
		client: client,
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Store returns the underlying conversation store.
func (c *Controller) Store() *Store {
	return c.store
}

// Conversation returns the visible conversation.
func (c *Controller) Conversation() models.Conversation {
	return c.store.Current()
}

// Push validates the draft and performs the optimistic append: the
// trimmed draft becomes a user message, the new snapshot becomes the
// visible conversation, and that snapshot is returned for Resolve to
// anchor to. A whitespace-only draft is a no-op and returns false.
func (c *Controller) Push(draft string) (models.Conversation, bool) {
	text := strings.TrimSpace(draft)
	if text == "" {
		return nil, false
	}

	snap := c.store.Append(models.UserMessage(text))
	c.notify(snap)
	return snap, true
}

// Resolve runs the exchange anchored to snap and reconciles the outcome
// into the store. On success the assistant reply is appended to snap
// and installed. On failure the visible conversation keeps the user's
// message (unless rollback is enabled), the failure hook fires once,
// and the error is returned. Resolve never retries.
func (c *Controller) Resolve(ctx context.Context, snap models.Conversation) (models.Conversation, error) {
	reply, err := c.client.Exchange(ctx, snap)
	if err != nil {
		c.log.Error("exchange failed",
			"error", err,
			"messages", len(snap),
		)

		if c.rollback && len(snap) > 0 {
			prev := snap[:len(snap)-1]
			c.store.Replace(prev)
			c.notify(prev)
		}

		if c.onFailure != nil {
			c.onFailure(err)
		}
		return c.store.Current(), err
	}

	next := snap.Append(models.AssistantMessage(reply))
	c.store.Replace(next)
	c.notify(next)
	return next, nil
}

// Send runs a full turn: optimistic append, exchange, reconciliation.
// An empty or whitespace-only draft changes nothing and returns nil.
// Send blocks until the exchange resolves; callers that must stay
// responsive run it from a goroutine and paint the Push snapshot first.
func (c *Controller) Send(ctx context.Context, draft string) error {
	snap, ok := c.Push(draft)
	if !ok {
		return nil
	}

	_, err := c.Resolve(ctx, snap)
	return err
}

func (c *Controller) notify(conv models.Conversation) {
	if c.onUpdate != nil {
		c.onUpdate(conv)
	}
}
