package audit

import (
	"context"
	"log/slog"
)

// Worker drains audit events from a channel into a sink, keeping slow sinks
// (Kafka) off the engine's critical path.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run consumes until ctx is done. Sink failures are logged and the event
// dropped; the audit trail is best-effort, mutations never block on it.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Append(ctx, event); err != nil && w.logger != nil {
				w.logger.WarnContext(ctx, "audit append failed", "action", event.Action, "err", err)
			}
		}
	}
}

// ChannelSink bridges Emit calls onto a worker inbox. Full inboxes drop the
// event rather than block the mutation.
type ChannelSink struct {
	Inbox chan<- Event
}

func (c ChannelSink) Append(_ context.Context, event Event) error {
	select {
	case c.Inbox <- event:
	default:
	}
	return nil
}
