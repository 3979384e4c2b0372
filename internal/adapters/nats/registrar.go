package natsadapter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/samirrijal/placesbridge/internal/adapters/channel"
	"github.com/samirrijal/placesbridge/internal/core/messages"
	"github.com/samirrijal/placesbridge/internal/pkg/logging"
)

const transportName = "nats"

// Registrar serves the channel operation as NATS request/reply on a queue
// group, so several instances share the load.
type Registrar struct {
	conn    *nats.Conn
	subject string
	queue   string
	timeout time.Duration

	mu  sync.Mutex
	sub *nats.Subscription
}

// NewRegistrar creates a registrar. timeout bounds each handled message.
func NewRegistrar(conn *nats.Conn, subject, queue string, timeout time.Duration) *Registrar {
	return &Registrar{conn: conn, subject: subject, queue: queue, timeout: timeout}
}

func (r *Registrar) Name() string { return transportName }

// Register subscribes h. A previous subscription is replaced.
func (r *Registrar) Register(h channel.Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sub != nil {
		_ = r.sub.Unsubscribe()
		r.sub = nil
	}
	sub, err := r.conn.QueueSubscribe(r.subject, r.queue, func(msg *nats.Msg) {
		r.serve(h, msg)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", r.subject, err)
	}
	r.sub = sub
	return nil
}

// Unregister drains the subscription so in-flight requests still get a reply.
func (r *Registrar) Unregister() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sub == nil {
		return nil
	}
	err := r.sub.Drain()
	r.sub = nil
	return err
}

func (r *Registrar) serve(h channel.Handler, msg *nats.Msg) {
	codec := CodecFor(msg.Header.Get("Content-Type"))
	id := msg.Header.Get("Nats-Msg-Id")

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	logger := slog.Default().With("transport", transportName, "subject", msg.Subject)
	ctx = logging.WithLogger(ctx, logger)

	var reply messages.Reply
	req, err := codec.DecodeRequest(msg.Data)
	if err != nil {
		reply = messages.Reply{ID: id, Error: &messages.Error{
			Code:    messages.CodeInvalidArgument,
			Message: "malformed request: " + err.Error(),
		}}
	} else {
		reply = channel.Serve(ctx, transportName, h, id, req)
	}

	if msg.Reply == "" {
		return
	}
	data, err := codec.EncodeReply(reply)
	if err != nil {
		logger.Error("encode reply", "error", err)
		return
	}
	out := nats.NewMsg(msg.Reply)
	out.Header.Set("Content-Type", codec.ContentType())
	out.Data = data
	if err := msg.RespondMsg(out); err != nil {
		logger.Warn("respond", "error", err)
	}
}

// Request sends one request over NATS and waits for the reply. It is the
// client side of Registrar.
func Request(ctx context.Context, conn *nats.Conn, subject string, codec Codec, req messages.FindAutocompletePredictionsRequest) (messages.Reply, error) {
	data, err := codec.EncodeRequest(req)
	if err != nil {
		return messages.Reply{}, err
	}
	msg := nats.NewMsg(subject)
	msg.Header.Set("Content-Type", codec.ContentType())
	msg.Data = data

	resp, err := conn.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return messages.Reply{}, fmt.Errorf("request %s: %w", subject, err)
	}
	return codec.DecodeReply(resp.Data)
}
