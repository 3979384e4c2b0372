// Package channel binds the autocomplete orchestrator to the transports that
// carry cross-platform channel messages.
package channel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
	"github.com/samirrijal/placesbridge/internal/pkg/logging"
	"github.com/samirrijal/placesbridge/internal/pkg/metrics"
	"github.com/samirrijal/placesbridge/internal/pkg/telemetry"
)

var tracer = otel.Tracer("github.com/samirrijal/placesbridge/internal/adapters/channel")

// Handler serves the findAutocompletePredictions channel operation.
type Handler func(ctx context.Context, req messages.FindAutocompletePredictionsRequest) ([]*messages.AutocompletePrediction, error)

// Registrar installs a Handler on one transport.
type Registrar interface {
	Name() string
	Register(h Handler) error
	Unregister() error
}

// Code classifies err into a channel error code.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidArgument):
		return messages.CodeInvalidArgument
	case errors.Is(err, domain.ErrPlacesAPI):
		return messages.CodeAPIError
	case errors.Is(err, domain.ErrNotAttached),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return messages.CodeUnavailable
	default:
		return messages.CodeInternal
	}
}

// Serve runs h and wraps the outcome in a Reply envelope. A nil result on
// success is returned as an empty list.
func Serve(ctx context.Context, transport string, h Handler, id string, req messages.FindAutocompletePredictionsRequest) messages.Reply {
	ctx, span := tracer.Start(ctx, "channel.findAutocompletePredictions",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String(telemetry.AttrTransport, transport)),
	)
	defer span.End()

	result, err := h(ctx, req)
	if err != nil {
		code := Code(err)
		span.SetStatus(codes.Error, code)
		metrics.ChannelMessages.WithLabelValues(transport, code).Inc()
		if code == messages.CodeInternal {
			logging.FromContext(ctx).Error("channel handler failed", "transport", transport, "error", err)
		}
		return messages.Reply{ID: id, Error: &messages.Error{Code: code, Message: err.Error()}}
	}
	metrics.ChannelMessages.WithLabelValues(transport, "ok").Inc()
	if result == nil {
		result = []*messages.AutocompletePrediction{}
	}
	return messages.Reply{ID: id, Result: result}
}
