package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samirrijal/placesbridge/internal/core/convert"
	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
	"github.com/samirrijal/placesbridge/internal/core/ports"
	"github.com/samirrijal/placesbridge/internal/pkg/logging"
	"github.com/samirrijal/placesbridge/internal/pkg/metrics"
	"github.com/samirrijal/placesbridge/internal/pkg/telemetry"
)

var tracer = otel.Tracer("github.com/samirrijal/placesbridge/internal/core/usecases")

// AutocompleteService turns one channel request into one vendor call.
type AutocompleteService struct {
	client   ports.PlacesClient
	sessions *SessionManager

	cache      ports.CacheService
	cacheTTL   int
	requestLog ports.RequestLogRepository
	events     ports.EventPublisher
}

// NewAutocompleteService creates a new AutocompleteService.
func NewAutocompleteService(client ports.PlacesClient, sessions *SessionManager) *AutocompleteService {
	return &AutocompleteService{client: client, sessions: sessions}
}

// WithCache enables read-through caching of converted predictions.
// A non-positive TTL leaves caching off.
func (s *AutocompleteService) WithCache(cache ports.CacheService, ttlSeconds int) *AutocompleteService {
	if cache != nil && ttlSeconds > 0 {
		s.cache = cache
		s.cacheTTL = ttlSeconds
	}
	return s
}

// WithRequestLog records every call in repo.
func (s *AutocompleteService) WithRequestLog(repo ports.RequestLogRepository) *AutocompleteService {
	s.requestLog = repo
	return s
}

// WithEvents publishes a completion event per call.
func (s *AutocompleteService) WithEvents(events ports.EventPublisher) *AutocompleteService {
	s.events = events
	return s
}

// Sessions exposes the session manager backing this service.
func (s *AutocompleteService) Sessions() *SessionManager {
	return s.sessions
}

// FindAutocompletePredictions validates the request, takes a session token
// and issues exactly one vendor call. Enumeration errors wrap
// domain.ErrInvalidArgument and fail before the call; vendor failures wrap
// domain.ErrPlacesAPI. No partial result is ever returned with an error.
func (s *AutocompleteService) FindAutocompletePredictions(ctx context.Context, in messages.FindAutocompletePredictionsRequest) ([]*messages.AutocompletePrediction, error) {
	ctx, span := tracer.Start(ctx, "AutocompleteService.FindAutocompletePredictions")
	defer span.End()

	log := logging.FromContext(ctx)
	start := time.Now()

	// Validate enumerations before touching the session.
	if _, err := convert.ToSingleTypeFilter(in.TypeFilter); err != nil {
		metrics.AutocompleteRequests.WithLabelValues("invalid_argument").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	logDegradedInputs(ctx, in)

	// Blank queries return before a session token is taken.
	if strings.TrimSpace(in.Query) == "" {
		metrics.AutocompleteRequests.WithLabelValues("empty_query").Inc()
		return []*messages.AutocompletePrediction{}, nil
	}

	refresh := in.RefreshToken != nil && *in.RefreshToken
	token := s.sessions.Token(refresh)

	req, err := convert.ToAutocompleteRequest(in, token)
	if err != nil {
		metrics.AutocompleteRequests.WithLabelValues("invalid_argument").Inc()
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int(telemetry.AttrQueryLength, len(req.Query)),
		attribute.String(telemetry.AttrTypeFilter, req.TypeFilter.Name()),
		attribute.Bool(telemetry.AttrRefreshToken, refresh),
	)

	cacheKey := ""
	if s.cache != nil {
		cacheKey = predictionCacheKey(req)
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var cached []*messages.AutocompletePrediction
			if err := json.Unmarshal(data, &cached); err == nil {
				metrics.CacheHits.WithLabelValues("autocomplete").Inc()
				s.record(ctx, req, len(cached), "OK", true, start)
				return cached, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("autocomplete").Inc()
	}

	resp, err := s.client.FindAutocompletePredictions(ctx, req)
	if err != nil {
		status := "ERROR"
		var perr *domain.PlacesError
		if errors.As(err, &perr) {
			status = perr.Status
		} else if !errors.Is(err, domain.ErrPlacesAPI) {
			err = fmt.Errorf("%w: %w", domain.ErrPlacesAPI, err)
		}
		metrics.AutocompleteRequests.WithLabelValues("api_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("autocomplete call failed", "status", status, "error", err)
		s.record(ctx, req, 0, status, false, start)
		return nil, err
	}

	out, err := convert.ToPredictionList(resp)
	if err != nil {
		metrics.AutocompleteRequests.WithLabelValues("invalid_argument").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.record(ctx, req, 0, "CONVERSION_FAILED", false, start)
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, s.cacheTTL)
		}
	}

	metrics.AutocompleteRequests.WithLabelValues("ok").Inc()
	metrics.AutocompleteLatency.Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int(telemetry.AttrResultCount, len(out)))
	log.Debug("autocomplete call completed", "results", len(out), "latency", time.Since(start).String())
	s.record(ctx, req, len(out), "OK", false, start)
	return out, nil
}

// record writes the audit entry and completion event. Both are best effort.
func (s *AutocompleteService) record(ctx context.Context, req domain.AutocompleteRequest, count int, status string, cached bool, start time.Time) {
	if s.requestLog == nil && s.events == nil {
		return
	}
	entry := &domain.RequestLogEntry{
		SessionToken: req.SessionToken,
		Query:        req.Query,
		ResultCount:  count,
		Status:       status,
		Cached:       cached,
		LatencyMS:    time.Since(start).Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}
	log := logging.FromContext(ctx)
	if s.requestLog != nil {
		if err := s.requestLog.Insert(ctx, entry); err != nil {
			log.Warn("request log insert failed", "error", err)
		}
	}
	if s.events != nil {
		if err := s.events.PublishAutocompleteCompleted(ctx, entry); err != nil {
			log.Warn("publish autocomplete event failed", "error", err)
		}
	}
}

// logDegradedInputs notes optional geographic inputs that were supplied but
// could not be used.
func logDegradedInputs(ctx context.Context, in messages.FindAutocompletePredictionsRequest) {
	log := logging.FromContext(ctx)
	_, biasOK := convert.ToBounds(in.LocationBias)
	_, restrictionOK := convert.ToBounds(in.LocationRestriction)
	if in.LocationBias != nil && !biasOK {
		log.Debug("location bias incomplete, ignored")
	}
	if in.LocationRestriction != nil && !restrictionOK {
		log.Debug("location restriction incomplete, ignored")
	}
	if biasOK && restrictionOK {
		log.Warn("both location bias and restriction supplied, using restriction")
	}
	if _, ok := convert.ToCoordinate(in.Origin); in.Origin != nil && !ok {
		log.Debug("origin incomplete, ignored")
	}
}

// predictionCacheKey identifies a request independent of its session token.
func predictionCacheKey(req domain.AutocompleteRequest) string {
	req.SessionToken = ""
	data, _ := json.Marshal(req)
	h := sha256.Sum256(data)
	return "places:autocomplete:" + hex.EncodeToString(h[:16])
}
