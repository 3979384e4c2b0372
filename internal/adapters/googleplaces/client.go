// Package googleplaces calls the Google Places Autocomplete web service.
package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/pkg/logging"
	"github.com/samirrijal/placesbridge/internal/pkg/metrics"
	"github.com/samirrijal/placesbridge/internal/pkg/telemetry"
)

const autocompletePath = "/maps/api/place/autocomplete/json"

var tracer = otel.Tracer("github.com/samirrijal/placesbridge/internal/adapters/googleplaces")

// Options configures a Client.
type Options struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 = unlimited
}

// Client implements ports.PlacesClient over HTTP.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	http    *fasthttp.Client
}

// NewClient creates a Places web service client.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), int(opts.RateLimit)+1)
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		limiter: limiter,
		http: &fasthttp.Client{
			Name:                "placesbridge",
			ReadTimeout:         opts.Timeout,
			WriteTimeout:        opts.Timeout,
			MaxIdleConnDuration: 90 * time.Second,
		},
	}
}

// FindAutocompletePredictions issues exactly one GET to the autocomplete
// endpoint. No retries.
func (c *Client) FindAutocompletePredictions(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
	ctx, span := tracer.Start(ctx, "googleplaces.FindAutocompletePredictions", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit: %w", domain.ErrPlacesAPI, err)
	}

	params := EncodeRequest(req)
	params.Set("key", c.apiKey)
	uri := c.baseURL + autocompletePath + "?" + params.Encode()

	logging.FromContext(ctx).Debug("calling places autocomplete",
		"query_length", len(req.Query),
		"types", req.TypeFilter.Native(),
		"has_bias", req.LocationBias != nil,
		"has_restriction", req.LocationRestriction != nil,
	)

	httpReq := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(httpReq)
	httpResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(httpResp)

	httpReq.SetRequestURI(uri)
	httpReq.Header.SetMethod(fasthttp.MethodGet)
	httpReq.Header.Set(fasthttp.HeaderAccept, "application/json")

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(httpReq, httpResp, deadline)
	} else {
		err = c.http.DoTimeout(httpReq, httpResp, c.timeout)
	}
	if err != nil {
		metrics.PlacesCalls.WithLabelValues("TRANSPORT_ERROR").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: call autocomplete: %w", domain.ErrPlacesAPI, err)
	}

	if code := httpResp.StatusCode(); code != fasthttp.StatusOK {
		status := fmt.Sprintf("HTTP_%d", code)
		metrics.PlacesCalls.WithLabelValues(status).Inc()
		perr := &domain.PlacesError{Status: status, Message: truncate(string(httpResp.Body()), 512)}
		span.SetStatus(codes.Error, perr.Error())
		return nil, perr
	}

	resp, err := DecodeResponse(httpResp.Body())
	span.SetAttributes(attribute.String(telemetry.AttrVendorStatus, vendorStatus(err)))
	if err != nil {
		metrics.PlacesCalls.WithLabelValues(vendorStatus(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	metrics.PlacesCalls.WithLabelValues(statusOK).Inc()
	return resp, nil
}

// EncodeRequest renders a native request as web service query parameters,
// without the API key.
func EncodeRequest(req domain.AutocompleteRequest) url.Values {
	params := url.Values{}
	params.Set("input", req.Query)
	if req.SessionToken != "" {
		params.Set("sessiontoken", req.SessionToken.String())
	}
	if req.LocationRestriction != nil {
		params.Set("locationrestriction", req.LocationRestriction.Rectangle())
	} else if req.LocationBias != nil {
		params.Set("locationbias", req.LocationBias.Rectangle())
	}
	if req.Origin != nil {
		params.Set("origin", req.Origin.String())
	}
	if len(req.Countries) > 0 {
		components := make([]string, len(req.Countries))
		for i, c := range req.Countries {
			components[i] = "country:" + strings.ToLower(c)
		}
		params.Set("components", strings.Join(components, "|"))
	}
	if types := req.TypeFilter.Native(); types != "" {
		params.Set("types", types)
	}
	return params
}

// DecodeResponse parses a 200 response body. A vendor status other than OK
// or ZERO_RESULTS becomes a *domain.PlacesError.
func DecodeResponse(body []byte) (*domain.AutocompleteResponse, error) {
	var apiResp autocompleteResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &domain.PlacesError{Status: "INVALID_RESPONSE", Message: err.Error()}
	}
	if apiResp.Status != statusOK && apiResp.Status != statusZeroResults {
		return nil, &domain.PlacesError{Status: apiResp.Status, Message: apiResp.ErrorMessage}
	}

	out := &domain.AutocompleteResponse{
		Predictions: make([]domain.Prediction, len(apiResp.Predictions)),
	}
	for i, p := range apiResp.Predictions {
		out.Predictions[i] = domain.Prediction{
			PlaceID:        p.PlaceID,
			FullText:       p.Description,
			PrimaryText:    p.StructuredFormatting.MainText,
			SecondaryText:  p.StructuredFormatting.SecondaryText,
			DistanceMeters: p.DistanceMeters,
			PlaceTypes:     p.Types,
		}
	}
	return out, nil
}

func vendorStatus(err error) string {
	if err == nil {
		return statusOK
	}
	if perr, ok := err.(*domain.PlacesError); ok {
		return perr.Status
	}
	return "ERROR"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
