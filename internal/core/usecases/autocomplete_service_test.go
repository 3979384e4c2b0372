package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
	"github.com/samirrijal/placesbridge/internal/core/usecases"
)

func twoPredictions(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
	distance := int64(850)
	return &domain.AutocompleteResponse{Predictions: []domain.Prediction{
		{
			PlaceID:        "ChIJkoulu1",
			FullText:       "Koulukatu, Oulu, Finland",
			PrimaryText:    "Koulukatu",
			SecondaryText:  "Oulu, Finland",
			DistanceMeters: &distance,
			PlaceTypes:     []string{"route", "geocode"},
		},
		{
			PlaceID:       "ChIJkoulu2",
			FullText:      "Koulutie, Kempele, Finland",
			PrimaryText:   "Koulutie",
			SecondaryText: "Kempele, Finland",
			PlaceTypes:    []string{"school", "point_of_interest", "establishment"},
		},
	}}, nil
}

func newService(client *mockPlacesClient) *usecases.AutocompleteService {
	return usecases.NewAutocompleteService(client, usecases.NewSessionManager(0))
}

func TestAutocomplete_QueryOnly(t *testing.T) {
	client := &mockPlacesClient{findFn: twoPredictions}
	svc := newService(client)

	got, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "Koulu"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(got))
	}

	p := got[0]
	if p.PlaceID != "ChIJkoulu1" || p.FullText != "Koulukatu, Oulu, Finland" ||
		p.PrimaryText != "Koulukatu" || p.SecondaryText != "Oulu, Finland" {
		t.Errorf("unexpected first prediction %+v", p)
	}
	if p.DistanceMeters == nil || *p.DistanceMeters != 850 {
		t.Errorf("expected distance 850, got %v", p.DistanceMeters)
	}
	if len(p.PlaceTypes) != 2 || *p.PlaceTypes[0] != int64(domain.PlaceTypeRoute) || *p.PlaceTypes[1] != int64(domain.PlaceTypeGeocode) {
		t.Errorf("unexpected place types %v", p.PlaceTypes)
	}
	if got[1].DistanceMeters != nil {
		t.Errorf("expected no distance on second prediction, got %v", *got[1].DistanceMeters)
	}
	if len(got[1].PlaceTypes) != 3 || *got[1].PlaceTypes[2] != int64(domain.PlaceTypeEstablishment) {
		t.Errorf("unexpected second place types %v", got[1].PlaceTypes)
	}

	calls := client.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected exactly 1 outbound call, got %d", len(calls))
	}
	req := calls[0]
	if req.Query != "Koulu" || req.SessionToken == "" {
		t.Errorf("unexpected outbound request %+v", req)
	}
	if req.LocationBias != nil || req.LocationRestriction != nil || req.Origin != nil ||
		req.Countries != nil || req.TypeFilter != domain.TypeFilterNone {
		t.Errorf("expected no optional filters, got %+v", req)
	}
}

func TestAutocomplete_SessionReuseAndRefresh(t *testing.T) {
	client := &mockPlacesClient{}
	svc := newService(client)
	ctx := context.Background()

	for _, refresh := range []*bool{nil, messages.Bool(false), messages.Bool(true)} {
		if _, err := svc.FindAutocompletePredictions(ctx, messages.FindAutocompletePredictionsRequest{
			Query:        "Koulu",
			RefreshToken: refresh,
		}); err != nil {
			t.Fatal(err)
		}
	}

	calls := client.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	if calls[0].SessionToken != calls[1].SessionToken {
		t.Errorf("expected token reuse, got %q and %q", calls[0].SessionToken, calls[1].SessionToken)
	}
	if calls[2].SessionToken == calls[1].SessionToken {
		t.Errorf("expected a new token on refresh, got %q twice", calls[2].SessionToken)
	}
	if cur, _ := svc.Sessions().Current(); cur != calls[2].SessionToken {
		t.Errorf("expected refreshed token to be current, got %q", cur)
	}
}

func TestAutocomplete_AllFilters(t *testing.T) {
	client := &mockPlacesClient{}
	svc := newService(client)

	bounds := &messages.LatLngBounds{
		Southwest: messages.Point(60.4518, 22.2666),
		Northeast: messages.Point(70.0821, 27.8718),
	}
	_, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{
		Query:        "Koulu",
		LocationBias: bounds,
		Origin:       messages.Point(65.0121, 25.4651),
		Countries:    []*string{messages.String("fi")},
		TypeFilter:   []*int64{messages.Int64(int64(domain.TypeFilterEstablishment))},
	})
	if err != nil {
		t.Fatal(err)
	}

	req := client.Calls()[0]
	if req.LocationBias == nil || req.LocationBias.Northeast.Lat != 70.0821 {
		t.Errorf("unexpected bias %v", req.LocationBias)
	}
	if req.Origin == nil || req.Origin.Lng != 25.4651 {
		t.Errorf("unexpected origin %v", req.Origin)
	}
	if len(req.Countries) != 1 || req.Countries[0] != "fi" {
		t.Errorf("unexpected countries %v", req.Countries)
	}
	if req.TypeFilter != domain.TypeFilterEstablishment {
		t.Errorf("expected ESTABLISHMENT, got %v", req.TypeFilter)
	}
}

func TestAutocomplete_InvalidTypeFilterFailsBeforeCall(t *testing.T) {
	client := &mockPlacesClient{}
	svc := newService(client)

	_, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{
		Query:      "Koulu",
		TypeFilter: []*int64{messages.Int64(9)},
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if n := len(client.Calls()); n != 0 {
		t.Errorf("expected no outbound call, got %d", n)
	}
	if _, ok := svc.Sessions().Current(); ok {
		t.Error("expected no session token to be minted")
	}
}

func TestAutocomplete_PartialBoundsDegrade(t *testing.T) {
	client := &mockPlacesClient{}
	svc := newService(client)

	_, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{
		Query:        "Koulu",
		LocationBias: &messages.LatLngBounds{Northeast: messages.Point(70.0821, 27.8718)},
		Origin:       &messages.LatLng{Latitude: messages.Float64(65.0121)},
	})
	if err != nil {
		t.Fatalf("expected degradation, not failure: %v", err)
	}
	req := client.Calls()[0]
	if req.LocationBias != nil || req.Origin != nil {
		t.Errorf("expected partial inputs to be dropped, got %+v", req)
	}
}

func TestAutocomplete_APIError(t *testing.T) {
	client := &mockPlacesClient{
		findFn: func(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
			return nil, &domain.PlacesError{Status: "REQUEST_DENIED", Message: "The provided API key is invalid."}
		},
	}
	repo := &mockRequestLog{}
	svc := newService(client).WithRequestLog(repo)

	got, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "Koulu"})
	if got != nil {
		t.Errorf("expected no partial result, got %v", got)
	}
	if !errors.Is(err, domain.ErrPlacesAPI) {
		t.Fatalf("expected ErrPlacesAPI, got %v", err)
	}
	var perr *domain.PlacesError
	if !errors.As(err, &perr) || perr.Message != "The provided API key is invalid." {
		t.Errorf("expected vendor message to survive, got %v", err)
	}
	if len(repo.entries) != 1 || repo.entries[0].Status != "REQUEST_DENIED" {
		t.Errorf("expected one REQUEST_DENIED log entry, got %+v", repo.entries)
	}
}

func TestAutocomplete_TransportErrorIsAPIError(t *testing.T) {
	client := &mockPlacesClient{
		findFn: func(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
			return nil, context.DeadlineExceeded
		},
	}
	svc := newService(client)

	_, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "Koulu"})
	if !errors.Is(err, domain.ErrPlacesAPI) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped deadline error, got %v", err)
	}
}

func TestAutocomplete_UnknownPlaceTypeFails(t *testing.T) {
	client := &mockPlacesClient{
		findFn: func(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
			return &domain.AutocompleteResponse{Predictions: []domain.Prediction{
				{PlaceID: "x", PlaceTypes: []string{"spaceport"}},
			}}, nil
		},
	}
	svc := newService(client)

	got, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "Koulu"})
	if !errors.Is(err, domain.ErrInvalidArgument) || got != nil {
		t.Fatalf("expected ErrInvalidArgument and no result, got %v, %v", got, err)
	}
}

func TestAutocomplete_EmptyQuery(t *testing.T) {
	client := &mockPlacesClient{findFn: twoPredictions}
	svc := newService(client)

	got, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "   "})
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
	if n := len(client.Calls()); n != 0 {
		t.Errorf("expected no outbound call, got %d", n)
	}
}

func TestAutocomplete_EmptyQueryKeepsSession(t *testing.T) {
	client := &mockPlacesClient{findFn: twoPredictions}
	svc := newService(client)
	ctx := context.Background()

	if _, err := svc.FindAutocompletePredictions(ctx, messages.FindAutocompletePredictionsRequest{
		Query: "", RefreshToken: messages.Bool(true),
	}); err != nil {
		t.Fatal(err)
	}
	if _, ok := svc.Sessions().Current(); ok {
		t.Error("blank query with refresh should not mint a token")
	}

	if _, err := svc.FindAutocompletePredictions(ctx, messages.FindAutocompletePredictionsRequest{Query: "Koulu"}); err != nil {
		t.Fatal(err)
	}
	before, _ := svc.Sessions().Current()
	if _, err := svc.FindAutocompletePredictions(ctx, messages.FindAutocompletePredictionsRequest{
		Query: " \t", RefreshToken: messages.Bool(true),
	}); err != nil {
		t.Fatal(err)
	}
	if after, _ := svc.Sessions().Current(); after != before {
		t.Errorf("blank query rotated session %s -> %s", before, after)
	}
}

func TestAutocomplete_CacheHitSkipsCall(t *testing.T) {
	client := &mockPlacesClient{findFn: twoPredictions}
	repo := &mockRequestLog{}
	svc := newService(client).WithCache(newMockCache(), 60).WithRequestLog(repo)
	ctx := context.Background()

	first, err := svc.FindAutocompletePredictions(ctx, messages.FindAutocompletePredictionsRequest{Query: "Koulu"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.FindAutocompletePredictions(ctx, messages.FindAutocompletePredictionsRequest{
		Query:        "Koulu",
		RefreshToken: messages.Bool(true),
	})
	if err != nil {
		t.Fatal(err)
	}

	if n := len(client.Calls()); n != 1 {
		t.Errorf("expected 1 outbound call, got %d", n)
	}
	if len(second) != len(first) || second[0].PlaceID != first[0].PlaceID {
		t.Errorf("expected cached result to match, got %+v", second)
	}
	if len(repo.entries) != 2 || repo.entries[0].Cached || !repo.entries[1].Cached {
		t.Errorf("expected one live then one cached entry, got %+v", repo.entries)
	}
}

func TestAutocomplete_ZeroTTLDisablesCache(t *testing.T) {
	client := &mockPlacesClient{findFn: twoPredictions}
	cache := newMockCache()
	svc := newService(client).WithCache(cache, 0)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.FindAutocompletePredictions(ctx, messages.FindAutocompletePredictionsRequest{Query: "Koulu"}); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(client.Calls()); n != 2 {
		t.Errorf("expected 2 outbound calls, got %d", n)
	}
	if len(cache.data) != 0 {
		t.Errorf("expected nothing cached, got %d keys", len(cache.data))
	}
}

func TestAutocomplete_RecordsAndPublishes(t *testing.T) {
	client := &mockPlacesClient{findFn: twoPredictions}
	repo := &mockRequestLog{insertErr: errors.New("db down")}
	events := &mockEvents{}
	svc := newService(client).WithRequestLog(repo).WithEvents(events)

	got, err := svc.FindAutocompletePredictions(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "Koulu"})
	if err != nil {
		t.Fatalf("audit failures must not fail the call: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(got))
	}
	if len(events.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.published))
	}
	e := events.published[0]
	if e.Query != "Koulu" || e.ResultCount != 2 || e.Status != "OK" || e.SessionToken == "" {
		t.Errorf("unexpected event %+v", e)
	}
}
