package ports

import (
	"context"

	"github.com/samirrijal/placesbridge/internal/core/domain"
)

// PlacesClient issues one autocomplete call to the vendor. Implementations
// return a *domain.PlacesError for vendor-side failures.
type PlacesClient interface {
	FindAutocompletePredictions(ctx context.Context, req domain.AutocompleteRequest) (*domain.AutocompleteResponse, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishAutocompleteCompleted(ctx context.Context, entry *domain.RequestLogEntry) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
