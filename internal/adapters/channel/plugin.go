package channel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
)

// Finder is the orchestrator as seen by the plugin.
type Finder interface {
	FindAutocompletePredictions(ctx context.Context, req messages.FindAutocompletePredictionsRequest) ([]*messages.AutocompletePrediction, error)
}

// Factory builds the orchestrator around a vendor client for apiKey.
type Factory func(apiKey string) (Finder, error)

// Host is what the hosting process hands the plugin on attach.
type Host struct {
	APIKey string
}

// Plugin owns the handler registrations on every transport.
type Plugin struct {
	host       Host
	factory    Factory
	registrars []Registrar

	mu       sync.Mutex
	attached bool

	once     sync.Once
	finder   Finder
	buildErr error
}

// NewPlugin creates a detached plugin.
func NewPlugin(host Host, factory Factory, registrars ...Registrar) *Plugin {
	return &Plugin{host: host, factory: factory, registrars: registrars}
}

// Attach registers the handler on every transport. Calling it again while
// attached is a no-op. If any registrar fails, the ones already registered
// are rolled back.
func (p *Plugin) Attach(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attached {
		return nil
	}

	for i, r := range p.registrars {
		if err := r.Register(p.handle); err != nil {
			for _, done := range p.registrars[:i] {
				_ = done.Unregister()
			}
			return fmt.Errorf("attach %s: %w", r.Name(), err)
		}
		slog.DebugContext(ctx, "channel handler registered", "transport", r.Name())
	}
	p.attached = true
	slog.InfoContext(ctx, "places plugin attached", "transports", len(p.registrars))
	return nil
}

// Detach unregisters every transport. Calling it while detached is a no-op.
// The vendor client, once built, is kept for a later Attach.
func (p *Plugin) Detach() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.attached {
		return nil
	}

	var errs []error
	for _, r := range p.registrars {
		if err := r.Unregister(); err != nil {
			errs = append(errs, fmt.Errorf("detach %s: %w", r.Name(), err))
		}
	}
	p.attached = false
	slog.Info("places plugin detached")
	return errors.Join(errs...)
}

// Attached reports whether the handler is currently registered.
func (p *Plugin) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attached
}

func (p *Plugin) handle(ctx context.Context, req messages.FindAutocompletePredictionsRequest) ([]*messages.AutocompletePrediction, error) {
	if !p.Attached() {
		return nil, domain.ErrNotAttached
	}
	p.once.Do(func() {
		p.finder, p.buildErr = p.factory(p.host.APIKey)
	})
	if p.buildErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotAttached, p.buildErr)
	}
	return p.finder.FindAutocompletePredictions(ctx, req)
}
