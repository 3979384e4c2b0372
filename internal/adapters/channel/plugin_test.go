package channel_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/samirrijal/placesbridge/internal/adapters/channel"
	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
)

type fakeFinder struct {
	result []*messages.AutocompletePrediction
	err    error
	calls  atomic.Int32
}

func (f *fakeFinder) FindAutocompletePredictions(ctx context.Context, req messages.FindAutocompletePredictionsRequest) ([]*messages.AutocompletePrediction, error) {
	f.calls.Add(1)
	return f.result, f.err
}

type failingRegistrar struct {
	name         string
	err          error
	unregistered bool
}

func (r *failingRegistrar) Name() string                   { return r.name }
func (r *failingRegistrar) Register(channel.Handler) error { return r.err }
func (r *failingRegistrar) Unregister() error {
	r.unregistered = true
	return nil
}

func countingFactory(f channel.Finder, builds *atomic.Int32, gotKey *string) channel.Factory {
	return func(apiKey string) (channel.Finder, error) {
		builds.Add(1)
		if gotKey != nil {
			*gotKey = apiKey
		}
		return f, nil
	}
}

func TestPlugin_AttachRegistersEveryTransport(t *testing.T) {
	finder := &fakeFinder{result: []*messages.AutocompletePrediction{{PlaceID: "p1"}}}
	var builds atomic.Int32
	var gotKey string
	rest, ws := channel.NewSlot("rest"), channel.NewSlot("websocket")
	p := channel.NewPlugin(channel.Host{APIKey: "key-1"}, countingFactory(finder, &builds, &gotKey), rest, ws)

	if p.Attached() {
		t.Fatal("new plugin should be detached")
	}
	if err := p.Attach(context.Background()); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !p.Attached() {
		t.Fatal("expected attached")
	}
	if builds.Load() != 0 {
		t.Error("client should be built lazily, not on attach")
	}

	for _, s := range []*channel.Slot{rest, ws} {
		got, err := s.Handle(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "a"})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s.Name(), err)
		}
		if len(got) != 1 || got[0].PlaceID != "p1" {
			t.Errorf("%s: unexpected result %+v", s.Name(), got)
		}
	}
	if builds.Load() != 1 {
		t.Errorf("factory called %d times, want 1", builds.Load())
	}
	if gotKey != "key-1" {
		t.Errorf("api key = %q, want key-1", gotKey)
	}
}

func TestPlugin_AttachIsIdempotent(t *testing.T) {
	var builds atomic.Int32
	p := channel.NewPlugin(channel.Host{}, countingFactory(&fakeFinder{}, &builds, nil), channel.NewSlot("rest"))
	for i := 0; i < 3; i++ {
		if err := p.Attach(context.Background()); err != nil {
			t.Fatalf("Attach #%d: %v", i, err)
		}
	}
	if !p.Attached() {
		t.Error("expected attached")
	}
}

func TestPlugin_DetachUnregisters(t *testing.T) {
	var builds atomic.Int32
	slot := channel.NewSlot("rest")
	p := channel.NewPlugin(channel.Host{}, countingFactory(&fakeFinder{}, &builds, nil), slot)

	if err := p.Detach(); err != nil {
		t.Fatalf("Detach before Attach: %v", err)
	}
	_ = p.Attach(context.Background())
	if err := p.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if err := p.Detach(); err != nil {
		t.Fatalf("second Detach: %v", err)
	}
	if p.Attached() {
		t.Error("expected detached")
	}

	_, err := slot.Handle(context.Background(), messages.FindAutocompletePredictionsRequest{Query: "a"})
	if !errors.Is(err, domain.ErrNotAttached) {
		t.Errorf("expected ErrNotAttached, got %v", err)
	}
}

func TestPlugin_ReattachReusesClient(t *testing.T) {
	var builds atomic.Int32
	slot := channel.NewSlot("rest")
	p := channel.NewPlugin(channel.Host{}, countingFactory(&fakeFinder{}, &builds, nil), slot)
	req := messages.FindAutocompletePredictionsRequest{Query: "a"}

	_ = p.Attach(context.Background())
	_, _ = slot.Handle(context.Background(), req)
	_ = p.Detach()
	_ = p.Attach(context.Background())
	_, _ = slot.Handle(context.Background(), req)

	if builds.Load() != 1 {
		t.Errorf("factory called %d times, want 1", builds.Load())
	}
}

func TestPlugin_AttachRollsBackOnFailure(t *testing.T) {
	var builds atomic.Int32
	first := channel.NewSlot("rest")
	bad := &failingRegistrar{name: "nats", err: errors.New("no connection")}
	p := channel.NewPlugin(channel.Host{}, countingFactory(&fakeFinder{}, &builds, nil), first, bad)

	err := p.Attach(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if p.Attached() {
		t.Error("plugin should stay detached")
	}
	if _, err := first.Handle(context.Background(), messages.FindAutocompletePredictionsRequest{}); !errors.Is(err, domain.ErrNotAttached) {
		t.Errorf("first registrar should be rolled back, got %v", err)
	}
}

func TestPlugin_FactoryErrorIsUnavailable(t *testing.T) {
	slot := channel.NewSlot("rest")
	p := channel.NewPlugin(channel.Host{}, func(string) (channel.Finder, error) {
		return nil, errors.New("bad base url")
	}, slot)
	_ = p.Attach(context.Background())

	reply := slot.Serve(context.Background(), "", messages.FindAutocompletePredictionsRequest{Query: "a"})
	if reply.Error == nil || reply.Error.Code != messages.CodeUnavailable {
		t.Errorf("unexpected reply %+v", reply)
	}
}

func TestPlugin_ConcurrentFirstCalls(t *testing.T) {
	var builds atomic.Int32
	finder := &fakeFinder{}
	slot := channel.NewSlot("websocket")
	p := channel.NewPlugin(channel.Host{}, countingFactory(finder, &builds, nil), slot)
	_ = p.Attach(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = slot.Handle(context.Background(), messages.FindAutocompletePredictionsRequest{Query: fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()

	if builds.Load() != 1 {
		t.Errorf("factory called %d times, want 1", builds.Load())
	}
	if finder.calls.Load() != 16 {
		t.Errorf("finder called %d times, want 16", finder.calls.Load())
	}
}
