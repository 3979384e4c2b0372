package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
	"github.com/samirrijal/placesbridge/internal/pkg/logging"
	"github.com/samirrijal/placesbridge/internal/pkg/metrics"
)

// wsRequest is one autocomplete request frame. ID is echoed in the reply so
// clients can drop answers to stale keystrokes.
type wsRequest struct {
	ID string `json:"id"`
	messages.FindAutocompletePredictionsRequest
}

// WebSocketHandler serves the autocomplete channel over a WebSocket.
// Each text frame is one request; replies may arrive out of order.
// Clients send JSON: {"id":"1","query":"hel","typeFilter":[1]}
func WebSocketHandler(deps *Dependencies) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		remoteAddr := c.RemoteAddr().String()
		logger := slog.Default().With("transport", "websocket", "remote", remoteAddr)
		logger.Info("ws client connected")
		metrics.ActiveWebSockets.Inc()
		defer metrics.ActiveWebSockets.Dec()

		ctx, cancel := context.WithCancel(logging.WithLogger(context.Background(), logger))
		defer cancel()

		var mu sync.Mutex
		writeJSON := func(v interface{}) error {
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			return c.WriteMessage(websocket.TextMessage, data)
		}

		// Keep-alive ping
		go func() {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					mu.Lock()
					err := c.WriteMessage(websocket.PingMessage, nil)
					mu.Unlock()
					if err != nil {
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()

		var inflight sync.WaitGroup
		for {
			_, msg, err := c.ReadMessage()
			if err != nil {
				break
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				_ = writeJSON(messages.Reply{Error: &messages.Error{
					Code:    messages.CodeInvalidArgument,
					Message: "invalid JSON",
				}})
				continue
			}

			inflight.Add(1)
			go func() {
				defer inflight.Done()
				reqCtx, done := context.WithTimeout(ctx, deps.requestTimeout())
				defer done()
				if deps.WebSocket == nil {
					_ = writeJSON(messages.Reply{ID: req.ID, Error: &messages.Error{
						Code:    messages.CodeUnavailable,
						Message: domain.ErrNotAttached.Error(),
					}})
					return
				}
				reply := deps.WebSocket.Serve(reqCtx, req.ID, req.FindAutocompletePredictionsRequest)
				if err := writeJSON(reply); err != nil {
					logger.Debug("ws write failed", "error", err)
				}
			}()
		}

		cancel()
		inflight.Wait()
		logger.Info("ws client disconnected")
	}
}
