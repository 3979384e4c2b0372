package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/placesbridge/internal/core/messages"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // bad_request, not_found, invalid_argument, api_error, ...
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, 400, "bad_request", msg)
}

// errUnavailable returns a 503 error.
func errUnavailable(c *fiber.Ctx, msg string) error {
	return newError(c, 503, messages.CodeUnavailable, msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, 500, messages.CodeInternal, msg)
}

// errChannel maps a channel reply error to an HTTP status.
func errChannel(c *fiber.Ctx, e *messages.Error) error {
	status := 500
	switch e.Code {
	case messages.CodeInvalidArgument:
		status = 400
	case messages.CodeAPIError:
		status = 502
	case messages.CodeUnavailable:
		status = 503
	}
	return newError(c, status, e.Code, e.Message)
}
