package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
)

// CatalogEntry describes one code of a closed enumeration.
type CatalogEntry struct {
	Code   int64  `json:"code"`
	Name   string `json:"name"`
	Native string `json:"native"`
}

// PlaceTypeCatalog lists every place type in code order.
func PlaceTypeCatalog() []CatalogEntry {
	types := domain.PlaceTypes()
	out := make([]CatalogEntry, len(types))
	for i, t := range types {
		out[i] = CatalogEntry{Code: int64(t), Name: t.Name(), Native: t.Native()}
	}
	return out
}

// TypeFilterCatalog lists every selectable type filter in code order.
func TypeFilterCatalog() []CatalogEntry {
	filters := domain.TypeFilters()
	out := make([]CatalogEntry, len(filters))
	for i, f := range filters {
		out[i] = CatalogEntry{Code: int64(f), Name: f.Name(), Native: f.Native()}
	}
	return out
}

// AutocompleteHandler serves findAutocompletePredictions over REST.
// The body is the channel request; the response is the Reply envelope.
func AutocompleteHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.REST == nil {
			return errUnavailable(c, "autocomplete channel not configured")
		}

		var req messages.FindAutocompletePredictionsRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		if len(req.Query) > 512 {
			return errBadRequest(c, "query too long (max 512 characters)")
		}

		reply := deps.REST.Serve(c.UserContext(), c.Get("X-Request-ID"), req)
		if reply.Error != nil {
			return errChannel(c, reply.Error)
		}

		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.JSON(reply)
	}
}

// PlaceTypesHandler returns the place type table.
func PlaceTypesHandler() fiber.Handler {
	catalog := PlaceTypeCatalog()
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog)
	}
}

// TypeFiltersHandler returns the type filter table.
func TypeFiltersHandler() fiber.Handler {
	catalog := TypeFilterCatalog()
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog)
	}
}

// SessionRequestsHandler returns the audited calls made under one session token.
func SessionRequestsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.RequestLog == nil {
			return errUnavailable(c, "request log not configured")
		}

		token := strings.TrimSpace(c.Params("token"))
		limit := c.QueryInt("limit", 50)

		entries, err := deps.RequestLog.ListBySession(c.UserContext(), domain.SessionToken(token), limit)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				return errBadRequest(c, err.Error())
			}
			return errInternal(c, err.Error())
		}

		return c.JSON(fiber.Map{
			"session_token": token,
			"requests":      entries,
		})
	}
}
