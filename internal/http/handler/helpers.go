package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"sitecms/internal/service"
)

// parseBody decodes the request body into a raw document. Handlers pass the
// document through untouched so unknown fields reach the store as-is.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	fields := map[string]any{}
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// writeStatus maps a write envelope to an HTTP status. The envelope itself is
// always returned in the body; a failed write answers 400 since the envelope
// carries the reason.
func writeStatus(res service.WriteResult, okStatus int) int {
	if res.Success {
		return okStatus
	}
	return fiber.StatusBadRequest
}
