package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"caseops/internal/types"
	"caseops/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id path parameter as an unsigned integer.
func parseID(c *fiber.Ctx) (uint64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewValidationError("invalid id %q", raw)
	}
	return id, nil
}

// decodeChanges reads the request body as a partial change set. Field
// presence matters for updates, so the body stays a map rather than a struct.
func decodeChanges(c *fiber.Ctx) (map[string]interface{}, error) {
	changes := make(map[string]interface{})
	if err := json.Unmarshal(c.Body(), &changes); err != nil {
		return nil, types.NewValidationError("invalid JSON body")
	}
	return changes, nil
}

// respondServiceError maps a data access error onto the standard error
// envelope, falling back to 500 for anything untyped.
func respondServiceError(c *fiber.Ctx, err error, errorType string) error {
	var ce *types.CustomError
	if errors.As(err, &ce) {
		if ce.Type == types.ErrTypeNotFound {
			return utils.NotFoundResponse(c, ce.Message)
		}
		return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
