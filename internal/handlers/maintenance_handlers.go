package handlers

import (
	"caseops/internal/normalize"
	"caseops/internal/services"
	"caseops/internal/types"
	"caseops/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaintenanceHandler handles maintenance case routes
type MaintenanceHandler struct {
	DB *gorm.DB
}

// List handles GET /api/maintenance
// @Summary List maintenance cases
// @Tags Maintenance
// @Produce json
// @Success 200 {array} models.MaintenanceCase
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	rows, err := services.GetAllMaintenance(h.DB)
	if err != nil {
		return respondServiceError(c, err, "listMaintenance")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// Get handles GET /api/maintenance/:id
// @Summary Get one maintenance case
// @Tags Maintenance
// @Produce json
// @Param id path int true "Maintenance case id"
// @Success 200 {object} models.MaintenanceCase
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "getMaintenance")
	}
	row, err := services.GetMaintenanceByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "getMaintenance")
	}
	return c.Status(fiber.StatusOK).JSON(row)
}

// Create handles POST /api/maintenance
// @Summary Create a maintenance case
// @Description The time field is derived from date; a caller-supplied time is ignored.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param payload body normalize.RawMaintenance true "Maintenance case"
// @Success 201 {object} models.MaintenanceCase
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /maintenance [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var raw normalize.RawMaintenance
	if err := c.BodyParser(&raw); err != nil {
		return respondServiceError(c, types.NewValidationError("invalid JSON body"), "createMaintenance")
	}
	row, err := services.AddMaintenance(h.DB, raw)
	if err != nil {
		return respondServiceError(c, err, "createMaintenance")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update handles PATCH /api/maintenance/:id
// @Summary Update a maintenance case
// @Description A date change recomputes the derived time field.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path int true "Maintenance case id"
// @Param changes body map[string]interface{} true "Partial change set"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /maintenance/{id} [patch]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "updateMaintenance")
	}
	changes, err := decodeChanges(c)
	if err != nil {
		return respondServiceError(c, err, "updateMaintenance")
	}
	affected, err := services.UpdateMaintenance(h.DB, id, changes)
	if err != nil {
		return respondServiceError(c, err, "updateMaintenance")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// Delete handles DELETE /api/maintenance/:id
// @Summary Delete a maintenance case
// @Tags Maintenance
// @Produce json
// @Param id path int true "Maintenance case id"
// @Success 200 {object} utils.MutationResponseStruct
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "deleteMaintenance")
	}
	affected, err := services.DeleteMaintenance(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "deleteMaintenance")
	}
	return utils.MutationSuccessResponse(c, affected)
}
