package handlers

import (
	"caseops/internal/normalize"
	"caseops/internal/services"
	"caseops/internal/types"
	"caseops/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InstallationHandler handles installation case routes
type InstallationHandler struct {
	DB *gorm.DB
}

// List handles GET /api/installations
// @Summary List installation cases
// @Tags Installations
// @Produce json
// @Success 200 {array} models.InstallationCase
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /installations [get]
func (h *InstallationHandler) List(c *fiber.Ctx) error {
	rows, err := services.GetAllInstallations(h.DB)
	if err != nil {
		return respondServiceError(c, err, "listInstallations")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// Get handles GET /api/installations/:id
// @Summary Get one installation case
// @Tags Installations
// @Produce json
// @Param id path int true "Installation case id"
// @Success 200 {object} models.InstallationCase
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /installations/{id} [get]
func (h *InstallationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "getInstallation")
	}
	row, err := services.GetInstallationByID(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "getInstallation")
	}
	return c.Status(fiber.StatusOK).JSON(row)
}

// Create handles POST /api/installations
// @Summary Create an installation case
// @Tags Installations
// @Accept json
// @Produce json
// @Param payload body normalize.RawInstallation true "Installation case"
// @Success 201 {object} models.InstallationCase
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /installations [post]
func (h *InstallationHandler) Create(c *fiber.Ctx) error {
	var raw normalize.RawInstallation
	if err := c.BodyParser(&raw); err != nil {
		return respondServiceError(c, types.NewValidationError("invalid JSON body"), "createInstallation")
	}
	row, err := services.AddInstallation(h.DB, raw)
	if err != nil {
		return respondServiceError(c, err, "createInstallation")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update handles PATCH /api/installations/:id
// @Summary Update an installation case
// @Tags Installations
// @Accept json
// @Produce json
// @Param id path int true "Installation case id"
// @Param changes body map[string]interface{} true "Partial change set"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /installations/{id} [patch]
func (h *InstallationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "updateInstallation")
	}
	changes, err := decodeChanges(c)
	if err != nil {
		return respondServiceError(c, err, "updateInstallation")
	}
	affected, err := services.UpdateInstallation(h.DB, id, changes)
	if err != nil {
		return respondServiceError(c, err, "updateInstallation")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// Delete handles DELETE /api/installations/:id
// @Summary Delete an installation case
// @Tags Installations
// @Produce json
// @Param id path int true "Installation case id"
// @Success 200 {object} utils.MutationResponseStruct
// @Router /installations/{id} [delete]
func (h *InstallationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "deleteInstallation")
	}
	affected, err := services.DeleteInstallation(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "deleteInstallation")
	}
	return utils.MutationSuccessResponse(c, affected)
}
