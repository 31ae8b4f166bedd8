package handlers

import (
	"caseops/internal/services"
	"caseops/internal/types"
	"caseops/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LookupHandler handles brand, device type, and governorate routes
type LookupHandler struct {
	DB *gorm.DB
}

// ListBrands handles GET /api/brands
// @Summary List brands
// @Tags Lookups
// @Produce json
// @Success 200 {array} models.Brand
// @Router /brands [get]
func (h *LookupHandler) ListBrands(c *fiber.Ctx) error {
	rows, err := services.GetAllBrands(h.DB)
	if err != nil {
		return respondServiceError(c, err, "listBrands")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// CreateBrand handles POST /api/brands
// @Summary Create a brand
// @Description Brand names are unique case-insensitively.
// @Tags Lookups
// @Accept json
// @Produce json
// @Param payload body services.BrandInput true "Brand"
// @Success 201 {object} models.Brand
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /brands [post]
func (h *LookupHandler) CreateBrand(c *fiber.Ctx) error {
	var input services.BrandInput
	if err := c.BodyParser(&input); err != nil {
		return respondServiceError(c, types.NewValidationError("invalid JSON body"), "createBrand")
	}
	row, err := services.AddBrand(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "createBrand")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// UpdateBrand handles PATCH /api/brands/:id
// @Summary Update a brand
// @Tags Lookups
// @Accept json
// @Produce json
// @Param id path int true "Brand id"
// @Param changes body map[string]interface{} true "Partial change set"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /brands/{id} [patch]
func (h *LookupHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "updateBrand")
	}
	changes, err := decodeChanges(c)
	if err != nil {
		return respondServiceError(c, err, "updateBrand")
	}
	affected, err := services.UpdateBrand(h.DB, id, changes)
	if err != nil {
		return respondServiceError(c, err, "updateBrand")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// DeleteBrand handles DELETE /api/brands/:id
// @Summary Delete a brand
// @Tags Lookups
// @Produce json
// @Param id path int true "Brand id"
// @Success 200 {object} utils.MutationResponseStruct
// @Router /brands/{id} [delete]
func (h *LookupHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "deleteBrand")
	}
	affected, err := services.DeleteBrand(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "deleteBrand")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// ListDeviceTypes handles GET /api/device-types
// @Summary List device types
// @Tags Lookups
// @Produce json
// @Success 200 {array} models.DeviceType
// @Router /device-types [get]
func (h *LookupHandler) ListDeviceTypes(c *fiber.Ctx) error {
	rows, err := services.GetAllDeviceTypes(h.DB)
	if err != nil {
		return respondServiceError(c, err, "listDeviceTypes")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// CreateDeviceType handles POST /api/device-types
// @Summary Create a device type
// @Description Name and code are each unique case-insensitively.
// @Tags Lookups
// @Accept json
// @Produce json
// @Param payload body services.DeviceTypeInput true "Device type"
// @Success 201 {object} models.DeviceType
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /device-types [post]
func (h *LookupHandler) CreateDeviceType(c *fiber.Ctx) error {
	var input services.DeviceTypeInput
	if err := c.BodyParser(&input); err != nil {
		return respondServiceError(c, types.NewValidationError("invalid JSON body"), "createDeviceType")
	}
	row, err := services.AddDeviceType(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "createDeviceType")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// UpdateDeviceType handles PATCH /api/device-types/:id
// @Summary Update a device type
// @Tags Lookups
// @Accept json
// @Produce json
// @Param id path int true "Device type id"
// @Param changes body map[string]interface{} true "Partial change set"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /device-types/{id} [patch]
func (h *LookupHandler) UpdateDeviceType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "updateDeviceType")
	}
	changes, err := decodeChanges(c)
	if err != nil {
		return respondServiceError(c, err, "updateDeviceType")
	}
	affected, err := services.UpdateDeviceType(h.DB, id, changes)
	if err != nil {
		return respondServiceError(c, err, "updateDeviceType")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// DeleteDeviceType handles DELETE /api/device-types/:id
// @Summary Delete a device type
// @Tags Lookups
// @Produce json
// @Param id path int true "Device type id"
// @Success 200 {object} utils.MutationResponseStruct
// @Router /device-types/{id} [delete]
func (h *LookupHandler) DeleteDeviceType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "deleteDeviceType")
	}
	affected, err := services.DeleteDeviceType(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "deleteDeviceType")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// ListGovernorates handles GET /api/governorates
// @Summary List governorates
// @Description Governorates are read-only; only the seeder populates them.
// @Tags Lookups
// @Produce json
// @Success 200 {array} models.Governorate
// @Router /governorates [get]
func (h *LookupHandler) ListGovernorates(c *fiber.Ctx) error {
	rows, err := services.GetAllGovernorates(h.DB)
	if err != nil {
		return respondServiceError(c, err, "listGovernorates")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
