package handlers

import (
	"caseops/internal/services"
	"caseops/internal/types"
	"caseops/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles user account routes
type UserHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

// loginInput is the POST /api/login payload.
type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// List handles GET /api/users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	rows, err := services.GetAllUsers(h.DB)
	if err != nil {
		return respondServiceError(c, err, "listUsers")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// GetByEmail handles GET /api/users/by-email/:email
// @Summary Find a user by email
// @Tags Users
// @Produce json
// @Param email path string true "Email (case-insensitive)"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/by-email/{email} [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	row, err := services.GetUserByEmail(h.DB, email)
	if err != nil {
		return respondServiceError(c, err, "getUserByEmail")
	}
	return c.Status(fiber.StatusOK).JSON(row)
}

// Create handles POST /api/users
// @Summary Create a user
// @Description Emails are unique case-insensitively; passwords are stored hashed.
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body services.UserInput true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return respondServiceError(c, types.NewValidationError("invalid JSON body"), "createUser")
	}
	row, err := services.AddUser(h.DB, h.BcryptCost, input)
	if err != nil {
		return respondServiceError(c, err, "createUser")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update handles PATCH /api/users/:id
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param changes body map[string]interface{} true "Partial change set"
// @Success 200 {object} utils.MutationResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "updateUser")
	}
	changes, err := decodeChanges(c)
	if err != nil {
		return respondServiceError(c, err, "updateUser")
	}
	affected, err := services.UpdateUser(h.DB, h.BcryptCost, id, changes)
	if err != nil {
		return respondServiceError(c, err, "updateUser")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// Delete handles DELETE /api/users/:id
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} utils.MutationResponseStruct
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondServiceError(c, err, "deleteUser")
	}
	affected, err := services.DeleteUser(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "deleteUser")
	}
	return utils.MutationSuccessResponse(c, affected)
}

// Login handles POST /api/login
// @Summary Verify user credentials
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body loginInput true "Credentials"
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return respondServiceError(c, types.NewValidationError("invalid JSON body"), "login")
	}
	row, err := services.VerifyUser(h.DB, input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err, "login")
	}
	return c.Status(fiber.StatusOK).JSON(row)
}
