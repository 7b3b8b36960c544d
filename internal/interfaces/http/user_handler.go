package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP del identity store.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetRole godoc
// @Summary      Rol de un usuario por email
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Email del usuario"
// @Success      200    {object}  dto.RoleResponse
// @Router       /users/role/{email} [get]
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "email es requerido"})
	}
	role, err := h.uc.GetRole(email)
	if err != nil {
		return handleError(c, err)
	}
	// Rol vacío = usuario inexistente; es 200 con role vacío, no un error.
	return c.JSON(dto.RoleResponse{Role: role})
}

// GetByEmail godoc
// @Summary      Usuario por email
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Email del usuario"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /users/user/{email} [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "email es requerido"})
	}
	out, err := h.uc.GetByEmail(email)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// UpsertHR godoc
// @Summary      Registrar o acumular compra de paquete HR
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertHRRequest  true  "Datos del HR y la compra"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/hr [post]
func (h *UserHandler) UpsertHR(c *fiber.Ctx) error {
	var in dto.UpsertHRRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y company_name son requeridos"})
	}
	out, err := h.uc.UpsertHR(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// RegisterEmployee godoc
// @Summary      Registrar empleado
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEmployeeRequest  true  "Datos del empleado"
// @Success      200   {object}  dto.RegisterEmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/employee [post]
func (h *UserHandler) RegisterEmployee(c *fiber.Ctx) error {
	var in dto.RegisterEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.RegisterEmployee(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil por email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /users/update [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.UpdateProfile(in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// ListCompanies godoc
// @Summary      Empresas registradas (nombre y logo de los HR)
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /users/company [get]
func (h *UserHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanies()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListUnverifiedEmployees godoc
// @Summary      Empleados pendientes de verificación de la empresa del HR
// @Tags         users
// @Produce      json
// @Param        email  path  string  true  "Email del HR"
// @Success      200    {array}  dto.UserResponse
// @Router       /users/employees-request/{email} [get]
func (h *UserHandler) ListUnverifiedEmployees(c *fiber.Ctx) error {
	return h.listEmployees(c, true)
}

// ListAllEmployees godoc
// @Summary      Nómina completa de la empresa del HR
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email del HR"
// @Success      200    {array}  dto.UserResponse
// @Failure      401    {object}  dto.MessageResponse
// @Router       /users/all-employees/{email} [get]
func (h *UserHandler) ListAllEmployees(c *fiber.Ctx) error {
	return h.listEmployees(c, false)
}

func (h *UserHandler) listEmployees(c *fiber.Ctx, onlyUnverified bool) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "email es requerido"})
	}
	out, err := h.uc.ListEmployees(email, onlyUnverified)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ToggleVerified godoc
// @Summary      Alternar verificación de un empleado
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/verified_employee/{id} [put]
func (h *UserHandler) ToggleVerified(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ToggleVerified(id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// RemoveEmployee godoc
// @Summary      Dar de baja un empleado
// @Tags         users
// @Produce      json
// @Param        id       path   string  true   "ID del empleado"
// @Param        company  query  string  false  "Empresa (por defecto la del registro)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employee/remove/{id} [delete]
func (h *UserHandler) RemoveEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.RemoveEmployee(c.Context(), id, c.Query("company")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
