package controller

import (
	"errors"

	"bookstore-api/dto"
	"bookstore-api/service"
	"bookstore-api/util"

	"github.com/gofiber/fiber/v2"
)

// UserController provides handlers for authentication
type UserController struct {
	svc    *service.AuthService
	logger *util.Logger
}

func NewUserController(svc *service.AuthService, logger *util.Logger) *UserController {
	return &UserController{svc: svc, logger: logger}
}

// Login godoc
// @Summary      Login with username and password
// @Description  Validates credentials and returns a signed bearer token. On failure the submitted payload is echoed back with 401.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload body dto.LoginRequest true "Login payload"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  dto.LoginRequest
// @Failure      500  {object}  map[string]string
// @Router       /users/login [post]
func (uc *UserController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := uc.svc.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// The submission is echoed back, matching the documented
			// unauthorized contract of this endpoint.
			return c.Status(fiber.StatusUnauthorized).JSON(req)
		}
		return uc.internalError(c, "users.login", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account with the default Customer role.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload body dto.RegisterRequest true "Register payload"
// @Success      201  {object}  dto.RegisterResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/register [post]
func (uc *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := uc.svc.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return uc.internalError(c, "users.register", err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

func (uc *UserController) internalError(c *fiber.Ctx, location string, err error) error {
	uc.logger.Error("%s: %v", location, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "something went wrong, please contact the administrator",
	})
}
