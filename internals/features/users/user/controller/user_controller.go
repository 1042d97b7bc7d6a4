package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/users/user/dto"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context, q dto.ListUsersQuery, p helper.Paging) ([]dto.UserResponse, int64, error)
	SetActive(ctx context.Context, actorID, userID uuid.UUID, active bool) (*dto.UserResponse, error)
}

type UserController struct {
	Service   UserService
	Validator *validator.Validate
}

func NewUserController(svc UserService) *UserController {
	return &UserController{Service: svc, Validator: validator.New()}
}

// POST /api/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := uc.Validator.Struct(&req); err != nil {
		return err
	}

	u, err := uc.Service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "user created", u)
}

// GET /api/users?q=&role=
func (uc *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUsersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	if err := uc.Validator.Struct(&q); err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	items, total, err := uc.Service.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PATCH /api/users/:id/status
func (uc *UserController) UpdateStatus(c *fiber.Ctx) error {
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := uc.Validator.Struct(&req); err != nil {
		return err
	}

	u, err := uc.Service.SetActive(c.UserContext(), actorID, id, *req.IsActive)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "user updated", u)
}
