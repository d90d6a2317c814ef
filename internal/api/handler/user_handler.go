package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/accountkit/account-service/internal/api/metrics"
	"github.com/accountkit/account-service/internal/core/domain"
	"github.com/accountkit/account-service/internal/core/ports"
)

// UserHandler handles HTTP requests for account CRUD operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// pathID parses the :id segment. Only a bare run of decimal digits resolves
// to a record; anything else (including signed forms like "+5", which
// strconv would otherwise accept) maps to the uniform not-found outcome
// rather than a bad-request one.
func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, domain.ErrUserNotFound
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, domain.ErrUserNotFound
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrUserNotFound
	}
	return id, nil
}

// Create handles POST /users.
//
// @Summary      Create a new user account
// @Tags         users
// @Accept       json
// @Param        body  body  createUserRequest  true  "Account details"
// @Success      201
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.service.Create(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.NoContent(http.StatusCreated)
}

// List handles GET /users.
//
// @Summary      List all user accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  listUsersResponse
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListUsersResponse(users))
}

// Get handles GET /users/:id.
//
// @Summary      Get a user account by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  getUserResponse
// @Failure      404  {string}  string  "Not found!"
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, getUserResponse{User: toUserResponse(*user)})
}

// Update handles PUT /users/:id.
//
// @Summary      Update name and email of a user account
// @Tags         users
// @Accept       json
// @Param        id    path  int                true  "Account id"
// @Param        body  body  updateUserRequest  true  "Replacement fields"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      404  {string}  string  "Not found!"
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), id, req.Name, req.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user account
// @Tags         users
// @Param        id  path  int  true  "Account id"
// @Success      200
// @Failure      404  {string}  string  "Not found!"
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.NoContent(http.StatusOK)
}
