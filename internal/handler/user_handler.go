package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"usersvc/internal/model"
	"usersvc/internal/service"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// UserHandler bundles the user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates the handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the POST /users body.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
}

// UpdateUserRequest is the PUT /users/:id body. Pointer fields distinguish
// "absent" from "set to zero value".
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
}

// ListUsers godoc
// @Summary List users
// @Description Returns one page of users ordered by creation time, newest first.
// @Tags users
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil || page < 1 {
		return RespondError(c, http.StatusBadRequest, "page must be a positive integer")
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		return RespondError(c, http.StatusBadRequest, "limit must be between 1 and 100")
	}

	result, err := h.svc.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: "users retrieved",
		Data:    result.Users,
		Meta: &ListMeta{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
		Timestamp: time.Now().UTC(),
	})
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return RespondError(c, http.StatusBadRequest, "id must be an integer")
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return RespondOK(c, http.StatusOK, "user retrieved", user)
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Failure 500 {object} Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return RespondError(c, http.StatusBadRequest, "malformed request body")
	}
	user := model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
	}
	if err := c.Validate(&user); err != nil {
		return RespondViolations(c, violationsFrom(err))
	}

	created, err := h.svc.CreateUser(c.Request().Context(), &user)
	if err != nil {
		return err
	}
	return RespondOK(c, http.StatusCreated, "user created", created)
}

// UpdateUser godoc
// @Summary Update user
// @Description Merges the supplied fields over the stored record and persists the result.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 500 {object} Response
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return RespondError(c, http.StatusBadRequest, "id must be an integer")
	}
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return RespondError(c, http.StatusBadRequest, "malformed request body")
	}

	ctx := c.Request().Context()
	existing, err := h.svc.GetUser(ctx, id)
	if err != nil {
		return err
	}

	merged := *existing
	if req.FirstName != nil {
		merged.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		merged.LastName = *req.LastName
	}
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.Age != nil {
		merged.Age = *req.Age
	}
	if err := c.Validate(&merged); err != nil {
		return RespondViolations(c, violationsFrom(err))
	}

	updated, err := h.svc.UpdateUser(ctx, id, &merged)
	if err != nil {
		return err
	}
	return RespondOK(c, http.StatusOK, "user updated", updated)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return RespondError(c, http.StatusBadRequest, "id must be an integer")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return RespondOK(c, http.StatusOK, "user deleted", nil)
}

func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
