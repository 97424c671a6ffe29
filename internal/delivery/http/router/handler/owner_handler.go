// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bizprofile/internal/delivery/http/response"
	"bizprofile/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OwnerHandler holds dependencies for business-owner handlers.
type OwnerHandler struct {
	uc     usecase.OwnerUsecase
	logger *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.OwnerUsecase, logger *slog.Logger) *OwnerHandler {
	return &OwnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOwner handles the owner creation request. The auth account id
// arrives as the authUserId query parameter alongside the profile body.
func (h *OwnerHandler) CreateOwner(c echo.Context) error {
	authUserID, err := strconv.ParseInt(c.QueryParam("authUserId"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "authUserId must be an integer")
	}

	var input *usecase.CreateOwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.uc.CreateOwner(c.Request().Context(), authUserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, owner)
}

// GetOwner handles the owner lookup by profile id.
func (h *OwnerHandler) GetOwner(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be a UUID")
	}

	owner, err := h.uc.GetOwnerByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner)
}

// GetOwnerByAuthUser handles the owner lookup by auth account id.
func (h *OwnerHandler) GetOwnerByAuthUser(c echo.Context) error {
	authUserID, err := strconv.ParseInt(c.Param("authUserId"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "authUserId must be an integer")
	}

	owner, err := h.uc.GetOwnerByAuthUserID(c.Request().Context(), authUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner)
}

// ListOwners handles the owner listing request.
func (h *OwnerHandler) ListOwners(c echo.Context) error {
	owners, err := h.uc.GetAllOwners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owners)
}

// UpdateOwner handles the full-profile replacement request.
func (h *OwnerHandler) UpdateOwner(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be a UUID")
	}

	var input *usecase.UpdateOwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.uc.UpdateOwner(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner)
}

// DeleteOwner handles the owner deletion request.
func (h *OwnerHandler) DeleteOwner(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be a UUID")
	}

	if err := h.uc.DeleteOwner(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteAllOwners handles the bulk owner deletion request.
func (h *OwnerHandler) DeleteAllOwners(c echo.Context) error {
	if err := h.uc.DeleteAllOwners(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
