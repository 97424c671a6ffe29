package handler

import (
	"log/slog"
	"net/http"

	"bizprofile/internal/delivery/http/response"
	"bizprofile/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBusiness handles the business creation request.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	var input *usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.CreateBusiness(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business)
}

// GetBusiness handles the business lookup by id.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be a UUID")
	}

	business, err := h.uc.GetBusinessByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business)
}

// GetBusinessByCompanyName handles the business lookup by company name.
func (h *BusinessHandler) GetBusinessByCompanyName(c echo.Context) error {
	companyName := c.Param("companyName")
	if companyName == "" {
		return response.BindingError(c, "INVALID_INPUT", "companyName is required")
	}

	business, err := h.uc.GetBusinessByCompanyName(c.Request().Context(), companyName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business)
}

// ListBusinesses handles the business listing request.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	businesses, err := h.uc.GetAllBusinesses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses)
}

// ListBusinessesByOwner handles the per-owner business listing request.
func (h *BusinessHandler) ListBusinessesByOwner(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "ownerId must be a UUID")
	}

	businesses, err := h.uc.GetBusinessesByOwnerID(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses)
}

// UpdateBusiness handles the partial business update request.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be a UUID")
	}

	var input *usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business)
}

// DeleteBusiness handles the business deletion request.
func (h *BusinessHandler) DeleteBusiness(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be a UUID")
	}

	if err := h.uc.DeleteBusiness(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteAllBusinesses handles the bulk business deletion request.
func (h *BusinessHandler) DeleteAllBusinesses(c echo.Context) error {
	if err := h.uc.DeleteAllBusinesses(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// BusinessExists reports whether a business with the given id exists.
func (h *BusinessHandler) BusinessExists(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "id must be a UUID")
	}

	exists, err := h.uc.BusinessExists(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists})
}
