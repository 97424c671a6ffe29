package handler

import (
	"context"
	"io"
	"log/slog"

	"bizprofile/internal/delivery/http/middleware"
	"bizprofile/internal/delivery/http/validator"
	"bizprofile/internal/domain/entity"
	"bizprofile/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an Echo instance wired the same way the server is:
// request validator plus the centralized error handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newTestLogger()).HandleHTTPError

	return e
}

func registerOwnerRoutes(e *echo.Echo, h *OwnerHandler) {
	g := e.Group("/api/business-owners")
	g.POST("", h.CreateOwner)
	g.GET("", h.ListOwners)
	g.GET("/by-auth/:authUserId", h.GetOwnerByAuthUser)
	g.DELETE("/all", h.DeleteAllOwners)
	g.GET("/:id", h.GetOwner)
	g.PUT("/:id", h.UpdateOwner)
	g.DELETE("/:id", h.DeleteOwner)
}

func registerBusinessRoutes(e *echo.Echo, h *BusinessHandler) {
	g := e.Group("/api/businesses")
	g.POST("", h.CreateBusiness)
	g.GET("", h.ListBusinesses)
	g.GET("/by-company/:companyName", h.GetBusinessByCompanyName)
	g.GET("/by-owner/:ownerId", h.ListBusinessesByOwner)
	g.DELETE("/all", h.DeleteAllBusinesses)
	g.GET("/:id/exists", h.BusinessExists)
	g.GET("/:id", h.GetBusiness)
	g.PUT("/:id", h.UpdateBusiness)
	g.DELETE("/:id", h.DeleteBusiness)
}

// stubOwnerUsecase implements usecase.OwnerUsecase with pluggable behavior.
type stubOwnerUsecase struct {
	createFn    func(ctx context.Context, authUserID int64, input *usecase.CreateOwnerInput) (*entity.BusinessOwner, error)
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.BusinessOwner, error)
	getByAuthFn func(ctx context.Context, authUserID int64) (*entity.BusinessOwner, error)
	getAllFn    func(ctx context.Context) ([]*entity.BusinessOwner, error)
	updateFn    func(ctx context.Context, id uuid.UUID, input *usecase.UpdateOwnerInput) (*entity.BusinessOwner, error)
	deleteFn    func(ctx context.Context, id uuid.UUID) error
	deleteAllFn func(ctx context.Context) error
}

func (s *stubOwnerUsecase) CreateOwner(ctx context.Context, authUserID int64, input *usecase.CreateOwnerInput) (*entity.BusinessOwner, error) {
	return s.createFn(ctx, authUserID, input)
}

func (s *stubOwnerUsecase) GetOwnerByID(ctx context.Context, id uuid.UUID) (*entity.BusinessOwner, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubOwnerUsecase) GetOwnerByAuthUserID(ctx context.Context, authUserID int64) (*entity.BusinessOwner, error) {
	return s.getByAuthFn(ctx, authUserID)
}

func (s *stubOwnerUsecase) GetAllOwners(ctx context.Context) ([]*entity.BusinessOwner, error) {
	return s.getAllFn(ctx)
}

func (s *stubOwnerUsecase) UpdateOwner(ctx context.Context, id uuid.UUID, input *usecase.UpdateOwnerInput) (*entity.BusinessOwner, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubOwnerUsecase) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubOwnerUsecase) DeleteAllOwners(ctx context.Context) error {
	return s.deleteAllFn(ctx)
}

// stubBusinessUsecase implements usecase.BusinessUsecase with pluggable behavior.
type stubBusinessUsecase struct {
	createFn     func(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.Business, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	getByNameFn  func(ctx context.Context, companyName string) (*entity.Business, error)
	getAllFn     func(ctx context.Context) ([]*entity.Business, error)
	getByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)
	updateFn     func(ctx context.Context, id uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	deleteAllFn  func(ctx context.Context) error
	existsFn     func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (s *stubBusinessUsecase) CreateBusiness(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	return s.createFn(ctx, input)
}

func (s *stubBusinessUsecase) GetBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubBusinessUsecase) GetBusinessByCompanyName(ctx context.Context, companyName string) (*entity.Business, error) {
	return s.getByNameFn(ctx, companyName)
}

func (s *stubBusinessUsecase) GetAllBusinesses(ctx context.Context) ([]*entity.Business, error) {
	return s.getAllFn(ctx)
}

func (s *stubBusinessUsecase) GetBusinessesByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	return s.getByOwnerFn(ctx, ownerID)
}

func (s *stubBusinessUsecase) UpdateBusiness(ctx context.Context, id uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubBusinessUsecase) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubBusinessUsecase) DeleteAllBusinesses(ctx context.Context) error {
	return s.deleteAllFn(ctx)
}

func (s *stubBusinessUsecase) BusinessExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.existsFn(ctx, id)
}
