package company

import (
	"context"
	"time"

	companyerrors "go-recruit/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, callerID string, req CreateCompanyRequest) (CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	GetAdminCompanies(ctx context.Context, callerID string) ([]CompanyResponse, error)
	Update(ctx context.Context, callerID, id string, req UpdateCompanyRequest) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, callerID string, req CreateCompanyRequest) (CompanyResponse, error) {
	adminID, err := uuid.Parse(callerID)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp := &Company{
		ID:          uuid.New(),
		Name:        req.Name,
		AdminUserID: adminID,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create company success",
		zap.String("company_id", comp.ID.String()),
		zap.String("admin_user_id", callerID),
	)

	return mapToResponse(*comp), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*comp), nil
}

func (s *service) GetAdminCompanies(ctx context.Context, callerID string) ([]CompanyResponse, error) {
	comps, err := s.repo.FindByAdminUser(ctx, callerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]CompanyResponse, len(comps))
	for i, c := range comps {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, callerID, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if comp.AdminUserID.String() != callerID {
		return CompanyResponse{}, companyerrors.ErrNotCompanyAdmin
	}

	if req.Name != nil {
		comp.Name = *req.Name
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update company success", zap.String("company_id", id))

	return mapToResponse(*comp), nil
}

func mapToResponse(c Company) CompanyResponse {
	resp := CompanyResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		AdminUserID: c.AdminUserID.String(),
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	if !c.UpdatedAt.IsZero() {
		resp.UpdatedAt = c.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
