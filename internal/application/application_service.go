package application

import (
	"context"
	"errors"
	"strings"
	"time"

	applicationerrors "go-recruit/internal/application/errors"
	"go-recruit/internal/company"
	"go-recruit/internal/vacancy"
	vacancyerrors "go-recruit/internal/vacancy/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, callerID string, req CreateApplicationRequest) (ApplicationResponse, error)
	ListMine(ctx context.Context, callerID string) ([]ApplicationResponse, error)
	ListByVacancy(ctx context.Context, callerID, vacancyID string) ([]ApplicationResponse, error)
	Withdraw(ctx context.Context, callerID, id string) (ApplicationResponse, error)
	WithdrawByVacancy(ctx context.Context, vacancyID string) (int64, error)
}

type service struct {
	repo      Repository
	vacancies vacancy.Repository
	companies company.Repository
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	vacancies vacancy.Repository,
	companies company.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		repo:      repo,
		vacancies: vacancies,
		companies: companies,
		logger:    l,
	}
}

func (s *service) Apply(ctx context.Context, callerID string, req CreateApplicationRequest) (ApplicationResponse, error) {
	s.logger.Debug("apply requested",
		zap.String("caller_id", callerID),
		zap.String("vacancy_id", req.VacancyID),
	)

	candidateID, err := uuid.Parse(callerID)
	if err != nil {
		return ApplicationResponse{}, applicationerrors.ErrNotApplicationOwner
	}

	vac, err := s.vacancies.FindByID(ctx, req.VacancyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, vacancyerrors.ErrVacancyNotFound
		}
		return ApplicationResponse{}, err
	}

	if vac.Status != vacancy.StatusPublished {
		return ApplicationResponse{}, applicationerrors.ErrVacancyNotOpen
	}
	if time.Now().UTC().After(vac.ApplicationDeadline.Add(24 * time.Hour)) {
		// Deadline is a date; applications stay open through that day.
		return ApplicationResponse{}, applicationerrors.ErrDeadlinePassed
	}

	app := &Application{
		ID:          uuid.New(),
		VacancyID:   vac.ID,
		CandidateID: candidateID,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		Status:      StatusSubmitted,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		if isDuplicateApplication(err) {
			return ApplicationResponse{}, applicationerrors.ErrAlreadyApplied
		}
		s.logger.Error("apply persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("apply success",
		zap.String("application_id", app.ID.String()),
		zap.String("vacancy_id", req.VacancyID),
	)

	return mapToResponse(*app), nil
}

func (s *service) ListMine(ctx context.Context, callerID string) ([]ApplicationResponse, error) {
	apps, err := s.repo.FindByCandidate(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(apps), nil
}

func (s *service) ListByVacancy(ctx context.Context, callerID, vacancyID string) ([]ApplicationResponse, error) {
	vac, err := s.vacancies.FindByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vacancyerrors.ErrVacancyNotFound
		}
		return nil, err
	}

	comp, err := s.companies.GetByID(ctx, vac.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vacancyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	// Same rule as vacancy mutation: company admin or vacancy creator.
	if !vacancy.CanMutate(vac, comp, callerID) {
		return nil, applicationerrors.ErrNotVacancyManager
	}

	apps, err := s.repo.FindByVacancy(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(apps), nil
}

func (s *service) Withdraw(ctx context.Context, callerID, id string) (ApplicationResponse, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}

	if app.CandidateID.String() != callerID {
		return ApplicationResponse{}, applicationerrors.ErrNotApplicationOwner
	}

	app.Status = StatusWithdrawn
	if err := s.repo.Update(ctx, app); err != nil {
		s.logger.Error("withdraw persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("withdraw success", zap.String("application_id", id))

	return mapToResponse(*app), nil
}

func (s *service) WithdrawByVacancy(ctx context.Context, vacancyID string) (int64, error) {
	count, err := s.repo.WithdrawByVacancy(ctx, vacancyID)
	if err != nil {
		s.logger.Error("withdraw by vacancy failed",
			zap.String("vacancy_id", vacancyID),
			zap.Error(err),
		)
		return 0, err
	}

	if count > 0 {
		s.logger.Info("applications withdrawn for deleted vacancy",
			zap.String("vacancy_id", vacancyID),
			zap.Int64("count", count),
		)
	}
	return count, nil
}

func isDuplicateApplication(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_application_candidate"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_application_candidate")
}

func mapToResponse(app Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          app.ID.String(),
		VacancyID:   app.VacancyID.String(),
		CandidateID: app.CandidateID.String(),
		ResumeURL:   app.ResumeURL,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
	}
	if !app.CreatedAt.IsZero() {
		resp.CreatedAt = app.CreatedAt.Format(time.RFC3339)
	}
	if !app.UpdatedAt.IsZero() {
		resp.UpdatedAt = app.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(apps []Application) []ApplicationResponse {
	res := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		res[i] = mapToResponse(a)
	}
	return res
}
