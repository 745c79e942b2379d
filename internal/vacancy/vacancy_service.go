package vacancy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-recruit/internal/company"
	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/contextutil"
	"go-recruit/internal/shared/counter"
	vacancyerrors "go-recruit/internal/vacancy/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// PublishedVacanciesKey caches the candidate-facing published listing.
const PublishedVacanciesKey = "vacancies:published:all"

// ListScope decides which vacancies a caller sees in List. The observed
// rule is ambiguous between "my companies" and "what I created", so the
// scope is explicit configuration instead of a hardcoded guess.
type ListScope string

const (
	ScopeCompany ListScope = "company"
	ScopeCreated ListScope = "created"
	ScopeUnion   ListScope = "union"
)

func ParseListScope(s string) ListScope {
	switch ListScope(s) {
	case ScopeCompany, ScopeCreated:
		return ListScope(s)
	default:
		return ScopeUnion
	}
}

//go:generate mockgen -source=vacancy_service.go -destination=mock/vacancy_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, callerID string, req CreateVacancyRequest) (VacancyResponse, error)
	GetByID(ctx context.Context, id string) (VacancyResponse, error)
	List(ctx context.Context, callerID string, filter VacancyFilter) ([]VacancyResponse, int64, error)
	GetPublished(ctx context.Context) ([]VacancyResponse, error)
	Update(ctx context.Context, callerID, id string, req UpdateVacancyRequest) (VacancyResponse, error)
	Delete(ctx context.Context, callerID, id string) (VacancyResponse, error)
}

type service struct {
	repo      Repository
	companies company.Repository
	counter   counter.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	scope     ListScope
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	companies company.Repository,
	counterRepo counter.Repository,
	rdb *redis.Client,
	scope ListScope,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("vacancy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacancy.service")
	}
	return &service{
		repo:      repo,
		companies: companies,
		counter:   counterRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		scope:     scope,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, callerID string, req CreateVacancyRequest) (VacancyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create vacancy requested",
		zap.String("request_id", rid),
		zap.String("company_id", req.CompanyID),
		zap.String("caller_id", callerID),
		zap.String("title", req.Title),
	)

	fields, dateViolations := buildFields(
		req.Title, req.Description, req.Location,
		req.Quantity, req.SalaryMin, req.SalaryMax,
		req.StartDate, req.ApplicationDeadline,
	)
	violations := append(dateViolations, ValidateVacancyFields(fields)...)
	if len(violations) > 0 {
		s.logger.Warn("create vacancy validation failed",
			zap.String("request_id", rid),
			zap.Int("violations", len(violations)),
		)
		return VacancyResponse{}, apperror.NewValidation(violations)
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return VacancyResponse{}, vacancyerrors.ErrCompanyNotFound
	}
	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacancyResponse{}, vacancyerrors.ErrCompanyNotFound
		}
		s.logger.Error("create vacancy load company failed", zap.Error(err))
		return VacancyResponse{}, mapRepositoryError(err)
	}

	if !CanCreate(comp, callerID) {
		s.logger.Warn("create vacancy not authorized",
			zap.String("company_id", req.CompanyID),
			zap.String("caller_id", callerID),
		)
		return VacancyResponse{}, vacancyerrors.ErrNotAuthorized
	}

	callerUUID, err := uuid.Parse(callerID)
	if err != nil {
		return VacancyResponse{}, vacancyerrors.ErrNotAuthorized
	}

	nextVal, err := s.counter.GetNextValue(ctx, req.CompanyID, "vacancy_number")
	if err != nil {
		s.logger.Error("create vacancy generate reference failed", zap.Error(err))
		return VacancyResponse{}, mapRepositoryError(err)
	}

	v := &Vacancy{
		ID:                  uuid.New(),
		CompanyID:           companyID,
		ReferenceNumber:     fmt.Sprintf("VAC-%06d", nextVal),
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Quantity:            req.Quantity,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		StartDate:           fields.StartDate,
		ApplicationDeadline: fields.ApplicationDeadline,
		CommissionRuleID:    req.CommissionRuleID,
		Status:              StatusDraft,
		CreatedBy:           callerUUID,
		Version:             1,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("create vacancy persist failed", zap.Error(err))
		return VacancyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create vacancy success",
		zap.String("request_id", rid),
		zap.String("vacancy_id", v.ID.String()),
		zap.String("reference_number", v.ReferenceNumber),
	)

	return mapToResponse(*v), nil
}

func (s *service) GetByID(ctx context.Context, id string) (VacancyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return VacancyResponse{}, vacancyerrors.ErrInvalidVacancyID
	}

	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VacancyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*v), nil
}

func (s *service) List(ctx context.Context, callerID string, filter VacancyFilter) ([]VacancyResponse, int64, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, 0, vacancyerrors.ErrInvalidStatus
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	q := ListQuery{
		Status: filter.Status,
		Offset: (filter.Page - 1) * filter.PageSize,
		Limit:  filter.PageSize,
	}

	if s.scope == ScopeCompany || s.scope == ScopeUnion {
		comps, err := s.companies.FindByAdminUser(ctx, callerID)
		if err != nil {
			s.logger.Error("list vacancies load admin companies failed", zap.Error(err))
			return nil, 0, mapRepositoryError(err)
		}
		for _, c := range comps {
			q.CompanyIDs = append(q.CompanyIDs, c.ID.String())
		}
	}
	if s.scope == ScopeCreated || s.scope == ScopeUnion {
		q.CreatedBy = callerID
	}

	vacancies, total, err := s.repo.FindVisible(ctx, q)
	if err != nil {
		s.logger.Error("list vacancies failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(vacancies), total, nil
}

func (s *service) GetPublished(ctx context.Context) ([]VacancyResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, PublishedVacanciesKey).Result(); err == nil {
			var resp []VacancyResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight agar burst traffic tidak menghantam DB bersamaan
	v, err, _ := s.sf.Do(PublishedVacanciesKey, func() (interface{}, error) {
		vacancies, err := s.repo.FindPublished(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(vacancies)

		// 3. Simpan ke Redis; TTL pendek karena listing berubah saat publish
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, PublishedVacanciesKey, jsonData, 5*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]VacancyResponse), nil
}

func (s *service) Update(ctx context.Context, callerID, id string, req UpdateVacancyRequest) (VacancyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update vacancy requested",
		zap.String("request_id", rid),
		zap.String("vacancy_id", id),
		zap.String("caller_id", callerID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return VacancyResponse{}, vacancyerrors.ErrInvalidVacancyID
	}

	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VacancyResponse{}, mapRepositoryError(err)
	}

	comp, err := s.companies.GetByID(ctx, v.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacancyResponse{}, vacancyerrors.ErrCompanyNotFound
		}
		return VacancyResponse{}, mapRepositoryError(err)
	}

	if !CanMutate(v, comp, callerID) {
		s.logger.Warn("update vacancy not authorized",
			zap.String("vacancy_id", id),
			zap.String("caller_id", callerID),
		)
		return VacancyResponse{}, vacancyerrors.ErrNotAuthorized
	}

	merged, violations := mergeUpdate(v, req)
	violations = append(violations, ValidateVacancyFields(VacancyFields{
		Title:               merged.Title,
		Description:         merged.Description,
		Location:            merged.Location,
		Quantity:            merged.Quantity,
		SalaryMin:           merged.SalaryMin,
		SalaryMax:           merged.SalaryMax,
		StartDate:           merged.StartDate,
		ApplicationDeadline: merged.ApplicationDeadline,
	})...)
	if len(violations) > 0 {
		s.logger.Warn("update vacancy validation failed",
			zap.String("vacancy_id", id),
			zap.Int("violations", len(violations)),
		)
		return VacancyResponse{}, apperror.NewValidation(violations)
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		s.logger.Error("update vacancy persist failed", zap.Error(err))
		return VacancyResponse{}, mapRepositoryError(err)
	}

	s.invalidatePublishedCache(ctx)

	s.logger.Info("update vacancy success",
		zap.String("request_id", rid),
		zap.String("vacancy_id", id),
	)

	return mapToResponse(*merged), nil
}

// Delete returns the final view of the removed vacancy so callers can hand
// downstream consumers a tombstone that still carries company and status.
func (s *service) Delete(ctx context.Context, callerID, id string) (VacancyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete vacancy requested",
		zap.String("request_id", rid),
		zap.String("vacancy_id", id),
		zap.String("caller_id", callerID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return VacancyResponse{}, vacancyerrors.ErrInvalidVacancyID
	}

	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VacancyResponse{}, mapRepositoryError(err)
	}

	comp, err := s.companies.GetByID(ctx, v.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacancyResponse{}, vacancyerrors.ErrCompanyNotFound
		}
		return VacancyResponse{}, mapRepositoryError(err)
	}

	if !CanMutate(v, comp, callerID) {
		return VacancyResponse{}, vacancyerrors.ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete vacancy failed", zap.Error(err))
		return VacancyResponse{}, mapRepositoryError(err)
	}

	s.invalidatePublishedCache(ctx)

	s.logger.Info("delete vacancy success",
		zap.String("request_id", rid),
		zap.String("vacancy_id", id),
	)
	return mapToResponse(*v), nil
}

func (s *service) invalidatePublishedCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PublishedVacanciesKey).Err(); err != nil {
		s.logger.Error("failed to invalidate published vacancies cache",
			zap.Error(err),
			zap.String("key", PublishedVacanciesKey),
		)
	}
}

// buildFields parses the date strings and assembles the record the
// invariants run against; unparseable dates surface as field violations.
func buildFields(
	title, description, location string,
	quantity int,
	salaryMin, salaryMax float64,
	startDate, deadline string,
) (VacancyFields, []apperror.FieldViolation) {
	var violations []apperror.FieldViolation

	f := VacancyFields{
		Title:       title,
		Description: description,
		Location:    location,
		Quantity:    quantity,
		SalaryMin:   salaryMin,
		SalaryMax:   salaryMax,
	}

	if startDate != "" {
		t, err := time.Parse(dateLayout, startDate)
		if err != nil {
			violations = append(violations, apperror.FieldViolation{
				Field: "start_date", Reason: "start_date must be formatted YYYY-MM-DD",
			})
		} else {
			f.StartDate = t
		}
	}
	if deadline != "" {
		t, err := time.Parse(dateLayout, deadline)
		if err != nil {
			violations = append(violations, apperror.FieldViolation{
				Field: "application_deadline", Reason: "application_deadline must be formatted YYYY-MM-DD",
			})
		} else {
			f.ApplicationDeadline = t
		}
	}

	return f, violations
}

// mergeUpdate applies only the fields present in the request onto a copy of
// the stored vacancy. A nil pointer leaves the stored value as-is.
func mergeUpdate(v *Vacancy, req UpdateVacancyRequest) (*Vacancy, []apperror.FieldViolation) {
	var violations []apperror.FieldViolation
	merged := *v

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Location != nil {
		merged.Location = *req.Location
	}
	if req.Quantity != nil {
		merged.Quantity = *req.Quantity
	}
	if req.SalaryMin != nil {
		merged.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		merged.SalaryMax = *req.SalaryMax
	}
	if req.CommissionRuleID != nil {
		merged.CommissionRuleID = *req.CommissionRuleID
	}
	if req.StartDate != nil {
		t, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			violations = append(violations, apperror.FieldViolation{
				Field: "start_date", Reason: "start_date must be formatted YYYY-MM-DD",
			})
		} else {
			merged.StartDate = t
		}
	}
	if req.ApplicationDeadline != nil {
		t, err := time.Parse(dateLayout, *req.ApplicationDeadline)
		if err != nil {
			violations = append(violations, apperror.FieldViolation{
				Field: "application_deadline", Reason: "application_deadline must be formatted YYYY-MM-DD",
			})
		} else {
			merged.ApplicationDeadline = t
		}
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			violations = append(violations, apperror.FieldViolation{
				Field: "status", Reason: "status must be one of draft, published, closed",
			})
		} else {
			merged.Status = *req.Status
		}
	}

	return &merged, violations
}

func mapToResponse(v Vacancy) VacancyResponse {
	resp := VacancyResponse{
		ID:                  v.ID.String(),
		CompanyID:           v.CompanyID.String(),
		ReferenceNumber:     v.ReferenceNumber,
		Title:               v.Title,
		Description:         v.Description,
		Location:            v.Location,
		Quantity:            v.Quantity,
		SalaryMin:           v.SalaryMin,
		SalaryMax:           v.SalaryMax,
		StartDate:           v.StartDate.Format(dateLayout),
		ApplicationDeadline: v.ApplicationDeadline.Format(dateLayout),
		CommissionRuleID:    v.CommissionRuleID,
		Status:              v.Status,
		CreatedBy:           v.CreatedBy.String(),
	}
	if !v.CreatedAt.IsZero() {
		resp.CreatedAt = v.CreatedAt.Format(time.RFC3339)
	}
	if !v.UpdatedAt.IsZero() {
		resp.UpdatedAt = v.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(vacancies []Vacancy) []VacancyResponse {
	res := make([]VacancyResponse, len(vacancies))
	for i, v := range vacancies {
		res[i] = mapToResponse(v)
	}
	return res
}
