package vacancy_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-recruit/internal/company"
	companyMock "go-recruit/internal/company/mock"
	counterMock "go-recruit/internal/shared/counter/mock"
	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/vacancy"
	vacancyerrors "go-recruit/internal/vacancy/errors"
	vacancyMock "go-recruit/internal/vacancy/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newServiceFixture(t *testing.T) (
	*vacancyMock.MockRepository,
	*companyMock.MockRepository,
	*counterMock.MockRepository,
	vacancy.Service,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := vacancyMock.NewMockRepository(ctrl)
	companies := companyMock.NewMockRepository(ctrl)
	counters := counterMock.NewMockRepository(ctrl)
	service := vacancy.NewService(repo, companies, counters, nil, vacancy.ScopeUnion)
	return repo, companies, counters, service
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	companyID := uuid.New()
	comp := &company.Company{ID: companyID, Name: "Acme", AdminUserID: adminID}

	validReq := vacancy.CreateVacancyRequest{
		CompanyID:           companyID.String(),
		Title:               "Backend Engineer",
		Description:         "Builds and runs our services",
		Location:            "Jakarta",
		Quantity:            2,
		SalaryMin:           1000,
		SalaryMax:           2000,
		StartDate:           "2026-10-01",
		ApplicationDeadline: "2026-09-17",
	}

	t.Run("Success Creates Draft", func(t *testing.T) {
		repo, companies, counters, service := newServiceFixture(t)

		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)
		counters.EXPECT().GetNextValue(ctx, companyID.String(), "vacancy_number").Return(int64(42), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v *vacancy.Vacancy) error {
			assert.Equal(t, vacancy.StatusDraft, v.Status)
			assert.Equal(t, adminID, v.CreatedBy)
			assert.Equal(t, "VAC-000042", v.ReferenceNumber)
			assert.Equal(t, int64(1), v.Version)
			return nil
		})

		resp, err := service.Create(ctx, adminID.String(), validReq)

		assert.NoError(t, err)
		assert.Equal(t, vacancy.StatusDraft, resp.Status)
		assert.Equal(t, "VAC-000042", resp.ReferenceNumber)
		assert.Equal(t, "2026-10-01", resp.StartDate)
	})

	t.Run("Non Admin Forbidden", func(t *testing.T) {
		_, companies, _, service := newServiceFixture(t)

		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)

		_, err := service.Create(ctx, uuid.NewString(), validReq)
		assert.ErrorIs(t, err, vacancyerrors.ErrNotAuthorized)
	})

	t.Run("Company Not Found", func(t *testing.T) {
		_, companies, _, service := newServiceFixture(t)

		companies.EXPECT().GetByID(ctx, companyID).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Create(ctx, adminID.String(), validReq)
		assert.ErrorIs(t, err, vacancyerrors.ErrCompanyNotFound)
	})

	t.Run("Invalid Fields Reported Together", func(t *testing.T) {
		_, _, _, service := newServiceFixture(t)

		req := validReq
		req.Title = ""
		req.Quantity = 0

		_, err := service.Create(ctx, adminID.String(), req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)

		violations, ok := appErr.Details.([]apperror.FieldViolation)
		assert.True(t, ok)
		assert.Len(t, violations, 2)
	})

	t.Run("Unparseable Date Is A Violation", func(t *testing.T) {
		_, _, _, service := newServiceFixture(t)

		req := validReq
		req.StartDate = "01-10-2026"

		_, err := service.Create(ctx, adminID.String(), req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	companyID := uuid.New()

	t.Run("Union Scope Combines Company And Creator", func(t *testing.T) {
		repo, companies, _, service := newServiceFixture(t)

		companies.EXPECT().FindByAdminUser(ctx, callerID.String()).
			Return([]company.Company{{ID: companyID, AdminUserID: callerID}}, nil)
		repo.EXPECT().FindVisible(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, q vacancy.ListQuery) ([]vacancy.Vacancy, int64, error) {
				assert.Equal(t, []string{companyID.String()}, q.CompanyIDs)
				assert.Equal(t, callerID.String(), q.CreatedBy)
				assert.Equal(t, vacancy.StatusPublished, q.Status)
				assert.Equal(t, 10, q.Offset)
				assert.Equal(t, 10, q.Limit)
				return []vacancy.Vacancy{{ID: uuid.New(), CompanyID: companyID, Status: vacancy.StatusPublished}}, 11, nil
			})

		resp, total, err := service.List(ctx, callerID.String(), vacancy.VacancyFilter{
			Status:   vacancy.StatusPublished,
			Page:     2,
			PageSize: 10,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(11), total)
		assert.Len(t, resp, 1)
	})

	t.Run("Invalid Status Filter", func(t *testing.T) {
		_, _, _, service := newServiceFixture(t)

		_, _, err := service.List(ctx, callerID.String(), vacancy.VacancyFilter{Status: "archived"})
		assert.ErrorIs(t, err, vacancyerrors.ErrInvalidStatus)
	})

	t.Run("Created Scope Skips Company Lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := vacancyMock.NewMockRepository(ctrl)
		companies := companyMock.NewMockRepository(ctrl)
		counters := counterMock.NewMockRepository(ctrl)
		service := vacancy.NewService(repo, companies, counters, nil, vacancy.ScopeCreated)

		repo.EXPECT().FindVisible(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, q vacancy.ListQuery) ([]vacancy.Vacancy, int64, error) {
				assert.Empty(t, q.CompanyIDs)
				assert.Equal(t, callerID.String(), q.CreatedBy)
				return nil, 0, nil
			})

		_, total, err := service.List(ctx, callerID.String(), vacancy.VacancyFilter{})
		assert.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	companyID := uuid.New()
	vacancyID := uuid.New()
	comp := &company.Company{ID: companyID, Name: "Acme", AdminUserID: adminID}

	stored := func() *vacancy.Vacancy {
		return &vacancy.Vacancy{
			ID:                  vacancyID,
			CompanyID:           companyID,
			ReferenceNumber:     "VAC-000001",
			Title:               "Backend Engineer",
			Description:         "Builds and runs our services",
			Location:            "Jakarta",
			Quantity:            2,
			SalaryMin:           1000,
			SalaryMax:           2000,
			StartDate:           mustDate("2026-10-01"),
			ApplicationDeadline: mustDate("2026-09-17"),
			Status:              vacancy.StatusDraft,
			CreatedBy:           adminID,
			Version:             3,
		}
	}

	t.Run("Partial Update Keeps Unsent Fields", func(t *testing.T) {
		repo, companies, _, service := newServiceFixture(t)

		repo.EXPECT().FindByID(ctx, vacancyID.String()).Return(stored(), nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v *vacancy.Vacancy) error {
			assert.Equal(t, "Senior Backend Engineer", v.Title)
			assert.Equal(t, "Jakarta", v.Location)
			assert.Equal(t, 2, v.Quantity)
			return nil
		})

		newTitle := "Senior Backend Engineer"
		resp, err := service.Update(ctx, adminID.String(), vacancyID.String(), vacancy.UpdateVacancyRequest{
			Title: &newTitle,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", resp.Title)
		assert.Equal(t, "Jakarta", resp.Location)
	})

	t.Run("Status Transition To Published", func(t *testing.T) {
		repo, companies, _, service := newServiceFixture(t)

		repo.EXPECT().FindByID(ctx, vacancyID.String()).Return(stored(), nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		status := vacancy.StatusPublished
		resp, err := service.Update(ctx, adminID.String(), vacancyID.String(), vacancy.UpdateVacancyRequest{
			Status: &status,
		})

		assert.NoError(t, err)
		assert.Equal(t, vacancy.StatusPublished, resp.Status)
	})

	t.Run("Stale Version Becomes Conflict", func(t *testing.T) {
		repo, companies, _, service := newServiceFixture(t)

		repo.EXPECT().FindByID(ctx, vacancyID.String()).Return(stored(), nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(vacancy.ErrStaleVersion)

		newTitle := "Renamed"
		_, err := service.Update(ctx, adminID.String(), vacancyID.String(), vacancy.UpdateVacancyRequest{
			Title: &newTitle,
		})

		assert.ErrorIs(t, err, vacancyerrors.ErrVacancyConflict)
	})

	t.Run("Stranger Forbidden", func(t *testing.T) {
		repo, companies, _, service := newServiceFixture(t)

		repo.EXPECT().FindByID(ctx, vacancyID.String()).Return(stored(), nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)

		newTitle := "Renamed"
		_, err := service.Update(ctx, uuid.NewString(), vacancyID.String(), vacancy.UpdateVacancyRequest{
			Title: &newTitle,
		})

		assert.ErrorIs(t, err, vacancyerrors.ErrNotAuthorized)
	})

	t.Run("Merged Record Still Validated", func(t *testing.T) {
		repo, companies, _, service := newServiceFixture(t)

		repo.EXPECT().FindByID(ctx, vacancyID.String()).Return(stored(), nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)

		zero := 0
		_, err := service.Update(ctx, adminID.String(), vacancyID.String(), vacancy.UpdateVacancyRequest{
			Quantity: &zero,
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	companyID := uuid.New()
	vacancyID := uuid.New()
	comp := &company.Company{ID: companyID, Name: "Acme", AdminUserID: adminID}

	t.Run("Success Returns Final View", func(t *testing.T) {
		repo, companies, _, service := newServiceFixture(t)

		repo.EXPECT().FindByID(ctx, vacancyID.String()).Return(&vacancy.Vacancy{
			ID: vacancyID, CompanyID: companyID, CreatedBy: adminID,
			Status: vacancy.StatusPublished,
		}, nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(comp, nil)
		repo.EXPECT().Delete(ctx, vacancyID.String()).Return(nil)

		resp, err := service.Delete(ctx, adminID.String(), vacancyID.String())
		assert.NoError(t, err)
		assert.Equal(t, vacancyID.String(), resp.ID)
		assert.Equal(t, companyID.String(), resp.CompanyID)
		assert.Equal(t, vacancy.StatusPublished, resp.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, _, _, service := newServiceFixture(t)

		repo.EXPECT().FindByID(ctx, vacancyID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Delete(ctx, adminID.String(), vacancyID.String())
		assert.ErrorIs(t, err, vacancyerrors.ErrVacancyNotFound)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, _, _, service := newServiceFixture(t)

		_, err := service.Delete(ctx, adminID.String(), "not-a-uuid")
		assert.ErrorIs(t, err, vacancyerrors.ErrInvalidVacancyID)
	})
}

func TestService_GetPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache Hit Skips Repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := vacancyMock.NewMockRepository(ctrl)
		companies := companyMock.NewMockRepository(ctrl)
		counters := counterMock.NewMockRepository(ctrl)

		rdb, rmock := redismock.NewClientMock()
		cached := []vacancy.VacancyResponse{{ID: uuid.NewString(), Title: "Cached", Status: vacancy.StatusPublished}}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)
		rmock.ExpectGet(vacancy.PublishedVacanciesKey).SetVal(string(payload))

		service := vacancy.NewService(repo, companies, counters, rdb, vacancy.ScopeUnion)

		resp, err := service.GetPublished(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("Cache Miss Falls Back To Repository", func(t *testing.T) {
		repo, _, _, service := newServiceFixture(t)

		repo.EXPECT().FindPublished(ctx).Return([]vacancy.Vacancy{
			{ID: uuid.New(), Title: "Open Role", Status: vacancy.StatusPublished},
		}, nil)

		resp, err := service.GetPublished(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Open Role", resp[0].Title)
	})
}

func mustDate(s string) (t time.Time) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
