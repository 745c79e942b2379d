package application_test

import (
	"context"
	"testing"
	"time"

	"go-recruit/internal/application"
	applicationerrors "go-recruit/internal/application/errors"
	applicationMock "go-recruit/internal/application/mock"
	"go-recruit/internal/company"
	companyMock "go-recruit/internal/company/mock"
	"go-recruit/internal/vacancy"
	vacancyerrors "go-recruit/internal/vacancy/errors"
	vacancyMock "go-recruit/internal/vacancy/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newApplicationFixture(t *testing.T) (
	*applicationMock.MockRepository,
	*vacancyMock.MockRepository,
	*companyMock.MockRepository,
	application.Service,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := applicationMock.NewMockRepository(ctrl)
	vacancies := vacancyMock.NewMockRepository(ctrl)
	companies := companyMock.NewMockRepository(ctrl)
	service := application.NewService(repo, vacancies, companies)
	return repo, vacancies, companies, service
}

func publishedVacancy(companyID uuid.UUID) *vacancy.Vacancy {
	return &vacancy.Vacancy{
		ID:                  uuid.New(),
		CompanyID:           companyID,
		Status:              vacancy.StatusPublished,
		ApplicationDeadline: time.Now().UTC().AddDate(0, 0, 7),
	}
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()
	candidateID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, vacancies, _, service := newApplicationFixture(t)

		vac := publishedVacancy(uuid.New())
		vacancies.EXPECT().FindByID(ctx, vac.ID.String()).Return(vac, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, app *application.Application) error {
			assert.Equal(t, application.StatusSubmitted, app.Status)
			assert.Equal(t, candidateID, app.CandidateID)
			return nil
		})

		resp, err := service.Apply(ctx, candidateID.String(), application.CreateApplicationRequest{
			VacancyID: vac.ID.String(),
			ResumeURL: "https://cdn.example.com/resume.pdf",
		})

		assert.NoError(t, err)
		assert.Equal(t, application.StatusSubmitted, resp.Status)
	})

	t.Run("Draft Vacancy Rejected", func(t *testing.T) {
		_, vacancies, _, service := newApplicationFixture(t)

		vac := publishedVacancy(uuid.New())
		vac.Status = vacancy.StatusDraft
		vacancies.EXPECT().FindByID(ctx, vac.ID.String()).Return(vac, nil)

		_, err := service.Apply(ctx, candidateID.String(), application.CreateApplicationRequest{
			VacancyID: vac.ID.String(),
		})
		assert.ErrorIs(t, err, applicationerrors.ErrVacancyNotOpen)
	})

	t.Run("Deadline Passed", func(t *testing.T) {
		_, vacancies, _, service := newApplicationFixture(t)

		vac := publishedVacancy(uuid.New())
		vac.ApplicationDeadline = time.Now().UTC().AddDate(0, 0, -3)
		vacancies.EXPECT().FindByID(ctx, vac.ID.String()).Return(vac, nil)

		_, err := service.Apply(ctx, candidateID.String(), application.CreateApplicationRequest{
			VacancyID: vac.ID.String(),
		})
		assert.ErrorIs(t, err, applicationerrors.ErrDeadlinePassed)
	})

	t.Run("Duplicate Application", func(t *testing.T) {
		repo, vacancies, _, service := newApplicationFixture(t)

		vac := publishedVacancy(uuid.New())
		vacancies.EXPECT().FindByID(ctx, vac.ID.String()).Return(vac, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_application_candidate",
		})

		_, err := service.Apply(ctx, candidateID.String(), application.CreateApplicationRequest{
			VacancyID: vac.ID.String(),
		})
		assert.ErrorIs(t, err, applicationerrors.ErrAlreadyApplied)
	})

	t.Run("Vacancy Not Found", func(t *testing.T) {
		_, vacancies, _, service := newApplicationFixture(t)

		id := uuid.NewString()
		vacancies.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Apply(ctx, candidateID.String(), application.CreateApplicationRequest{VacancyID: id})
		assert.ErrorIs(t, err, vacancyerrors.ErrVacancyNotFound)
	})
}

func TestService_ListByVacancy(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	companyID := uuid.New()

	t.Run("Company Admin Allowed", func(t *testing.T) {
		repo, vacancies, companies, service := newApplicationFixture(t)

		vac := publishedVacancy(companyID)
		vacancies.EXPECT().FindByID(ctx, vac.ID.String()).Return(vac, nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(&company.Company{
			ID:          companyID,
			AdminUserID: adminID,
		}, nil)
		repo.EXPECT().FindByVacancy(ctx, vac.ID.String()).Return([]application.Application{
			{ID: uuid.New(), VacancyID: vac.ID, CandidateID: uuid.New(), Status: application.StatusSubmitted},
		}, nil)

		resp, err := service.ListByVacancy(ctx, adminID.String(), vac.ID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("Stranger Denied", func(t *testing.T) {
		_, vacancies, companies, service := newApplicationFixture(t)

		vac := publishedVacancy(companyID)
		vacancies.EXPECT().FindByID(ctx, vac.ID.String()).Return(vac, nil)
		companies.EXPECT().GetByID(ctx, companyID).Return(&company.Company{
			ID:          companyID,
			AdminUserID: adminID,
		}, nil)

		_, err := service.ListByVacancy(ctx, uuid.NewString(), vac.ID.String())
		assert.ErrorIs(t, err, applicationerrors.ErrNotVacancyManager)
	})
}

func TestService_Withdraw(t *testing.T) {
	ctx := context.Background()
	candidateID := uuid.New()

	t.Run("Owner Withdraws", func(t *testing.T) {
		repo, _, _, service := newApplicationFixture(t)

		app := &application.Application{
			ID:          uuid.New(),
			VacancyID:   uuid.New(),
			CandidateID: candidateID,
			Status:      application.StatusSubmitted,
		}
		repo.EXPECT().FindByID(ctx, app.ID.String()).Return(app, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *application.Application) error {
			assert.Equal(t, application.StatusWithdrawn, a.Status)
			return nil
		})

		resp, err := service.Withdraw(ctx, candidateID.String(), app.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, application.StatusWithdrawn, resp.Status)
	})

	t.Run("Non Owner Denied", func(t *testing.T) {
		repo, _, _, service := newApplicationFixture(t)

		app := &application.Application{
			ID:          uuid.New(),
			CandidateID: candidateID,
			Status:      application.StatusSubmitted,
		}
		repo.EXPECT().FindByID(ctx, app.ID.String()).Return(app, nil)

		_, err := service.Withdraw(ctx, uuid.NewString(), app.ID.String())
		assert.ErrorIs(t, err, applicationerrors.ErrNotApplicationOwner)
	})
}

func TestService_WithdrawByVacancy(t *testing.T) {
	ctx := context.Background()

	repo, _, _, service := newApplicationFixture(t)

	id := uuid.NewString()
	repo.EXPECT().WithdrawByVacancy(ctx, id).Return(int64(3), nil)

	count, err := service.WithdrawByVacancy(ctx, id)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
