package company_test

import (
	"context"
	"testing"

	"go-recruit/internal/company"
	companyerrors "go-recruit/internal/company/errors"
	companyMock "go-recruit/internal/company/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Caller Becomes Admin", func(t *testing.T) {
		callerID := uuid.New()

		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.Equal(t, callerID, c.AdminUserID)
			assert.Equal(t, "Acme", c.Name)
			return nil
		})

		resp, err := service.Create(ctx, callerID.String(), company.CreateCompanyRequest{Name: "Acme"})

		assert.NoError(t, err)
		assert.Equal(t, callerID.String(), resp.AdminUserID)
	})

	t.Run("Invalid Caller ID", func(t *testing.T) {
		_, err := service.Create(ctx, "not-a-uuid", company.CreateCompanyRequest{Name: "Acme"})
		assert.Error(t, err)
	})
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{
			ID:          id,
			Name:        "Acme",
			AdminUserID: uuid.New(),
		}, nil)

		resp, err := service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.Name)
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	adminID := uuid.New()
	id := uuid.New()

	t.Run("Admin Updates Name", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{
			ID:          id,
			Name:        "Old Name",
			AdminUserID: adminID,
		}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *company.Company) error {
			assert.Equal(t, "New Name", c.Name)
			return nil
		})

		newName := "New Name"
		resp, err := service.Update(ctx, adminID.String(), id.String(), company.UpdateCompanyRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
	})

	t.Run("Non Admin Forbidden", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(&company.Company{
			ID:          id,
			Name:        "Old Name",
			AdminUserID: adminID,
		}, nil)

		newName := "New Name"
		_, err := service.Update(ctx, uuid.NewString(), id.String(), company.UpdateCompanyRequest{Name: &newName})

		assert.ErrorIs(t, err, companyerrors.ErrNotCompanyAdmin)
	})
}
