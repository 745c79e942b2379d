package company

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, comp *Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByAdminUser(ctx context.Context, adminUserID string) ([]Company, error)
	Update(ctx context.Context, comp *Company) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).First(&comp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) FindByAdminUser(ctx context.Context, adminUserID string) ([]Company, error) {
	var comps []Company
	err := r.db.WithContext(ctx).
		Where("admin_user_id = ?", adminUserID).
		Find(&comps).Error
	return comps, err
}

func (r *repository) Update(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Save(comp).Error
}
