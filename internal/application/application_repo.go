package application

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, app *Application) error
	FindByID(ctx context.Context, id string) (*Application, error)
	FindByVacancy(ctx context.Context, vacancyID string) ([]Application, error)
	FindByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	Update(ctx context.Context, app *Application) error
	WithdrawByVacancy(ctx context.Context, vacancyID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, app *Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Application, error) {
	var app Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) FindByVacancy(ctx context.Context, vacancyID string) ([]Application, error) {
	var apps []Application
	err := r.db.WithContext(ctx).
		Where("vacancy_id = ?", vacancyID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) FindByCandidate(ctx context.Context, candidateID string) ([]Application, error) {
	var apps []Application
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) Update(ctx context.Context, app *Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// WithdrawByVacancy marks every open application for a deleted vacancy as
// withdrawn. Invoked by the lifecycle consumer, not by request handlers.
func (r *repository) WithdrawByVacancy(ctx context.Context, vacancyID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("vacancy_id = ? AND status = ?", vacancyID, StatusSubmitted).
		Update("status", StatusWithdrawn)
	return res.RowsAffected, res.Error
}
