package vacancy

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrStaleVersion is returned when an update hits a row whose version no
// longer matches the one the caller loaded.
var ErrStaleVersion = errors.New("vacancy version is stale")

// ListQuery describes one page of the caller's visible vacancies.
// CompanyIDs and CreatedBy are OR-ed together; both empty means nothing is
// visible and the result is an empty page.
type ListQuery struct {
	CompanyIDs []string
	CreatedBy  string
	Status     string
	Offset     int
	Limit      int
}

//go:generate mockgen -source=vacancy_repo.go -destination=mock/vacancy_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, v *Vacancy) error
	FindByID(ctx context.Context, id string) (*Vacancy, error)
	FindVisible(ctx context.Context, q ListQuery) ([]Vacancy, int64, error)
	FindPublished(ctx context.Context) ([]Vacancy, error)
	Update(ctx context.Context, v *Vacancy) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Vacancy) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Vacancy, error) {
	var v Vacancy
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) visibleScope(q ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case len(q.CompanyIDs) > 0 && q.CreatedBy != "":
			db = db.Where("company_id IN ? OR created_by = ?", q.CompanyIDs, q.CreatedBy)
		case len(q.CompanyIDs) > 0:
			db = db.Where("company_id IN ?", q.CompanyIDs)
		case q.CreatedBy != "":
			db = db.Where("created_by = ?", q.CreatedBy)
		default:
			// nothing visible
			db = db.Where("1 = 0")
		}
		if q.Status != "" {
			db = db.Where("status = ?", q.Status)
		}
		return db
	}
}

func (r *repository) FindVisible(ctx context.Context, q ListQuery) ([]Vacancy, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Vacancy{}).
		Scopes(r.visibleScope(q)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var vacancies []Vacancy
	// Ordering includes id as tiebreaker so pagination stays stable.
	err = r.db.WithContext(ctx).
		Scopes(r.visibleScope(q)).
		Order("created_at ASC, id ASC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&vacancies).Error
	if err != nil {
		return nil, 0, err
	}

	return vacancies, total, nil
}

func (r *repository) FindPublished(ctx context.Context) ([]Vacancy, error) {
	var vacancies []Vacancy
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPublished).
		Order("created_at ASC, id ASC").
		Find(&vacancies).Error
	return vacancies, err
}

func (r *repository) Update(ctx context.Context, v *Vacancy) error {
	prev := v.Version
	v.Version = prev + 1

	res := r.db.WithContext(ctx).
		Model(&Vacancy{}).
		Where("id = ? AND version = ?", v.ID, prev).
		Select("*").
		Omit("id", "company_id", "created_by", "created_at", "deleted_at").
		Updates(v)
	if res.Error != nil {
		v.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		v.Version = prev
		return ErrStaleVersion
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Vacancy{}, "id = ?", id).Error
}
