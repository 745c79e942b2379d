package vacancy

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusClosed    = "closed"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusClosed:
		return true
	}
	return false
}

type Vacancy struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID           uuid.UUID `gorm:"type:uuid;index"`
	ReferenceNumber     string    `gorm:"uniqueIndex:uq_vacancy_reference"`
	Title               string    `gorm:"not null"`
	Description         string    `gorm:"not null"`
	Location            string    `gorm:"not null"`
	Quantity            int       `gorm:"not null"`
	SalaryMin           float64
	SalaryMax           float64
	StartDate           time.Time
	ApplicationDeadline time.Time
	CommissionRuleID    string    `gorm:"type:varchar(64)"`
	Status              string    `gorm:"type:varchar(20);index;default:draft"`
	CreatedBy           uuid.UUID `gorm:"type:uuid;index"`
	// Version is bumped on every update; the repository refuses writes
	// against a stale version so concurrent editors get a conflict instead
	// of a lost update.
	Version   int64 `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Vacancy) TableName() string {
	return "vacancies"
}
