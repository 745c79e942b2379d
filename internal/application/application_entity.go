package application

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusSubmitted = "submitted"
	StatusWithdrawn = "withdrawn"
	StatusRejected  = "rejected"
	StatusAccepted  = "accepted"
)

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VacancyID   uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_application_candidate"`
	CandidateID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_application_candidate"`
	ResumeURL   string
	CoverLetter string
	Status      string `gorm:"type:varchar(20);default:submitted"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Application) TableName() string {
	return "applications"
}
