package events

import "time"

const VacancyLifecycleTopic = "recruit.vacancy.lifecycle.v1"

const (
	VacancyCreated = "vacancy_created"
	VacancyUpdated = "vacancy_updated"
	VacancyDeleted = "vacancy_deleted"
)

// VacancyLifecycleEvent is what downstream collaborators (search indexer,
// notification dispatch, application cleanup) consume after a successful
// vacancy operation.
type VacancyLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	VacancyID  string    `json:"vacancy_id"`
	CompanyID  string    `json:"company_id"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
