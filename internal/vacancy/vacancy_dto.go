package vacancy

type CreateVacancyRequest struct {
	CompanyID           string  `json:"company_id" binding:"required,uuid"`
	Title               string  `json:"title" binding:"required"`
	Description         string  `json:"description" binding:"required"`
	Location            string  `json:"location" binding:"required"`
	Quantity            int     `json:"quantity"`
	SalaryMin           float64 `json:"salary_min"`
	SalaryMax           float64 `json:"salary_max"`
	StartDate           string  `json:"start_date" binding:"required"`
	ApplicationDeadline string  `json:"application_deadline" binding:"required"`
	CommissionRuleID    string  `json:"commission_rule_id"`
}

// UpdateVacancyRequest uses pointers for every field so "not sent" and
// "set to zero value" stay distinguishable; nil fields leave the stored
// value untouched.
type UpdateVacancyRequest struct {
	Title               *string  `json:"title"`
	Description         *string  `json:"description"`
	Location            *string  `json:"location"`
	Quantity            *int     `json:"quantity"`
	SalaryMin           *float64 `json:"salary_min"`
	SalaryMax           *float64 `json:"salary_max"`
	StartDate           *string  `json:"start_date"`
	ApplicationDeadline *string  `json:"application_deadline"`
	CommissionRuleID    *string  `json:"commission_rule_id"`
	Status              *string  `json:"status" binding:"omitempty,oneof=draft published closed"`
}

type VacancyFilter struct {
	Status   string
	Page     int
	PageSize int
}

type VacancyResponse struct {
	ID                  string  `json:"id"`
	CompanyID           string  `json:"company_id"`
	ReferenceNumber     string  `json:"reference_number"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Location            string  `json:"location"`
	Quantity            int     `json:"quantity"`
	SalaryMin           float64 `json:"salary_min"`
	SalaryMax           float64 `json:"salary_max"`
	StartDate           string  `json:"start_date"`
	ApplicationDeadline string  `json:"application_deadline"`
	CommissionRuleID    string  `json:"commission_rule_id,omitempty"`
	Status              string  `json:"status"`
	CreatedBy           string  `json:"created_by"`
	CreatedAt           string  `json:"created_at,omitempty"`
	UpdatedAt           string  `json:"updated_at,omitempty"`
}
