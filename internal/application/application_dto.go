package application

type CreateApplicationRequest struct {
	VacancyID   string `json:"vacancy_id" binding:"required,uuid"`
	ResumeURL   string `json:"resume_url" binding:"required,url"`
	CoverLetter string `json:"cover_letter"`
}

type ApplicationResponse struct {
	ID          string `json:"id"`
	VacancyID   string `json:"vacancy_id"`
	CandidateID string `json:"candidate_id"`
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
