package company

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCompanyRequest struct {
	Name *string `json:"name"`
}

type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AdminUserID string `json:"admin_user_id"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
