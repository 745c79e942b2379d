package domain

// EnforceRequest is the tuple the RBAC layer evaluates: may this user,
// within this company, perform the action on the resource.
type EnforceRequest struct {
	UserID    string
	CompanyID string
	Resource  string
	Action    string
}
