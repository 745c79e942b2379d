package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
)

type mockRepo struct{}

func (m *mockRepo) GetUserRoles(companyID string) ([]UserRoleRow, error) {
	return []UserRoleRow{
		{
			UserID: "user-1",
			RoleID: "role-recruiter",
		},
	}, nil
}

func (m *mockRepo) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	return []RolePermissionRow{
		{
			RoleID:   "role-recruiter",
			Resource: "vacancy",
			Action:   "create",
		},
	}, nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	modelText := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	return e
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &mockRepo{}
	enforcer := newTestEnforcer(t)

	service := NewService(repo, enforcer)

	err := service.LoadCompanyPolicy("company-1")
	assert.NoError(t, err)

	// Should allow
	allowed, err := service.Enforce(EnforceRequest{
		UserID:    "user-1",
		CompanyID: "company-1",
		Resource:  "vacancy",
		Action:    "create",
	})

	assert.NoError(t, err)
	assert.True(t, allowed)

	// Should deny
	denied, err := service.Enforce(EnforceRequest{
		UserID:    "user-1",
		CompanyID: "company-1",
		Resource:  "vacancy",
		Action:    "delete",
	})

	assert.NoError(t, err)
	assert.False(t, denied)
}
