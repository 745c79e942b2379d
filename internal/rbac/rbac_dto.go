package rbac

import "go-recruit/internal/domain"

// EnforceRequest aliases the domain tuple so callers outside middleware can
// depend on the rbac package directly.
type EnforceRequest = domain.EnforceRequest
