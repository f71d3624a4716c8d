package accesspolicy

import (
	"context"
)

// AccessPolicyRepository defines read access to the access_control table.
type AccessPolicyRepository interface {
	// List returns every policy row
	List(ctx context.Context) ([]Policy, error)
}

// Resolver maps a role reference to its access tier. The second return value
// is false when the caller has no role or no policy grants it.
type Resolver interface {
	Resolve(ctx context.Context, roleID *int64) (Tier, bool, error)
}
