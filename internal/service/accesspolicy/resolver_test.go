package accesspolicy

import (
	"context"
	"testing"

	"github.com/atlashr/attendance-backend-go/internal/domain/accesspolicy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePolicyRepository struct {
	policies []accesspolicy.Policy
	calls    int
}

func (f *fakePolicyRepository) List(ctx context.Context) ([]accesspolicy.Policy, error) {
	f.calls++
	return f.policies, nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestResolve(t *testing.T) {
	repo := &fakePolicyRepository{policies: []accesspolicy.Policy{
		{ID: 1, Name: "Users", AllowedTo: []int64{1, 2, 3}},
		{ID: 2, Name: "Moderator", AllowedTo: []int64{2}},
		{ID: 3, Name: "Administrator", AllowedTo: []int64{3}},
	}}
	r := NewResolver(repo, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		roleID   *int64
		wantTier accesspolicy.Tier
		wantOK   bool
	}{
		{
			name:     "role only in users",
			roleID:   int64Ptr(1),
			wantTier: accesspolicy.TierUsers,
			wantOK:   true,
		},
		{
			name:     "overlap resolves to moderator",
			roleID:   int64Ptr(2),
			wantTier: accesspolicy.TierModerator,
			wantOK:   true,
		},
		{
			name:     "overlap resolves to administrator",
			roleID:   int64Ptr(3),
			wantTier: accesspolicy.TierAdministrator,
			wantOK:   true,
		},
		{
			name:   "role granted nowhere",
			roleID: int64Ptr(99),
			wantOK: false,
		},
		{
			name:   "nil role",
			roleID: nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok, err := r.Resolve(ctx, tt.roleID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTier, tier)
			}
		})
	}
}

func TestResolveNilRoleSkipsLookup(t *testing.T) {
	repo := &fakePolicyRepository{}
	r := NewResolver(repo, nil)

	_, ok, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, repo.calls)
}
