package accesspolicy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atlashr/attendance-backend-go/internal/domain/accesspolicy"
	"github.com/atlashr/attendance-backend-go/internal/pkg/cache"
)

const (
	policyCacheKey = "access_control:policies"
	policyCacheTTL = 60 * time.Second
)

type resolver struct {
	policyRepository accesspolicy.AccessPolicyRepository
	cache            *cache.Redis
}

// NewResolver builds a tier resolver backed by the access_control table with
// a best-effort redis cache in front of it.
func NewResolver(policyRepository accesspolicy.AccessPolicyRepository, redis *cache.Redis) accesspolicy.Resolver {
	return &resolver{
		policyRepository: policyRepository,
		cache:            redis,
	}
}

// Resolve implements accesspolicy.Resolver. Policies are scanned in tier
// precedence order so a role granted to several tiers lands on the most
// privileged one.
func (r *resolver) Resolve(ctx context.Context, roleID *int64) (accesspolicy.Tier, bool, error) {
	if roleID == nil {
		return "", false, nil
	}

	policies, err := r.policies(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to load access policies: %w", err)
	}

	byName := make(map[string][]accesspolicy.Policy, len(policies))
	for _, p := range policies {
		byName[p.Name] = append(byName[p.Name], p)
	}

	for _, tier := range accesspolicy.Precedence() {
		for _, p := range byName[string(tier)] {
			if p.Allows(*roleID) {
				return tier, true, nil
			}
		}
	}

	return "", false, nil
}

func (r *resolver) policies(ctx context.Context) ([]accesspolicy.Policy, error) {
	if cached := r.cache.Get(ctx, policyCacheKey); cached != "" {
		var policies []accesspolicy.Policy
		if err := json.Unmarshal([]byte(cached), &policies); err == nil {
			return policies, nil
		}
	}

	policies, err := r.policyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(policies); err == nil {
		r.cache.Set(ctx, policyCacheKey, string(encoded), policyCacheTTL)
	}

	return policies, nil
}
