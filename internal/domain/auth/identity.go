package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
)

// Identity is the verified caller extracted from an access token. It is
// supplied per-request and never persisted.
type Identity struct {
	UserID       string
	Email        string
	RoleID       *int64
	DepartmentID *int64
}

// IdentityFromContext builds the caller identity from the JWT claims placed
// on the request context by the jwtauth verifier.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return Identity{
		UserID:       userID,
		Email:        email,
		RoleID:       claimID(claims, "role_id"),
		DepartmentID: claimID(claims, "department_id"),
	}, nil
}

// claimID reads an integer reference claim. JSON decoding yields float64 for
// numbers, so every representation the token layer may produce is handled.
func claimID(claims map[string]interface{}, key string) *int64 {
	switch v := claims[key].(type) {
	case float64:
		id := int64(v)
		return &id
	case int64:
		id := v
		return &id
	case json.Number:
		if id, err := v.Int64(); err == nil {
			return &id
		}
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return &id
		}
	}
	return nil
}
