package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Identity is the authenticated caller, decoded from the request token.
type Identity struct {
	EmployeeID string
	Name       string
	Email      string
	Role       Role
}

// IdentityFromContext extracts the caller's identity from the verified
// JWT claims placed on the context by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Identity{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)

	return Identity{
		EmployeeID: employeeID,
		Name:       name,
		Email:      email,
		Role:       ParseRole(roleStr),
	}, nil
}
