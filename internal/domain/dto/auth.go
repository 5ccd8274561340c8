// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate an operator
// @Example {"username": "admin", "password": "secret"}
type LoginRequest struct {
	// Username is the operator's login name.
	Username string `json:"username" binding:"required" example:"admin"`
	// Password is the operator's password.
	Password string `json:"password" binding:"required" example:"secret"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}
	return nil
}

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with the role token
type LoginResponse struct {
	// Token is the signed bearer token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// Role is the authenticated role.
	Role model.Role `json:"role" example:"admin"`
} // @name LoginResponse

// Claims represents token claims (kept here to avoid import cycles).
type Claims struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}
