package auth

import "github.com/staffloop/hr-portal-go/internal/domain/user"

// Actor is the resolved identity of an authenticated caller. Services take it
// as an explicit argument instead of digging claims out of the request
// context, so authorization decisions are visible at the call site.
type Actor struct {
	UserID   string
	FullName string
	Role     user.Role
}
