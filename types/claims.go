package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/reservation-go/models"
)

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Actor identifies who is performing a state-machine call. It is passed
// explicitly into every service method instead of living in any global
// session state.
type Actor struct {
	UserID   uint
	UserName string
	Role     models.UserRole
}

func (c *Claims) Actor() Actor {
	name := c.FullName
	if name == "" {
		name = c.Username
	}
	return Actor{UserID: c.UserID, UserName: name, Role: c.Role}
}
