package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/policy"
	"github.com/linskybing/reservation-go/response"
	"github.com/linskybing/reservation-go/types"
)

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
		return nil, false
	}
	return claims, true
}

// RequireAdmin gates endpoints reserved for administrators.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if claims.Role != models.UserRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// RequireSupervisor gates the second approval stage's queue.
func RequireSupervisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if claims.Role != models.UserRoleSupervisor {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "supervisor only"})
			return
		}
		c.Next()
	}
}

// RequireStaff admits any role the access policy allows to manage
// inventories, departments, classes and users.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if !policy.CanAct(claims.Role, "", policy.ActionManage) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "staff only"})
			return
		}
		c.Next()
	}
}

// SelfOrStaff allows users to touch their own record and staff to touch
// anyone's.
func SelfOrStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}

		idParam := c.Param("id")
		targetUID64, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
			return
		}

		if claims.UserID == uint(targetUID64) || policy.CanAct(claims.Role, "", policy.ActionManage) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	}
}
