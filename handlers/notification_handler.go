package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/response"
	"github.com/linskybing/reservation-go/services"
	"github.com/linskybing/reservation-go/utils"
)

type NotificationHandler struct {
	svc *services.NotificationService
}

func NewNotificationHandler(svc *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.svc.ListForUser(claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
