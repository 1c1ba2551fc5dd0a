package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/response"
	"github.com/linskybing/reservation-go/services"
	"gorm.io/gorm"
)

type Handlers struct {
	User         *UserHandler
	Request      *RequestHandler
	Room         *RoomHandler
	Equipment    *EquipmentHandler
	Department   *DepartmentHandler
	Class        *ClassHandler
	Notification *NotificationHandler
	Document     *DocumentHandler
	Audit        *AuditHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		User:         NewUserHandler(svc.User),
		Request:      NewRequestHandler(svc.Request),
		Room:         NewRoomHandler(svc.Room),
		Equipment:    NewEquipmentHandler(svc.Equipment),
		Department:   NewDepartmentHandler(svc.Department),
		Class:        NewClassHandler(svc.Class),
		Notification: NewNotificationHandler(svc.Notification),
		Document:     NewDocumentHandler(),
		Audit:        NewAuditHandler(svc.Request.Repos.Audit),
	}
}

// writeError maps the service error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var (
		validation   *apperrors.ValidationError
		unauthorized *apperrors.UnauthorizedTransitionError
		forbidden    *apperrors.ForbiddenError
		stock        *apperrors.InsufficientStockError
		notFound     *apperrors.NotFoundError
		conflict     *apperrors.ConflictError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "validation failed", Fields: validation.Fields})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: unauthorized.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: forbidden.Error()})
	case errors.As(err, &stock):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: stock.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: conflict.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
