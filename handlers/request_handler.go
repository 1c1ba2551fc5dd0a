package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/response"
	"github.com/linskybing/reservation-go/services"
	"github.com/linskybing/reservation-go/types"
	"github.com/linskybing/reservation-go/utils"
)

type RequestHandler struct {
	svc *services.RequestService
}

func NewRequestHandler(svc *services.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// Submit godoc
// @Summary Submit a room, equipment or printing request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestDTO true "Request body"
// @Success 201 {object} models.Request
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /requests [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.Submit(claims.Actor(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "request.submit", "request", req.RefNo, nil, req, "request submitted", h.svc.Repos.Audit)
	c.JSON(http.StatusCreated, req)
}

// Approve godoc
// @Summary Approve a request at the caller's stage
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Request ID"
// @Param body body dto.DecisionDTO true "Optional notes"
// @Success 200 {object} models.Request
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /requests/{id}/approve [put]
func (h *RequestHandler) Approve(c *gin.Context) {
	h.decide(c, h.svc.Approve)
}

// Reject godoc
// @Summary Reject a request at the caller's stage
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Request ID"
// @Param body body dto.DecisionDTO true "Rejection reason (mandatory)"
// @Success 200 {object} models.Request
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /requests/{id}/reject [put]
func (h *RequestHandler) Reject(c *gin.Context) {
	h.decide(c, h.svc.Reject)
}

func (h *RequestHandler) decide(c *gin.Context, op func(uint, types.Actor, string) (models.Request, error)) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	requestID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	var input dto.DecisionDTO
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := op(requestID, claims.Actor(), input.Notes)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "request.decide", "request", req.RefNo, nil, req, string(req.Status), h.svc.Repos.Audit)
	c.JSON(http.StatusOK, req)
}

// ReturnEquipment godoc
// @Summary Check approved equipment back in
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Request ID"
// @Success 200 {object} models.Request
// @Failure 403 {object} response.ErrorResponse
// @Router /requests/{id}/return [put]
func (h *RequestHandler) ReturnEquipment(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	requestID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.svc.Return(requestID, claims.Actor())
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "request.return", "request", req.RefNo, nil, req, "equipment returned", h.svc.Repos.Audit)
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.svc.Get(requestID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetMyRequests lists the caller's own submissions.
func (h *RequestHandler) GetMyRequests(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	reqs, err := h.svc.ListByUser(claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// List supports an optional ?status= filter for staff views.
func (h *RequestHandler) List(c *gin.Context) {
	status := c.Query("status")

	var (
		reqs []models.Request
		err  error
	)
	if status == "" {
		reqs, err = h.svc.ListAll()
	} else {
		reqs, err = h.svc.ListByStatus(models.RequestStatus(status))
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// AdminQueue lists requests awaiting the first stage.
func (h *RequestHandler) AdminQueue(c *gin.Context) {
	reqs, err := h.svc.AdminQueue()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// SupervisorQueue lists requests awaiting the second stage.
func (h *RequestHandler) SupervisorQueue(c *gin.Context) {
	reqs, err := h.svc.SupervisorQueue()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// Stats feeds the dashboard charts with per-status counts.
func (h *RequestHandler) Stats(c *gin.Context) {
	counts, err := h.svc.Stats()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
