package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/response"
	"github.com/linskybing/reservation-go/services"
	"github.com/linskybing/reservation-go/utils"
)

type EquipmentHandler struct {
	svc *services.EquipmentService
}

func NewEquipmentHandler(svc *services.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	var input dto.CreateEquipmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.svc.Create(input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "equipment.create", "equipment", strconv.FormatUint(uint64(item.EID), 10), nil, item, "equipment created", h.svc.Repos.Audit)
	c.JSON(http.StatusCreated, item)
}

func (h *EquipmentHandler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *EquipmentHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	item, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *EquipmentHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	var input dto.UpdateEquipmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}

	item, err := h.svc.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "equipment.update", "equipment", strconv.FormatUint(uint64(id), 10), before, item, "equipment updated", h.svc.Repos.Audit)
	c.JSON(http.StatusOK, item)
}

func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	if err := h.svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "equipment.delete", "equipment", strconv.FormatUint(uint64(id), 10), nil, nil, "equipment deleted", h.svc.Repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "equipment deleted"})
}
