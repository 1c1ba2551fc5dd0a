package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/response"
	"github.com/linskybing/reservation-go/services"
	"github.com/linskybing/reservation-go/utils"
)

type ClassHandler struct {
	svc *services.ClassService
}

func NewClassHandler(svc *services.ClassService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

func (h *ClassHandler) Create(c *gin.Context) {
	var input dto.CreateClassDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := h.svc.Create(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// List supports an optional ?department= filter.
func (h *ClassHandler) List(c *gin.Context) {
	if deptID, err := utils.ParseQueryUintParam(c, "department"); err == nil {
		items, err := h.svc.ListByDepartment(deptID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ClassHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid class id"})
		return
	}

	class, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid class id"})
		return
	}

	var input dto.UpdateClassDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := h.svc.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid class id"})
		return
	}

	if err := h.svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "class deleted"})
}
