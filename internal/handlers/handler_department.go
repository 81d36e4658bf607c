package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/leavehq/leave_management_app/internal/middleware"
)

// departmentHandler handles the admin department reference endpoints.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: ds}
}

// registerDepartmentRoutes registers department routes on the admin group.
func registerDepartmentRoutes(admin *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := admin.Group("/departments")
	{
		departments.GET("", h.listDepartments)
		departments.POST("", h.createDepartment)
	}
}

// listDepartments godoc
// @Summary List departments
// @Tags admin
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Security BearerAuth
// @Router /admin/departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list departments")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponseSlice(departments))
}

// createDepartment godoc
// @Summary Create a department
// @Tags admin
// @Accept json
// @Produce json
// @Param department body dto.CreateDepartmentRequest true "Department details"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/departments [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Department already exists"})
			return
		}
		respondWithError(c, logger, err, "Failed to create department")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}
