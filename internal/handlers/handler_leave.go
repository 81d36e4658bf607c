package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/leavehq/leave_management_app/internal/middleware"
)

// leaveHandler handles HTTP requests related to leave requests.
type leaveHandler struct {
	leaveService     portssvc.LeaveSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newLeaveHandler creates a new leaveHandler.
func newLeaveHandler(ls portssvc.LeaveSvcFacade, rs portssvc.ReportingSvcFacade) *leaveHandler {
	return &leaveHandler{
		leaveService:     ls,
		reportingService: rs,
	}
}

// registerLeaveRoutes registers all leave-related routes.
func registerLeaveRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newLeaveHandler(services.Leave, services.Reporting)

	leaves := rg.Group("/leaves", middleware.LoadCurrentUser(services.User))
	{
		leaves.POST("", middleware.RequireRoles(domain.RoleEmployee), h.createLeave)
		leaves.GET("", h.listLeaves)
		leaves.GET("/my-leaves", h.listMyLeaves)
		leaves.GET("/department", middleware.RequireRoles(domain.RoleManager), h.listDepartmentLeaves)
		leaves.GET("/team", middleware.RequireRoles(domain.RoleManager), h.listDepartmentLeaves)
		leaves.PATCH("/:id", middleware.RequireRoles(domain.RoleManager), h.decideLeave)
		leaves.GET("/manager/stats", middleware.RequireRoles(domain.RoleManager), h.managerStats)
		leaves.GET("/employee/stats", h.employeeStats)
	}
}

// createLeave godoc
// @Summary Submit a leave request
// @Description Creates a pending leave request for the authenticated employee.
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave request details"
// @Success 201 {object} dto.LeaveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves [post]
func (h *leaveHandler) createLeave(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	leave, err := h.leaveService.CreateLeaveRequest(c.Request.Context(), *actor, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create leave request")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeaveResponse(leave))
}

// listLeaves godoc
// @Summary List leave requests
// @Description Lists requests visible to the caller: admins all, managers their department, employees their own.
// @Tags leaves
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListLeavesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves [get]
func (h *leaveHandler) listLeaves(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListLeavesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	leaves, nextToken, err := h.leaveService.ListLeaveRequests(c.Request.Context(), *actor, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list leave requests")
		return
	}

	c.JSON(http.StatusOK, dto.ListLeavesResponse{
		Leaves:    dto.ToLeaveResponseSlice(leaves),
		NextToken: nextToken,
	})
}

// listMyLeaves godoc
// @Summary List own leave requests
// @Tags leaves
// @Produce json
// @Success 200 {array} dto.LeaveResponse
// @Security BearerAuth
// @Router /leaves/my-leaves [get]
func (h *leaveHandler) listMyLeaves(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	leaves, err := h.leaveService.ListOwnLeaveRequests(c.Request.Context(), *actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list leave requests")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveResponseSlice(leaves))
}

// listDepartmentLeaves godoc
// @Summary List department leave requests
// @Description Lists requests for the manager's department, newest first.
// @Tags leaves
// @Produce json
// @Success 200 {array} dto.LeaveResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/department [get]
func (h *leaveHandler) listDepartmentLeaves(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	leaves, err := h.leaveService.ListDepartmentLeaveRequests(c.Request.Context(), *actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list department leave requests")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveResponseSlice(leaves))
}

// decideLeave godoc
// @Summary Approve or reject a leave request
// @Description Managers decide pending requests for their own department. Approval debits the employee's balance.
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID"
// @Param decision body dto.DecideLeaveRequest true "Decision"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/{id} [patch]
func (h *leaveHandler) decideLeave(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	leave, err := h.leaveService.DecideLeaveRequest(c.Request.Context(), *actor, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to decide leave request")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveResponse(leave))
}

// managerStats godoc
// @Summary Manager statistics
// @Description Department leave statistics over the last three months.
// @Tags leaves
// @Produce json
// @Success 200 {object} dto.ManagerStatsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leaves/manager/stats [get]
func (h *leaveHandler) managerStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.reportingService.GetManagerStats(c.Request.Context(), *actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to aggregate manager statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// employeeStats godoc
// @Summary Employee statistics
// @Description The caller's leave history and distributions over the last twelve months.
// @Tags leaves
// @Produce json
// @Success 200 {object} dto.EmployeeStatsResponse
// @Security BearerAuth
// @Router /leaves/employee/stats [get]
func (h *leaveHandler) employeeStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stats, err := h.reportingService.GetEmployeeStats(c.Request.Context(), *actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to aggregate employee statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
