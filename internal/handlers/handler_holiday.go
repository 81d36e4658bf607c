package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/leavehq/leave_management_app/internal/middleware"
)

// holidayHandler handles the admin holiday management endpoints.
type holidayHandler struct {
	holidayService portssvc.HolidaySvcFacade
}

func newHolidayHandler(hs portssvc.HolidaySvcFacade) *holidayHandler {
	return &holidayHandler{holidayService: hs}
}

// registerHolidayRoutes registers holiday CRUD on the admin group.
func registerHolidayRoutes(admin *gin.RouterGroup, holidayService portssvc.HolidaySvcFacade) {
	h := newHolidayHandler(holidayService)

	holidays := admin.Group("/holidays")
	{
		holidays.GET("", h.listHolidays)
		holidays.POST("", h.createHoliday)
		holidays.PUT("/:id", h.updateHoliday)
		holidays.DELETE("/:id", h.deleteHoliday)
	}
}

// listHolidays godoc
// @Summary List holidays
// @Tags admin
// @Produce json
// @Success 200 {array} dto.HolidayResponse
// @Security BearerAuth
// @Router /admin/holidays [get]
func (h *holidayHandler) listHolidays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	holidays, err := h.holidayService.ListHolidays(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list holidays")
		return
	}

	c.JSON(http.StatusOK, dto.ToHolidayResponseSlice(holidays))
}

// createHoliday godoc
// @Summary Create a holiday
// @Tags admin
// @Accept json
// @Produce json
// @Param holiday body dto.CreateHolidayRequest true "Holiday details"
// @Success 201 {object} dto.HolidayResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/holidays [post]
func (h *holidayHandler) createHoliday(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	holiday, err := h.holidayService.CreateHoliday(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create holiday")
		return
	}

	c.JSON(http.StatusCreated, dto.ToHolidayResponse(holiday))
}

// updateHoliday godoc
// @Summary Update a holiday
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Holiday ID"
// @Param holiday body dto.UpdateHolidayRequest true "Fields to update"
// @Success 200 {object} dto.HolidayResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/holidays/{id} [put]
func (h *holidayHandler) updateHoliday(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	holiday, err := h.holidayService.UpdateHoliday(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update holiday")
		return
	}

	c.JSON(http.StatusOK, dto.ToHolidayResponse(holiday))
}

// deleteHoliday godoc
// @Summary Delete a holiday
// @Tags admin
// @Produce json
// @Param id path string true "Holiday ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/holidays/{id} [delete]
func (h *holidayHandler) deleteHoliday(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.holidayService.DeleteHoliday(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, logger, err, "Failed to delete holiday")
		return
	}

	c.Status(http.StatusNoContent)
}
