package dto

import (
	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// CreateHolidayRequest defines the payload for creating a holiday.
type CreateHolidayRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateHolidayRequest defines the payload for updating a holiday.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateHolidayRequest struct {
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// HolidayResponse is the API representation of a holiday.
type HolidayResponse struct {
	HolidayID   string `json:"id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToHolidayResponse converts a domain.Holiday to a HolidayResponse DTO
func ToHolidayResponse(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		HolidayID:   h.HolidayID,
		Date:        h.Date.Format(dateLayout),
		Name:        h.Name,
		Description: h.Description,
	}
}

// ToHolidayResponseSlice converts a slice of domain.Holiday to HolidayResponse DTOs
func ToHolidayResponseSlice(holidays []domain.Holiday) []HolidayResponse {
	out := make([]HolidayResponse, len(holidays))
	for i := range holidays {
		out[i] = ToHolidayResponse(&holidays[i])
	}
	return out
}
