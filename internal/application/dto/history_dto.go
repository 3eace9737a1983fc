package dto

import (
	"time"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
)

// HistoryResponse salida de una entrada del historial.
type HistoryResponse struct {
	ID      string    `json:"id"`
	User    string    `json:"user"`
	Action  string    `json:"action"`
	Item    string    `json:"item"`
	Date    time.Time `json:"date"`
	Details string    `json:"details"`
}

// HistoryListResponse lista paginada del historial, más reciente primero.
type HistoryListResponse struct {
	Items []HistoryResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
	Limit int               `json:"limit"`
}

// ToHistoryResponse mapea la entidad a su representación JSON.
func ToHistoryResponse(e *entity.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:      e.ID,
		User:    e.User,
		Action:  e.Action,
		Item:    e.Item,
		Date:    e.Date,
		Details: e.Details,
	}
}
