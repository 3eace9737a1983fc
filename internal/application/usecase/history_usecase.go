package usecase

import (
	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
)

// HistoryUseCase lectura paginada del historial de auditoría.
// El historial nunca se edita ni se borra desde la API.
type HistoryUseCase struct {
	repo repository.HistoryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.HistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List lista entradas de historial, más recientes primero.
func (uc *HistoryUseCase) List(page, limit int) (*dto.HistoryListResponse, error) {
	list, err := uc.repo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.ToHistoryResponse(e))
	}
	return &dto.HistoryListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Pages: dto.Pages(total, limit),
		Limit: limit,
	}, nil
}
