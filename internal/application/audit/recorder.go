package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// Recorder escribe entradas de historial como efecto secundario best-effort:
// un fallo se registra en el log y nunca se propaga a la operación principal.
// El historial no es transaccional con la escritura del producto.
type Recorder struct {
	repo repository.HistoryRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.HistoryRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste una entrada de auditoría. Nunca retorna error.
func (r *Recorder) Record(user, action, item, details string) {
	entry := &entity.HistoryEntry{
		ID:      uuid.New().String(),
		User:    user,
		Action:  action,
		Item:    item,
		Date:    time.Now(),
		Details: details,
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Warn().Err(err).
			Str("action", action).
			Str("item", item).
			Msg("no se pudo guardar historial")
	}
}
