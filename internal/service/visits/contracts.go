package visits

import (
	"context"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	List(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
	Finalize(ctx context.Context, id int64, status domain.VisitStatus, description *string) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
