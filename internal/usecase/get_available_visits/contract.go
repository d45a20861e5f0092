package get_available_visits

import (
	"context"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	// List получает визиты, пересекающиеся с интервалом фильтра
	List(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
}

// ClinicServiceClient интерфейс клиента для CatalogService
type ClinicServiceClient interface {
	GetVet(ctx context.Context, vetID int64) (*clinicservice.Vet, error)
	ListVets(ctx context.Context) ([]*clinicservice.Vet, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
