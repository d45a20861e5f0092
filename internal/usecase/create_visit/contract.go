package create_visit

import (
	"context"
	"time"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	List(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
}

// ClinicServiceClient интерфейс клиента для CatalogService
type ClinicServiceClient interface {
	GetVet(ctx context.Context, vetID int64) (*clinicservice.Vet, error)
	GetPet(ctx context.Context, petID int64) (*clinicservice.Pet, error)
	ListTreatmentRooms(ctx context.Context) ([]*clinicservice.TreatmentRoom, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
