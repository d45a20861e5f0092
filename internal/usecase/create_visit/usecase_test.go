package create_visit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// mockVisitRepository мок репозитория визитов
type mockVisitRepository struct {
	CreateFunc func(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	ListFunc   func(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
}

func (m *mockVisitRepository) Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, visit)
	}
	created := *visit
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func (m *mockVisitRepository) List(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

// mockClinicClient мок клиента CatalogService
type mockClinicClient struct {
	GetVetFunc             func(ctx context.Context, vetID int64) (*clinicservice.Vet, error)
	GetPetFunc             func(ctx context.Context, petID int64) (*clinicservice.Pet, error)
	ListTreatmentRoomsFunc func(ctx context.Context) ([]*clinicservice.TreatmentRoom, error)
}

func (m *mockClinicClient) GetVet(ctx context.Context, vetID int64) (*clinicservice.Vet, error) {
	if m.GetVetFunc != nil {
		return m.GetVetFunc(ctx, vetID)
	}
	return nil, clinicservice.ErrVetNotFound
}

func (m *mockClinicClient) GetPet(ctx context.Context, petID int64) (*clinicservice.Pet, error) {
	if m.GetPetFunc != nil {
		return m.GetPetFunc(ctx, petID)
	}
	return nil, clinicservice.ErrPetNotFound
}

func (m *mockClinicClient) ListTreatmentRooms(ctx context.Context) ([]*clinicservice.TreatmentRoom, error) {
	if m.ListTreatmentRoomsFunc != nil {
		return m.ListTreatmentRoomsFunc(ctx)
	}
	return nil, nil
}

// mockTxManager выполняет функцию без настоящей транзакции
type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider фиксированное время для тестов
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// noopLogger логгер-заглушка для тестов
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func happyPathClient() *mockClinicClient {
	return &mockClinicClient{
		GetVetFunc: func(ctx context.Context, vetID int64) (*clinicservice.Vet, error) {
			return testVet(vetID, "09:00", "17:00"), nil
		},
		GetPetFunc: func(ctx context.Context, petID int64) (*clinicservice.Pet, error) {
			return &clinicservice.Pet{ID: petID, Name: "Барсик", ClientID: 10}, nil
		},
		ListTreatmentRoomsFunc: func(ctx context.Context) ([]*clinicservice.TreatmentRoom, error) {
			return []*clinicservice.TreatmentRoom{
				{ID: 1, Name: "Смотровая 1"},
				{ID: 2, Name: "Смотровая 2"},
			}, nil
		},
	}
}

func newTestUseCase(repo *mockVisitRepository, client *mockClinicClient) *UseCase {
	uc := NewUseCase(repo, client, mockTxManager{}, noopLogger{})
	// Тестовое "сейчас" - за день до testDay, чтобы бронирования не были в прошлом
	uc.timeProvider = &fixedTimeProvider{now: testDay.AddDate(0, 0, -1)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	var created *domain.Visit
	repo := &mockVisitRepository{
		CreateFunc: func(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
			created = visit
			result := *visit
			result.ID = 100
			return &result, nil
		},
	}
	uc := newTestUseCase(repo, happyPathClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(1), resp.TreatmentRoomID) // первый свободный кабинет
	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.Equal(t, at(testDay, 10, 30), resp.EndDateTime)

	require.NotNil(t, created)
	assert.Equal(t, domain.StatusScheduled, created.Status)
}

func TestUseCase_Execute_StartInPast(t *testing.T) {
	uc := newTestUseCase(&mockVisitRepository{}, happyPathClient())
	uc.timeProvider = &fixedTimeProvider{now: at(testDay, 12, 0)}

	req := validRequest() // начало в 10:00 того же дня

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_NonPositiveDuration(t *testing.T) {
	uc := newTestUseCase(&mockVisitRepository{}, happyPathClient())

	req := validRequest()
	req.DurationMinutes = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_VetNotFound(t *testing.T) {
	uc := newTestUseCase(&mockVisitRepository{}, &mockClinicClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVetNotFound)
}

func TestUseCase_Execute_PetNotFound(t *testing.T) {
	client := happyPathClient()
	client.GetPetFunc = func(ctx context.Context, petID int64) (*clinicservice.Pet, error) {
		return nil, clinicservice.ErrPetNotFound
	}
	uc := newTestUseCase(&mockVisitRepository{}, client)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestUseCase_Execute_OutsideWorkWindow(t *testing.T) {
	client := happyPathClient()
	client.GetVetFunc = func(ctx context.Context, vetID int64) (*clinicservice.Vet, error) {
		return testVet(vetID, "09:00", "10:15"), nil
	}
	uc := newTestUseCase(&mockVisitRepository{}, client)

	// Визит [10:00, 10:30) вылезает за конец смены 10:15
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVetUnavailable)
}

func TestUseCase_Execute_VetConflict(t *testing.T) {
	repo := &mockVisitRepository{
		ListFunc: func(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
			// Существующий визит [10:00, 10:15) пересекается с запрошенным [10:00, 10:30)
			return []*domain.Visit{{
				VetID:           1,
				TreatmentRoomID: 1,
				StartDateTime:   at(testDay, 10, 0),
				DurationMinutes: 15,
				Status:          domain.StatusScheduled,
			}}, nil
		},
	}
	uc := newTestUseCase(repo, happyPathClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVetUnavailable)
}

func TestUseCase_Execute_AllocatesLastFreeRoom(t *testing.T) {
	repo := &mockVisitRepository{
		ListFunc: func(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
			// Кабинет 1 занят другим ветеринаром в тот же интервал
			return []*domain.Visit{{
				VetID:           7,
				TreatmentRoomID: 1,
				StartDateTime:   at(testDay, 10, 0),
				DurationMinutes: 30,
				Status:          domain.StatusScheduled,
			}}, nil
		},
	}
	uc := newTestUseCase(repo, happyPathClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.TreatmentRoomID)
}

func TestUseCase_Execute_NoRoomAvailable(t *testing.T) {
	busy := func(roomID int64) *domain.Visit {
		return &domain.Visit{
			VetID:           int64(roomID + 10),
			TreatmentRoomID: roomID,
			StartDateTime:   at(testDay, 10, 0),
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		}
	}
	repo := &mockVisitRepository{
		ListFunc: func(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
			return []*domain.Visit{busy(1), busy(2)}, nil
		},
	}
	uc := newTestUseCase(repo, happyPathClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoRoomAvailable)
}
