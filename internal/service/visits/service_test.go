package visits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	visitRepo "github.com/m04kA/VetClinic-VisitService/internal/infra/storage/visit"
	"github.com/m04kA/VetClinic-VisitService/internal/service/visits/models"
	"github.com/m04kA/VetClinic-VisitService/pkg/ptr"
)

// mockVisitRepository мок репозитория визитов
type mockVisitRepository struct {
	GetByIDFunc  func(ctx context.Context, id int64) (*domain.Visit, error)
	ListFunc     func(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
	FinalizeFunc func(ctx context.Context, id int64, status domain.VisitStatus, description *string) error
	DeleteFunc   func(ctx context.Context, id int64) error
}

func (m *mockVisitRepository) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, visitRepo.ErrVisitNotFound
}

func (m *mockVisitRepository) List(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockVisitRepository) Finalize(ctx context.Context, id int64, status domain.VisitStatus, description *string) error {
	if m.FinalizeFunc != nil {
		return m.FinalizeFunc(ctx, id, status, description)
	}
	return nil
}

func (m *mockVisitRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// noopLogger логгер-заглушка для тестов
type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func scheduledVisit(id int64) *domain.Visit {
	start := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	return &domain.Visit{
		ID:              id,
		VetID:           1,
		PetID:           2,
		TreatmentRoomID: 3,
		StartDateTime:   start,
		DurationMinutes: 30,
		Price:           decimal.NewFromInt(1500),
		VisitType:       domain.VisitTypeRoutine,
		OperationType:   domain.OperationCheckup,
		Status:          domain.StatusScheduled,
		CreatedAt:       start.Add(-24 * time.Hour),
		UpdatedAt:       start.Add(-24 * time.Hour),
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &mockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Visit, error) {
			if id == 1 {
				return scheduledVisit(1), nil
			}
			return nil, visitRepo.ErrVisitNotFound
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "scheduled", resp.VisitStatus)
	assert.Equal(t, "2025-06-16T10:30:00Z", resp.EndDateTime)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestService_List_IncludesCancelled(t *testing.T) {
	var gotFilter domain.VisitsFilter
	repo := &mockVisitRepository{
		ListFunc: func(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
			gotFilter = filter
			cancelled := scheduledVisit(2)
			cancelled.Status = domain.StatusCancelled
			return []*domain.Visit{scheduledVisit(1), cancelled}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.True(t, gotFilter.IncludeCancelled)
	require.Len(t, resp.Visits, 2)
	assert.Equal(t, "cancelled", resp.Visits[1].VisitStatus)
}

func TestService_Finalize_Completed(t *testing.T) {
	finalized := false
	repo := &mockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Visit, error) {
			visit := scheduledVisit(1)
			if finalized {
				visit.Status = domain.StatusCompleted
				visit.Description = ptr.Ptr("Плановый осмотр, все хорошо")
			}
			return visit, nil
		},
		FinalizeFunc: func(ctx context.Context, id int64, status domain.VisitStatus, description *string) error {
			assert.Equal(t, domain.StatusCompleted, status)
			require.NotNil(t, description)
			finalized = true
			return nil
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Finalize(context.Background(), &models.FinalizeVisitRequest{
		ID:          1,
		Status:      "completed",
		Description: ptr.Ptr("Плановый осмотр, все хорошо"),
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.VisitStatus)
	require.NotNil(t, resp.VisitDescription)
	assert.Equal(t, "Плановый осмотр, все хорошо", *resp.VisitDescription)
}

func TestService_Finalize_InvalidTargetStatus(t *testing.T) {
	svc := NewService(&mockVisitRepository{}, noopLogger{})

	// Обратно в scheduled нельзя
	_, err := svc.Finalize(context.Background(), &models.FinalizeVisitRequest{ID: 1, Status: "scheduled"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Finalize(context.Background(), &models.FinalizeVisitRequest{ID: 1, Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Finalize(context.Background(), &models.FinalizeVisitRequest{ID: 0, Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Finalize_AlreadyFinalized(t *testing.T) {
	repo := &mockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Visit, error) {
			visit := scheduledVisit(1)
			visit.Status = domain.StatusCompleted
			return visit, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Finalize(context.Background(), &models.FinalizeVisitRequest{ID: 1, Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Finalize_ConcurrentLoser(t *testing.T) {
	// Guard в UPDATE не нашел строку в scheduled - конкурент успел раньше
	repo := &mockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Visit, error) {
			return scheduledVisit(1), nil
		},
		FinalizeFunc: func(ctx context.Context, id int64, status domain.VisitStatus, description *string) error {
			return visitRepo.ErrVisitNotFound
		},
	}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Finalize(context.Background(), &models.FinalizeVisitRequest{ID: 1, Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Finalize_NotFound(t *testing.T) {
	svc := NewService(&mockVisitRepository{}, noopLogger{})

	_, err := svc.Finalize(context.Background(), &models.FinalizeVisitRequest{ID: 404, Status: "completed"})
	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestService_Delete(t *testing.T) {
	deleted := make([]int64, 0)
	repo := &mockVisitRepository{
		DeleteFunc: func(ctx context.Context, id int64) error {
			if id == 404 {
				return visitRepo.ErrVisitNotFound
			}
			deleted = append(deleted, id)
			return nil
		},
	}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrVisitNotFound)
}

func TestService_InternalErrorWrapped(t *testing.T) {
	repo := &mockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Visit, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewService(repo, noopLogger{})

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
