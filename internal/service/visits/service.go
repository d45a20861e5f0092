package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	visitRepo "github.com/m04kA/VetClinic-VisitService/internal/infra/storage/visit"
	"github.com/m04kA/VetClinic-VisitService/internal/service/visits/models"
)

// Service сервис для работы с визитами: чтение, финализация, удаление
// Создание визита живет в отдельном usecase со своей транзакционной логикой
type Service struct {
	visitRepo VisitRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(visitRepo VisitRepository, logger Logger) *Service {
	return &Service{
		visitRepo: visitRepo,
		logger:    logger,
	}
}

// GetByID получает визит по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VisitResponse, error) {
	s.logger.Info("GetByID: fetching visit id=%d", id)

	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("GetByID: visit id=%d not found", id)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("GetByID: repository error for visit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisit(visit), nil
}

// List получает все визиты, включая отменённые
// Фильтрация по правам доступа остается на вызывающей стороне
func (s *Service) List(ctx context.Context) (*models.VisitListResponse, error) {
	s.logger.Info("List: fetching all visits")

	visits, err := s.visitRepo.List(ctx, domain.VisitsFilter{IncludeCancelled: true})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d visits", len(visits))
	return models.FromDomainVisitList(visits), nil
}

// Finalize переводит визит из scheduled в терминальный статус
// (completed или cancelled) и обновляет описание
// Повторная финализация отвергается с ErrInvalidTransition
func (s *Service) Finalize(ctx context.Context, req *models.FinalizeVisitRequest) (*models.VisitResponse, error) {
	s.logger.Info("Finalize: finalizing visit id=%d with status=%s", req.ID, req.Status)

	if req.ID <= 0 {
		s.logger.Warn("Finalize: invalid visit id=%d", req.ID)
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	// Валидируем целевой статус: только терминальные переходы
	newStatus, err := models.ToDomainVisitStatus(req.Status)
	if err != nil || !domain.IsTerminalStatus(newStatus) {
		s.logger.Warn("Finalize: invalid target status=%s for visit id=%d", req.Status, req.ID)
		return nil, fmt.Errorf("%w: status must be one of %v", ErrInvalidInput, domain.TerminalStatuses)
	}

	visit, err := s.visitRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("Finalize: visit id=%d not found", req.ID)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("Finalize: repository error for visit id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Finalize - repository error: %v", ErrInternal, err)
	}

	if !visit.CanBeFinalized() {
		s.logger.Warn("Finalize: visit id=%d already in terminal status=%s", req.ID, visit.Status)
		return nil, ErrInvalidTransition
	}

	// UPDATE с guard по status = scheduled: при гонке вторая финализация
	// не находит строку и получает ErrVisitNotFound от репозитория
	if err := s.visitRepo.Finalize(ctx, req.ID, newStatus, req.Description); err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("Finalize: visit id=%d was finalized concurrently", req.ID)
			return nil, ErrInvalidTransition
		}
		s.logger.Error("Finalize: repository error for visit id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Finalize - repository error: %v", ErrInternal, err)
	}

	updated, err := s.visitRepo.GetByID(ctx, req.ID)
	if err != nil {
		s.logger.Error("Finalize: failed to reload visit id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Finalize - failed to reload visit: %v", ErrInternal, err)
	}

	s.logger.Info("Finalize: successfully finalized visit id=%d to status=%s", req.ID, newStatus)
	return models.FromDomainVisit(updated), nil
}

// Delete удаляет визит
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting visit id=%d", id)

	if err := s.visitRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("Delete: visit id=%d not found", id)
			return ErrVisitNotFound
		}
		s.logger.Error("Delete: repository error for visit id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted visit id=%d", id)
	return nil
}
