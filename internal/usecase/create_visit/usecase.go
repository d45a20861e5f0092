package create_visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	clinicClient "github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// UseCase use case для создания визита
type UseCase struct {
	visitRepo    VisitRepository
	clinicClient ClinicServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitRepo VisitRepository,
	clinicClient ClinicServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitRepo:    visitRepo,
		clinicClient: clinicClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания визита
// Проверка доступности и запись выполняются в одной SERIALIZABLE транзакции,
// чтобы два конкурирующих бронирования не заняли одного ветеринара или кабинет.
// Ошибки валидации прерывают выполнение до записи - частичный визит не фиксируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateVisit: vet=%d, pet=%d, start=%s, duration=%dm",
		req.VetID, req.PetID, req.StartDateTime.Format(domain.DateTimeFormat), req.DurationMinutes)

	// 1. Валидация входных данных (длительность, цена, типы)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateVisit: validation failed: %v", err)
		return nil, err
	}

	start := req.StartDateTime
	end := start.Add(visitDuration(req.DurationMinutes))

	// 2. Визит нельзя забронировать в прошлом
	if start.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateVisit: startDateTime %s is in the past", start.Format(domain.DateTimeFormat))
		return nil, fmt.Errorf("%w: startDateTime must not be in the past", ErrInvalidInput)
	}

	// 3. Проверяем существование ветеринара и питомца
	vet, err := uc.clinicClient.GetVet(ctx, req.VetID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrVetNotFound) {
			uc.logger.Warn("CreateVisit: vet id=%d not found", req.VetID)
			return nil, ErrVetNotFound
		}
		uc.logger.Error("CreateVisit: failed to get vet id=%d: %v", req.VetID, err)
		return nil, fmt.Errorf("%w: failed to get vet: %v", ErrInternal, err)
	}

	if _, err := uc.clinicClient.GetPet(ctx, req.PetID); err != nil {
		if errors.Is(err, clinicClient.ErrPetNotFound) {
			uc.logger.Warn("CreateVisit: pet id=%d not found", req.PetID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateVisit: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}

	// 4. Получаем кабинеты до транзакции - справочник меняется редко
	rooms, err := uc.clinicClient.ListTreatmentRooms(ctx)
	if err != nil {
		uc.logger.Error("CreateVisit: failed to list treatment rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list treatment rooms: %v", ErrInternal, err)
	}

	var result *domain.Visit

	// 5. Проверки расписания и запись - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Интервал целиком в рабочих часах ветеринара на каждый затронутый день
		covered, err := workWindowCovers(vet, start, end)
		if err != nil {
			uc.logger.Error("CreateVisit: failed to check work window for vet id=%d: %v", req.VetID, err)
			return fmt.Errorf("%w: failed to check work window: %v", ErrInternal, err)
		}
		if !covered {
			uc.logger.Warn("CreateVisit: interval [%s, %s) outside work window of vet id=%d",
				start.Format(domain.DateTimeFormat), end.Format(domain.DateTimeFormat), req.VetID)
			return ErrVetUnavailable
		}

		// 5.2. Все визиты, пересекающиеся с интервалом, с блокировкой (FOR UPDATE)
		filter := domain.VisitsFilter{
			From: &start,
			To:   &end,
		}

		visits, err := uc.visitRepo.List(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateVisit: failed to list overlapping visits: %v", err)
			return fmt.Errorf("%w: failed to list visits: %v", ErrInternal, err)
		}

		// 5.3. У ветеринара нет пересекающегося визита
		if hasVetConflict(req.VetID, start, end, visits) {
			uc.logger.Warn("CreateVisit: vet id=%d already has a visit overlapping [%s, %s)",
				req.VetID, start.Format(domain.DateTimeFormat), end.Format(domain.DateTimeFormat))
			return ErrVetUnavailable
		}

		// 5.4. Аллоцируем кабинет
		roomID, ok := allocateRoom(rooms, start, end, visits)
		if !ok {
			uc.logger.Warn("CreateVisit: no free treatment room in [%s, %s), %d rooms total",
				start.Format(domain.DateTimeFormat), end.Format(domain.DateTimeFormat), len(rooms))
			return ErrNoRoomAvailable
		}

		uc.logger.Info("CreateVisit: allocated room id=%d for vet id=%d", roomID, req.VetID)

		// 5.5. Создаем визит в начальном статусе
		visit := &domain.Visit{
			VetID:           req.VetID,
			PetID:           req.PetID,
			TreatmentRoomID: roomID,
			StartDateTime:   start,
			DurationMinutes: req.DurationMinutes,
			Price:           req.Price,
			VisitType:       req.VisitType,
			OperationType:   req.OperationType,
			Status:          domain.StatusScheduled,
		}

		created, err := uc.visitRepo.Create(txCtx, visit)
		if err != nil {
			uc.logger.Error("CreateVisit: failed to create visit: %v", err)
			return fmt.Errorf("%w: failed to create visit: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateVisit: successfully created visit id=%d (vet=%d, room=%d)",
		result.ID, result.VetID, result.TreatmentRoomID)

	return fromDomainVisit(result), nil
}
