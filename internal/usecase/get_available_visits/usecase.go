package get_available_visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	clinicClient "github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// UseCase use case для получения свободных интервалов ветеринаров
type UseCase struct {
	visitRepo    VisitRepository
	clinicClient ClinicServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitRepo VisitRepository,
	clinicClient ClinicServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitRepo:    visitRepo,
		clinicClient: clinicClient,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных интервалов
// Read-only операция: смотрит на текущий снимок визитов, доступность
// повторно проверяется при бронировании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableVisits: range=[%s, %s), vets=%v",
		req.StartDateTime.Format(domain.DateTimeFormat), req.EndDateTime.Format(domain.DateTimeFormat), req.VetIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableVisits: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем список ветеринаров: явный фильтр или все
	vets, err := uc.resolveVets(ctx, req.VetIDs)
	if err != nil {
		return nil, err
	}

	// 3. Получаем все визиты выбранных ветеринаров, пересекающиеся с диапазоном
	filter := domain.VisitsFilter{
		VetIDs: req.VetIDs,
		From:   &req.StartDateTime,
		To:     &req.EndDateTime,
	}

	visits, err := uc.visitRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableVisits: failed to list visits: %v", err)
		return nil, fmt.Errorf("%w: failed to list visits: %v", ErrInternal, err)
	}

	visitsByVet := groupVisitsByVet(visits)

	// 4. Для каждого ветеринара вычитаем занятые интервалы из рабочих окон
	slots := make([]domain.AvailableSlot, 0)
	for _, vet := range vets {
		if !hasValidWorkWindow(vet) {
			uc.logger.Warn("GetAvailableVisits: vet id=%d has invalid work window [%s, %s), skipping",
				vet.ID, vet.WorkStartTime, vet.WorkEndTime)
			continue
		}

		open, err := openIntervalsForVet(vet, req.StartDateTime, req.EndDateTime, visitsByVet[vet.ID])
		if err != nil {
			uc.logger.Error("GetAvailableVisits: failed to compute intervals for vet id=%d: %v", vet.ID, err)
			return nil, fmt.Errorf("%w: failed to compute intervals: %v", ErrInternal, err)
		}

		for _, gap := range open {
			slots = append(slots, domain.AvailableSlot{
				VetID: vet.ID,
				Start: gap.start,
				End:   gap.end,
			})
		}
	}

	// 5. Слоты с одинаковыми границами у разных ветеринаров объединяются
	merged := mergeSlots(slots)

	uc.logger.Info("GetAvailableVisits: computed %d slots for %d vets", len(merged), len(vets))

	return &Response{
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		Slots:         merged,
	}, nil
}

// resolveVets возвращает ветеринаров по фильтру или всех, если фильтр пуст
func (uc *UseCase) resolveVets(ctx context.Context, vetIDs []int64) ([]*clinicClient.Vet, error) {
	if len(vetIDs) == 0 {
		vets, err := uc.clinicClient.ListVets(ctx)
		if err != nil {
			uc.logger.Error("GetAvailableVisits: failed to list vets: %v", err)
			return nil, fmt.Errorf("%w: failed to list vets: %v", ErrInternal, err)
		}
		return vets, nil
	}

	// Фильтр - это множество: повторяющиеся ID схлопываются,
	// иначе ветеринар попадет в слот дважды
	seen := make(map[int64]struct{}, len(vetIDs))
	vets := make([]*clinicClient.Vet, 0, len(vetIDs))
	for _, vetID := range vetIDs {
		if _, ok := seen[vetID]; ok {
			continue
		}
		seen[vetID] = struct{}{}

		vet, err := uc.clinicClient.GetVet(ctx, vetID)
		if err != nil {
			if errors.Is(err, clinicClient.ErrVetNotFound) {
				uc.logger.Warn("GetAvailableVisits: vet id=%d not found", vetID)
				return nil, ErrVetNotFound
			}
			uc.logger.Error("GetAvailableVisits: failed to get vet id=%d: %v", vetID, err)
			return nil, fmt.Errorf("%w: failed to get vet: %v", ErrInternal, err)
		}
		vets = append(vets, vet)
	}

	return vets, nil
}
