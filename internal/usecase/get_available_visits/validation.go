package get_available_visits

import (
	"fmt"

	"github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDateTime.IsZero() {
		return fmt.Errorf("%w: startDateTime is required", ErrInvalidInput)
	}

	if req.EndDateTime.IsZero() {
		return fmt.Errorf("%w: endDateTime is required", ErrInvalidInput)
	}

	if !req.StartDateTime.Before(req.EndDateTime) {
		return fmt.Errorf("%w: startDateTime must be before endDateTime", ErrInvalidInput)
	}

	for _, vetID := range req.VetIDs {
		if vetID <= 0 {
			return fmt.Errorf("%w: vetId must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// hasValidWorkWindow проверяет инвариант рабочего окна: start < end
func hasValidWorkWindow(vet *clinicservice.Vet) bool {
	if vet.WorkStartTime.Validate() != nil || vet.WorkEndTime.Validate() != nil {
		return false
	}
	return vet.WorkStartTime.IsBefore(vet.WorkEndTime)
}
