package clinicservice

import "github.com/m04kA/VetClinic-VisitService/pkg/types"

// Vet модель ветеринара из CatalogService
// Рабочее окно задается временем суток и действует каждый день
type Vet struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Surname       string           `json:"surname"`
	PhotoURL      string           `json:"photo_url"`
	WorkStartTime types.TimeString `json:"work_start_time"` // "09:00"
	WorkEndTime   types.TimeString `json:"work_end_time"`   // "17:00"
}

// Pet модель питомца из CatalogService
type Pet struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ClientID int64  `json:"client_id"`
}

// TreatmentRoom модель процедурного кабинета из CatalogService
type TreatmentRoom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
