package list_visits

import (
	"context"

	"github.com/m04kA/VetClinic-VisitService/internal/service/visits/models"
)

type VisitsService interface {
	List(ctx context.Context) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
