package finalize_visit

import (
	"context"

	"github.com/m04kA/VetClinic-VisitService/internal/service/visits/models"
)

type VisitsService interface {
	Finalize(ctx context.Context, req *models.FinalizeVisitRequest) (*models.VisitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
