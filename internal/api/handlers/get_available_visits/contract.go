package get_available_visits

import (
	"context"

	getAvailableVisits "github.com/m04kA/VetClinic-VisitService/internal/usecase/get_available_visits"
)

type GetAvailableVisitsUseCase interface {
	Execute(ctx context.Context, req *getAvailableVisits.Request) (*getAvailableVisits.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
