package suggest_location_slots

import (
	"context"

	suggestLocationSlots "github.com/feldwerk/scheduling-service/internal/usecase/suggest_location_slots"
)

type SuggestLocationSlotsUseCase interface {
	Execute(ctx context.Context, req *suggestLocationSlots.Request) (*suggestLocationSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
