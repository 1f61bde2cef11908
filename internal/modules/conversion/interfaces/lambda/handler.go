package lambda

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/application"
)

// Runner runs one round trip
type Runner interface {
	Run(ctx context.Context) (string, error)
}

// Handler adapts the conversion service to the Lambda runtime.
type Handler struct {
	runner Runner
}

func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

// Handle ignores the event payload. The runtime reports a returned error as a
// failed invocation; on success the converter's stdout is the response.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (string, error) {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		ctx = application.WithInvocationID(ctx, lc.AwsRequestID)
	}
	return h.runner.Run(ctx)
}
