package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/saransh1220/rawconvert/internal/mocks"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/application"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle_ReturnsStdout(t *testing.T) {
	runner := new(mocks.MockRunner)
	var id string
	runner.On("Run", mock.Anything).Run(func(args mock.Arguments) {
		id = application.InvocationID(args.Get(0).(context.Context))
	}).Return("temp:5200|green:1\n", nil).Once()

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "aws-req-1"})
	out, err := NewHandler(runner).Handle(ctx, json.RawMessage(`{"anything":"ignored"}`))

	require.NoError(t, err)
	assert.Equal(t, "temp:5200|green:1\n", out)
	assert.Equal(t, "aws-req-1", id)
	runner.AssertExpectations(t)
}

func TestHandler_Handle_PropagatesError(t *testing.T) {
	cause := &domain.StageError{Stage: domain.StageFetch, Key: "IMG_0416.CR2", Err: errors.New("NoSuchKey")}
	runner := new(mocks.MockRunner)
	runner.On("Run", mock.Anything).Return("", cause).Once()

	out, err := NewHandler(runner).Handle(context.Background(), nil)

	assert.Empty(t, out)
	assert.Same(t, cause, err)
}
