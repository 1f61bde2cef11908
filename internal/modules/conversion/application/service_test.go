package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/saransh1220/rawconvert/internal/mocks"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/application"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
	"github.com/saransh1220/rawconvert/internal/shared/infrastructure/metrics"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invocations(result string) float64 {
	return testutil.ToFloat64(metrics.InvocationsTotal.WithLabelValues(result))
}

type fixture struct {
	fs        afero.Fs
	store     *mocks.MockObjectStore
	converter *mocks.MockConverter
	svc       *application.ConversionService
	calls     []string
}

func newFixture() *fixture {
	f := &fixture{
		fs:        afero.NewMemMapFs(),
		store:     new(mocks.MockObjectStore),
		converter: new(mocks.MockConverter),
	}
	f.svc = application.NewConversionService(f.store, f.converter, f.fs, domain.DefaultJob())
	return f
}

func (f *fixture) expectFetch(data []byte, err error) {
	f.store.On("Fetch", mock.Anything, "IMG_0416.CR2").
		Run(func(mock.Arguments) { f.calls = append(f.calls, "fetch") }).
		Return(data, err).Once()
}

func (f *fixture) expectConvert(stdout string, err error) {
	f.converter.On("Convert", mock.Anything, "/tmp/IMG_0416.CR2", "/tmp/out.jpg", domain.DefaultJob().Params).
		Run(func(args mock.Arguments) {
			f.calls = append(f.calls, "convert")
			if err == nil {
				_ = afero.WriteFile(f.fs, args.String(2), []byte("jpeg-bytes"), 0o644)
			}
		}).
		Return(stdout, err).Once()
}

func (f *fixture) expectStore(err error) {
	f.store.On("Store", mock.Anything, "IMG_0416.jpg", []byte("jpeg-bytes"), "image/jpg", domain.VisibilityPublicRead).
		Run(func(mock.Arguments) { f.calls = append(f.calls, "store") }).
		Return(err).Once()
}

func TestConversionService_Run_Success(t *testing.T) {
	f := newFixture()
	f.expectFetch([]byte("raw-bytes"), nil)
	f.expectConvert("Loaded image..\ntemp:5200|green:1\n", nil)
	f.expectStore(nil)
	okBefore := invocations(metrics.ResultOK)

	out, err := f.svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, okBefore+1, invocations(metrics.ResultOK))

	assert.Equal(t, "Loaded image..\ntemp:5200|green:1\n", out)
	assert.Equal(t, []string{"fetch", "convert", "store"}, f.calls)

	raw, err := afero.ReadFile(f.fs, "/tmp/IMG_0416.CR2")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw-bytes"), raw)

	f.store.AssertExpectations(t)
	f.converter.AssertExpectations(t)
}

func TestConversionService_Run_FetchFailure(t *testing.T) {
	f := newFixture()
	cause := errors.New("NoSuchKey")
	f.expectFetch(nil, cause)
	fetchBefore, okBefore := invocations("fetch"), invocations(metrics.ResultOK)

	out, err := f.svc.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, fetchBefore+1, invocations("fetch"))
	assert.Equal(t, okBefore, invocations(metrics.ResultOK))

	assert.Empty(t, out)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrConvert)
	assert.Equal(t, domain.StageFetch, domain.StageOf(err))
	assert.Equal(t, []string{"fetch"}, f.calls)

	f.converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionService_Run_ScratchWriteFailure(t *testing.T) {
	f := newFixture()
	f.svc = application.NewConversionService(f.store, f.converter, afero.NewReadOnlyFs(f.fs), domain.DefaultJob())
	f.expectFetch([]byte("raw-bytes"), nil)

	_, err := f.svc.Run(context.Background())
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrFetch)
	f.converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionService_Run_ConvertFailure(t *testing.T) {
	f := newFixture()
	exitErr := &domain.ExitError{Command: "rawtherapee-cli-custom", Code: 1, Stderr: "Error: default raw processing profile not found."}
	f.expectFetch([]byte("raw-bytes"), nil)
	f.expectConvert("", exitErr)
	convertBefore := invocations("convert")

	out, err := f.svc.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, convertBefore+1, invocations("convert"))

	assert.Empty(t, out)
	assert.ErrorIs(t, err, domain.ErrConvert)
	var got *domain.ExitError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 1, got.Code)
	assert.Equal(t, []string{"fetch", "convert"}, f.calls)

	f.store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionService_Run_MissingOutputFailsStore(t *testing.T) {
	f := newFixture()
	f.expectFetch([]byte("raw-bytes"), nil)
	f.converter.On("Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("ok", nil).Once()

	_, err := f.svc.Run(context.Background())
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrStore)
	f.store.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConversionService_Run_StoreFailure(t *testing.T) {
	f := newFixture()
	cause := errors.New("AccessDenied")
	f.expectFetch([]byte("raw-bytes"), nil)
	f.expectConvert("done", nil)
	f.expectStore(cause)
	storeBefore := invocations("store")

	out, err := f.svc.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, storeBefore+1, invocations("store"))

	assert.Empty(t, out)
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, domain.StageStore, domain.StageOf(err))
	assert.Contains(t, err.Error(), `"IMG_0416.jpg"`)
	assert.Equal(t, []string{"fetch", "convert", "store"}, f.calls)
}

func TestInvocationID(t *testing.T) {
	ctx := application.WithInvocationID(context.Background(), "req-1")
	assert.Equal(t, "req-1", application.InvocationID(ctx))

	generated := application.InvocationID(context.Background())
	assert.Len(t, generated, 36)
}

func TestConversionService_Job(t *testing.T) {
	f := newFixture()
	assert.Equal(t, domain.DefaultJob(), f.svc.Job())
}
