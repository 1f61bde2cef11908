package application

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
	"github.com/saransh1220/rawconvert/internal/shared/infrastructure/metrics"
	"github.com/saransh1220/rawconvert/pkg/logger"
	"github.com/spf13/afero"
)

type ctxKey struct{}

// WithInvocationID tags ctx with the id used to correlate log lines of one round trip.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// InvocationID returns the id stored by WithInvocationID, or a fresh one.
func InvocationID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.New().String()
}

// ConversionService runs one job: download, convert, upload.
type ConversionService struct {
	store     domain.ObjectStore
	converter domain.Converter
	fs        afero.Fs
	job       domain.Job
}

// NewConversionService creates a conversion service bound to a single job
func NewConversionService(store domain.ObjectStore, converter domain.Converter, fs afero.Fs, job domain.Job) *ConversionService {
	return &ConversionService{
		store:     store,
		converter: converter,
		fs:        fs,
		job:       job,
	}
}

// Job returns the job this service runs.
func (s *ConversionService) Job() domain.Job {
	return s.job
}

// Run executes the round trip and returns the converter's stdout.
// The first failing stage aborts the run; scratch files are left in place.
func (s *ConversionService) Run(ctx context.Context) (string, error) {
	log := logger.Log.With().Str("invocation_id", InvocationID(ctx)).Logger()

	if err := s.download(ctx, log); err != nil {
		return "", s.fail(log, domain.StageFetch, s.job.SourceKey, err)
	}

	out, err := s.convert(ctx, log)
	if err != nil {
		return "", s.fail(log, domain.StageConvert, s.job.RawPath, err)
	}

	if err := s.upload(ctx, log); err != nil {
		return "", s.fail(log, domain.StageStore, s.job.DestKey, err)
	}

	metrics.RecordResult(metrics.ResultOK)
	log.Info().Str("key", s.job.DestKey).Msg("round trip complete")
	return out, nil
}

func (s *ConversionService) download(ctx context.Context, log zerolog.Logger) error {
	defer metrics.ObserveStage(string(domain.StageFetch), time.Now())

	log.Debug().Str("key", s.job.SourceKey).Msg("fetching raw file")
	data, err := s.store.Fetch(ctx, s.job.SourceKey)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, s.job.RawPath, data, 0o644); err != nil {
		return err
	}
	log.Debug().Str("path", s.job.RawPath).Int("bytes", len(data)).Msg("raw file written")
	return nil
}

func (s *ConversionService) convert(ctx context.Context, log zerolog.Logger) (string, error) {
	defer metrics.ObserveStage(string(domain.StageConvert), time.Now())

	log.Debug().Strs("args", s.job.Params.Args(s.job.RawPath, s.job.OutputPath)).Msg("running converter")
	return s.converter.Convert(ctx, s.job.RawPath, s.job.OutputPath, s.job.Params)
}

func (s *ConversionService) upload(ctx context.Context, log zerolog.Logger) error {
	defer metrics.ObserveStage(string(domain.StageStore), time.Now())

	data, err := afero.ReadFile(s.fs, s.job.OutputPath)
	if err != nil {
		return err
	}

	log.Debug().Str("key", s.job.DestKey).Int("bytes", len(data)).Msg("storing jpeg")
	return s.store.Store(ctx, s.job.DestKey, bytes.NewReader(data), s.job.ContentType, s.job.Visibility)
}

func (s *ConversionService) fail(log zerolog.Logger, stage domain.Stage, key string, err error) error {
	metrics.RecordResult(string(stage))
	log.Error().Err(err).Str("stage", string(stage)).Str("key", key).Msg("round trip aborted")
	return &domain.StageError{Stage: stage, Key: key, Err: err}
}
