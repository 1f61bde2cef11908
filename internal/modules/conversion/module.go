package conversion

import (
	"context"
	"fmt"

	"github.com/saransh1220/rawconvert/internal/modules/conversion/application"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/infrastructure/local"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/infrastructure/minio"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/infrastructure/rawtherapee"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/infrastructure/s3"
	"github.com/saransh1220/rawconvert/internal/shared/infrastructure/config"
	"github.com/spf13/afero"
)

// Module represents the conversion module
type Module struct {
	service *application.ConversionService
}

// NewModule builds the object store and converter once, for the lifetime of the process
func NewModule(ctx context.Context, cfg config.Config) (*Module, error) {
	store, err := newStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	converter := rawtherapee.NewConverter(cfg.Converter.Command)
	service := application.NewConversionService(store, converter, afero.NewOsFs(), domain.DefaultJob())

	return &Module{
		service: service,
	}, nil
}

func newStore(ctx context.Context, cfg config.StorageConfig) (domain.ObjectStore, error) {
	switch cfg.Driver {
	case config.DriverS3:
		store, err := s3.NewS3Store(ctx, s3.S3Config{
			BucketName: cfg.Bucket,
			Region:     cfg.Region,
			Endpoint:   cfg.Endpoint,
			AccessKey:  cfg.AccessKey,
			SecretKey:  cfg.SecretKey,
			UseSSL:     cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 store: %w", err)
		}
		return store, nil
	case config.DriverMinio:
		store, err := minio.NewMinioStore(minio.MinioConfig{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			UseSSL:    cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize minio store: %w", err)
		}
		return store, nil
	case config.DriverLocal:
		store, err := local.NewLocalStore(cfg.LocalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local store: %w", err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// Service returns the conversion service for the entry points
func (m *Module) Service() *application.ConversionService {
	return m.service
}
