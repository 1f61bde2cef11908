package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/saransh1220/rawconvert/internal/modules/conversion"
	lambda_handler "github.com/saransh1220/rawconvert/internal/modules/conversion/interfaces/lambda"
	"github.com/saransh1220/rawconvert/internal/shared/infrastructure/config"
	"github.com/saransh1220/rawconvert/pkg/logger"
)

func main() {
	logger.UseJSON(os.Stdout)

	cfg := config.Load()
	logger.SetLevel(cfg.Log.Level)
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Built once per execution environment and reused across warm invocations.
	module, err := conversion.NewModule(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to initialize conversion module")
	}

	logger.Log.Info().
		Str("driver", cfg.Storage.Driver).
		Str("bucket", cfg.Storage.Bucket).
		Msg("conversion module ready")

	lambda.Start(lambda_handler.NewHandler(module.Service()).Handle)
}
