package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joho/godotenv"

	"theorem-converter/handler"
	"theorem-converter/internal/config"
	"theorem-converter/internal/integrations/bedrock"
	"theorem-converter/internal/usecase"
)

func main() {
	ctx := context.Background()

	godotenv.Load()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	// ---- AWS SDK config ----
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	bedrockClient, err := bedrock.New(bedrockruntime.NewFromConfig(awsCfg), cfg.ModelID)
	if err != nil {
		slog.Error("failed to create Bedrock client", "err", err)
		os.Exit(1)
	}

	svc, err := usecase.NewConvertService(bedrockClient)
	if err != nil {
		slog.Error("failed to create convert service", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	h, err := handler.NewHandler(svc)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
