package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	"github.com/raywall/inventory-quick-service/dyndb"
	"github.com/raywall/inventory-quick-service/inventory"
	"github.com/raywall/inventory-quick-service/pkg/config"
	"github.com/raywall/inventory-quick-service/pkg/logger"
	"github.com/raywall/inventory-quick-service/pkg/metrics"
	"github.com/raywall/inventory-quick-service/pkg/transport"
)

var (
	configPath string
	// injectable for tests
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
)

func init() {
	configPath = os.Getenv("CONFIG_FILE_PATH")
}

func main() {
	if err := run(context.Background(), configPath); err != nil {
		stdlog.Fatalf("FATAL: %v", err)
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log.Logger = logger.Configure(cfg.Service.Logging)

	provider, err := metrics.Setup(cfg.Service.Metrics)
	if err != nil {
		return err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	// single long-lived store handle, safe for concurrent reuse
	store := dyndb.New(dynamodb.NewFromConfig(awsCfg), dyndb.TableConfig{
		TableName: cfg.Service.Table.Name,
		HashKey:   cfg.Service.Table.HashKey,
	})

	handler := transport.NewHandler(inventory.NewService(store), provider)

	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(handler, cfg.Service.Port)
	case "lambda":
		lambdaStarter(handler.Handle)
		return nil
	default:
		return fmt.Errorf("unknown runtime %q", cfg.Service.Runtime)
	}
}
