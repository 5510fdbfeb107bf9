package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	jobspb "github.com/lewisallan/titan-jobs/gen/proto/jobs/v1"
	"github.com/lewisallan/titan-jobs/internal/common"
	"github.com/lewisallan/titan-jobs/internal/export"
	"github.com/lewisallan/titan-jobs/internal/importer"
	repo "github.com/lewisallan/titan-jobs/internal/repository"
	svc "github.com/lewisallan/titan-jobs/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	jobsRepo := repo.NewJobRepository(entc, logger)
	customersRepo := repo.NewCustomerRepository(entc, logger)
	batchesRepo := repo.NewImportBatchRepository(entc, logger)

	resolver := importer.NewColumnResolver()
	if path := cfg.Import.AliasConfigPath; path != "" {
		overrides, err := importer.LoadAliasOverrides(path)
		if err != nil {
			logger.Error("failed to load alias overrides", "path", path, "error", err)
			os.Exit(1)
		}
		resolver = resolver.WithOverrides(overrides)
		logger.Info("loaded column alias overrides", "path", path)
	}
	importSvc := importer.NewService(
		importer.NewTransformer(resolver),
		jobsRepo, customersRepo, batchesRepo,
		cfg.Import.ChunkSize, logger,
	)
	exportSvc := export.NewService(jobsRepo, logger)

	jobspb.RegisterJobsServiceServer(grpcServer, svc.NewJobsServer(jobsRepo, exportSvc, logger))
	jobspb.RegisterImportServiceServer(grpcServer, svc.NewImportServer(importSvc, batchesRepo, logger))
	jobspb.RegisterCustomersServiceServer(grpcServer, svc.NewCustomersServer(customersRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("jobsd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
