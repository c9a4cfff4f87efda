package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"

	"github.com/go-co-op/gocron/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const healthService = "fantasy.Scheduler"

// Start the grpc server that reports the scheduler health.
func startGRPCServer(addr string) (*grpc.Server, *health.Server) {
	list, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Couldn't start the tcp server: %v", err)
	}

	grpcServer := grpc.NewServer()

	// Register the health check.
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		log.Printf("Running gRPC health server on %s.", addr)
		if err := grpcServer.Serve(list); err != nil {
			log.Fatalf("Failed to serve grpc: %v", err)
		}
	}()

	return grpcServer, healthServer
}

// Expose the prometheus registry.
func startMetricsServer(addr string, appMetrics *metrics.Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", appMetrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Serving metrics on %s.", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve metrics: %v", err)
		}
	}()

	return srv
}

// Handle the shutdown of the whole process.
func handleShutdown(
	s gocron.Scheduler,
	grpcServer *grpc.Server,
	healthServer *health.Server,
	metricsServer *http.Server,
	cancel context.CancelFunc,
) {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	<-signalChannel

	log.Println("Shutting down scheduler...")
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	// Running jobs see a cancelled context and wind down.
	cancel()
	if err := s.Shutdown(); err != nil {
		log.Printf("Error shutting down scheduler: %v", err)
	}

	ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down metrics server: %v", err)
	}

	grpcServer.GracefulStop()
}
