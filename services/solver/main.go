// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// The solver service exposes PBIL MAXSAT solving over HTTP and
// websocket, with progress streaming for visualization frontends.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/evosat/pkg/logging"
	"github.com/AleutianAI/evosat/services/solver/observability"
	"github.com/AleutianAI/evosat/services/solver/problems"
	"github.com/AleutianAI/evosat/services/solver/routes"
)

func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = "localhost:4317"
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("solver-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			log.Printf("failed to shutdown OTLP exporter: %v", err)
		}
	}, nil
}

func main() {
	port := os.Getenv("EVOSAT_SOLVER_PORT")
	if port == "" {
		port = "12230"
	}
	problemsDir := os.Getenv("EVOSAT_PROBLEMS_DIR")
	if problemsDir == "" {
		problemsDir = "problems"
	}

	logger := logging.New(logging.Config{
		Level:   logging.LevelInfo,
		Service: "solver",
		JSON:    true,
	})
	defer logger.Close()

	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	observability.InitMetrics()

	store, err := problems.NewStore(problemsDir, logger)
	if err != nil {
		log.Fatalf("failed to open problems store: %v", err)
	}
	defer store.Close()

	router := gin.Default()
	router.Use(otelgin.Middleware("solver-service"))
	routes.SetupRoutes(router, store, logger)

	logger.Info("solver service listening", "port", port, "problems_dir", problemsDir)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("solver service failed: %v", err)
	}
}
