// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/evosat/pkg/logging"
	"github.com/AleutianAI/evosat/services/solver/handlers"
	"github.com/AleutianAI/evosat/services/solver/problems"
)

// SetupRoutes registers all endpoints of the solver service.
func SetupRoutes(router *gin.Engine, store *problems.Store, logger *logging.Logger) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.POST("/solve", handlers.HandleSolve(store, logger))
		v1.GET("/solve/ws", handlers.HandleSolveWebSocket(store, logger))

		probs := v1.Group("/problems")
		{
			probs.GET("", handlers.ListProblems(store))
			probs.GET("/:name", handlers.GetProblem(store))
			probs.PUT("/:name", handlers.UploadProblem(store, logger))
		}
	}
}
