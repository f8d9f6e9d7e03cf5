// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the HTTP and websocket endpoints of the
// solver service.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/evosat/pkg/logging"
	"github.com/AleutianAI/evosat/services/solver/cnf"
	"github.com/AleutianAI/evosat/services/solver/datatypes"
	"github.com/AleutianAI/evosat/services/solver/observability"
	"github.com/AleutianAI/evosat/services/solver/pbil"
	"github.com/AleutianAI/evosat/services/solver/problems"
)

// loadProblem resolves a request's problem source: a stored problem by
// name, or inline DIMACS text.
func loadProblem(store *problems.Store, req datatypes.SolveRequest) (*cnf.Problem, []string, error) {
	switch {
	case req.Problem != "" && req.CNF != "":
		return nil, nil, errors.New("set either problem or cnf, not both")
	case req.Problem != "":
		return store.Get(req.Problem)
	case req.CNF != "":
		return cnf.Parse(strings.NewReader(req.CNF))
	default:
		return nil, nil, errors.New("missing problem source: set problem or cnf")
	}
}

// HandleSolve runs a synchronous solve and returns the terminal
// summary. Long runs hold the connection open; clients wanting
// progress should use the websocket endpoint instead.
func HandleSolve(store *problems.Store, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.SolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		problem, diagnostics, err := loadProblem(store, req)
		if err != nil {
			var parseErr *cnf.ParseError
			status := http.StatusBadRequest
			if errors.As(err, &parseErr) && parseErr.Err != nil {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		opts := req.Options()
		if err := opts.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		runID := uuid.New().String()
		logger.Info("solve started",
			"run_id", runID,
			"variables", problem.NumVariables,
			"clauses", problem.NumClauses,
			"pop_size", opts.PopSize,
			"max_iterations", opts.MaxIterations)

		m := observability.DefaultMetrics
		if m != nil {
			m.ActiveSolves.Inc()
			defer m.ActiveSolves.Dec()
		}

		result, err := pbil.Solve(c.Request.Context(), problem, opts)
		state := result.State.String()
		failed := err != nil && result.State != pbil.StateCancelled
		if failed {
			state = "error"
		}
		m.RecordSolve("http", state, result.Elapsed.Seconds(), result.TotalGenerations)
		if failed {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		logger.Info("solve finished",
			"run_id", runID,
			"state", state,
			"fitness", result.Fitness,
			"max_fitness", result.MaxFitness,
			"generations", result.TotalGenerations,
			"elapsed", result.Elapsed)

		c.JSON(http.StatusOK, datatypes.NewSolveResponse(runID, result, diagnostics))
	}
}
