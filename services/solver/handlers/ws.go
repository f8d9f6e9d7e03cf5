// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/AleutianAI/evosat/pkg/logging"
	"github.com/AleutianAI/evosat/services/solver/datatypes"
	"github.com/AleutianAI/evosat/services/solver/observability"
	"github.com/AleutianAI/evosat/services/solver/pbil"
	"github.com/AleutianAI/evosat/services/solver/problems"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  64 * 1024,
	WriteBufferSize: 64 * 1024,
}

// wsControl is a client-to-server frame after the initial request.
type wsControl struct {
	Action string `json:"action"` // "cancel"
}

func sendJSON(ws *websocket.Conn, logger *logging.Logger, v any) error {
	err := ws.WriteJSON(v)
	if err != nil {
		logger.Warn("failed to write websocket JSON", "error", err)
	}
	return err
}

// HandleSolveWebSocket streams a solve run over a websocket. The
// client sends one SolveRequest; the server answers with a run_created
// frame, then one progress frame per reporting interval, and a final
// result frame. Closing the socket, or sending {"action": "cancel"},
// stops the run at the next generation boundary.
func HandleSolveWebSocket(store *problems.Store, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Error("failed to upgrade the websocket", "error", err)
			return
		}
		defer ws.Close()

		runID := uuid.New().String()
		logger.Info("websocket solve session started", "run_id", runID)

		var req datatypes.SolveRequest
		if err := ws.ReadJSON(&req); err != nil {
			logger.Info("websocket client disconnected before request", "error", err.Error())
			return
		}

		problem, diagnostics, err := loadProblem(store, req)
		if err != nil {
			sendJSON(ws, logger, gin.H{"type": "error", "run_id": runID, "error": err.Error()})
			return
		}
		opts := req.Options()
		if err := opts.Validate(); err != nil {
			sendJSON(ws, logger, gin.H{"type": "error", "run_id": runID, "error": err.Error()})
			return
		}

		if err := sendJSON(ws, logger, gin.H{
			"type":        "run_created",
			"run_id":      runID,
			"variables":   problem.NumVariables,
			"clauses":     problem.NumClauses,
			"diagnostics": diagnostics,
		}); err != nil {
			return
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		// Reader goroutine: the solve loop below owns all writes, this
		// goroutine owns all reads. A close or a cancel frame stops the
		// run at the next generation boundary.
		go func() {
			for {
				_, msg, err := ws.ReadMessage()
				if err != nil {
					cancel()
					return
				}
				var ctrl wsControl
				if json.Unmarshal(msg, &ctrl) == nil && ctrl.Action == "cancel" {
					logger.Info("solve cancelled by client", "run_id", runID)
					cancel()
					return
				}
			}
		}()

		m := observability.DefaultMetrics
		if m != nil {
			m.ActiveSolves.Inc()
			defer m.ActiveSolves.Dec()
		}

		opts.Progress = func(p pbil.Progress) {
			if p.Done {
				// The terminal summary frame below carries the final state.
				return
			}
			if m != nil {
				m.ProgressFramesTotal.Inc()
			}
			if err := sendJSON(ws, logger, datatypes.NewProgressUpdate(runID, p)); err != nil {
				cancel()
			}
		}

		result, solveErr := pbil.Solve(ctx, problem, opts)
		state := result.State.String()
		failed := solveErr != nil && result.State != pbil.StateCancelled
		if failed {
			state = "error"
		}
		m.RecordSolve("websocket", state, result.Elapsed.Seconds(), result.TotalGenerations)
		if failed {
			sendJSON(ws, logger, gin.H{"type": "error", "run_id": runID, "error": solveErr.Error()})
			return
		}

		logger.Info("websocket solve finished",
			"run_id", runID,
			"state", state,
			"fitness", result.Fitness,
			"max_fitness", result.MaxFitness,
			"generations", result.TotalGenerations)

		resp := datatypes.NewSolveResponse(runID, result, diagnostics)
		sendJSON(ws, logger, gin.H{"type": "result", "result": resp})
	}
}
