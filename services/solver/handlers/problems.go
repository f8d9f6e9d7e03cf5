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
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/evosat/pkg/logging"
	"github.com/AleutianAI/evosat/services/solver/cnf"
	"github.com/AleutianAI/evosat/services/solver/datatypes"
	"github.com/AleutianAI/evosat/services/solver/problems"
)

// ListProblems returns the names of all stored problems.
func ListProblems(store *problems.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"problems": names})
	}
}

// GetProblem returns metadata and statistics for one stored problem.
func GetProblem(store *problems.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		problem, diagnostics, err := store.Get(name)
		if err != nil {
			var parseErr *cnf.ParseError
			switch {
			case errors.As(err, &parseErr) && parseErr.Err != nil:
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case parseErr != nil:
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"info":        datatypes.ProblemInfo{Name: name, Stats: problem.Statistics()},
			"diagnostics": diagnostics,
		})
	}
}

// UploadProblem stores the request body as a DIMACS problem under the
// name path parameter. The body is parsed first; malformed input never
// reaches disk.
func UploadProblem(store *problems.Store, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, 32<<20))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body: " + err.Error()})
			return
		}
		problem, diagnostics, err := store.Put(name, string(body))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Info("problem uploaded",
			"name", name,
			"variables", problem.NumVariables,
			"clauses", problem.NumClauses)
		c.JSON(http.StatusCreated, gin.H{
			"info":        datatypes.ProblemInfo{Name: name, Stats: problem.Statistics()},
			"diagnostics": diagnostics,
		})
	}
}
