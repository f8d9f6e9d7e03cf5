// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes holds the wire types of the solver service.
package datatypes

import (
	"github.com/AleutianAI/evosat/services/solver/cnf"
	"github.com/AleutianAI/evosat/services/solver/pbil"
)

// SolveRequest asks the service to run PBIL on a problem. Exactly one
// of Problem (the name of a stored problem) or CNF (inline DIMACS
// source) must be set. Zero-valued parameters fall back to the solver
// defaults.
type SolveRequest struct {
	Problem string `json:"problem,omitempty"`
	CNF     string `json:"cnf,omitempty"`

	PopSize              int     `json:"pop_size,omitempty"`
	LearningRate         float64 `json:"learning_rate,omitempty"`
	NegativeLearningRate float64 `json:"negative_learning_rate,omitempty"`
	MutationProbability  float64 `json:"mutation_probability,omitempty"`
	MutationShift        float64 `json:"mutation_shift,omitempty"`
	MaxIterations        int     `json:"max_iterations,omitempty"`
	Seed                 uint64  `json:"seed,omitempty"`
	ReportInterval       int     `json:"report_interval,omitempty"`
	Workers              int     `json:"workers,omitempty"`
}

// Options converts the request into solver options, filling every
// unset parameter from the defaults. The rates are deliberately not
// pointers: a literal 0.0 rate cannot be distinguished from unset, so
// 0 always means "use the default".
func (r SolveRequest) Options() pbil.Options {
	opts := pbil.DefaultOptions()
	if r.PopSize > 0 {
		opts.PopSize = r.PopSize
	}
	if r.LearningRate > 0 {
		opts.LearningRate = r.LearningRate
	}
	if r.NegativeLearningRate > 0 {
		opts.NegativeLearningRate = r.NegativeLearningRate
	}
	if r.MutationProbability > 0 {
		opts.MutationProbability = r.MutationProbability
	}
	if r.MutationShift > 0 {
		opts.MutationShift = r.MutationShift
	}
	if r.MaxIterations > 0 {
		opts.MaxIterations = r.MaxIterations
	}
	if r.ReportInterval > 0 {
		opts.ReportInterval = r.ReportInterval
	}
	opts.Seed = r.Seed
	opts.Workers = r.Workers
	return opts
}

// ProgressUpdate is one streamed frame of a running solve. Mirrors the
// data the core exposes at each reporting point; the final frame has
// IsComplete set.
type ProgressUpdate struct {
	Type              string    `json:"type"` // "progress" or "complete"
	RunID             string    `json:"run_id"`
	Generation        int       `json:"generation"`
	BestFitness       int       `json:"best_fitness"`
	GlobalBestFitness int       `json:"global_best_fitness"`
	MaxFitness        int       `json:"max_fitness"`
	AvgFitness        float64   `json:"avg_fitness"`
	BestIndividual    []uint8   `json:"best_individual"`
	ProbabilityVector []float64 `json:"probability_vector"`
	Entropy           float64   `json:"entropy"`
	IsComplete        bool      `json:"is_complete"`
	TimeElapsed       float64   `json:"time_elapsed"`
}

// NewProgressUpdate maps a core progress snapshot onto the wire type.
func NewProgressUpdate(runID string, p pbil.Progress) ProgressUpdate {
	typ := "progress"
	if p.Done {
		typ = "complete"
	}
	return ProgressUpdate{
		Type:              typ,
		RunID:             runID,
		Generation:        p.Generation,
		BestFitness:       p.BestFitness,
		GlobalBestFitness: p.GlobalBest.Fitness,
		MaxFitness:        p.MaxFitness,
		AvgFitness:        p.AvgFitness,
		BestIndividual:    p.GlobalBest.Vector,
		ProbabilityVector: p.ProbVector,
		Entropy:           p.Statistics.Entropy,
		IsComplete:        p.Done,
		TimeElapsed:       p.Elapsed.Seconds(),
	}
}

// SolveResponse is the terminal summary of a solve.
type SolveResponse struct {
	RunID            string   `json:"run_id"`
	Solution         string   `json:"solution"`
	Fitness          int      `json:"fitness"`
	MaxFitness       int      `json:"max_fitness"`
	FitnessRatio     float64  `json:"fitness_ratio"`
	GenerationFound  int      `json:"generation_found"`
	TotalGenerations int      `json:"total_generations"`
	ElapsedSeconds   float64  `json:"elapsed_seconds"`
	State            string   `json:"state"`
	Diagnostics      []string `json:"diagnostics,omitempty"`
}

// NewSolveResponse maps a solver result onto the wire type.
func NewSolveResponse(runID string, res pbil.Result, diagnostics []string) SolveResponse {
	ratio := 0.0
	if res.MaxFitness > 0 {
		ratio = float64(res.Fitness) / float64(res.MaxFitness)
	}
	return SolveResponse{
		RunID:            runID,
		Solution:         pbil.SolutionString(res.Best),
		Fitness:          res.Fitness,
		MaxFitness:       res.MaxFitness,
		FitnessRatio:     ratio,
		GenerationFound:  res.GenerationFound,
		TotalGenerations: res.TotalGenerations,
		ElapsedSeconds:   res.Elapsed.Seconds(),
		State:            res.State.String(),
		Diagnostics:      diagnostics,
	}
}

// ProblemInfo describes a stored problem.
type ProblemInfo struct {
	Name  string    `json:"name"`
	Stats cnf.Stats `json:"stats"`
}
