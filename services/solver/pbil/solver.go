// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pbil implements Population Based Incremental Learning for
// MAXSAT: a probability vector over the problem's variables is sampled
// into candidate assignments, scored against the clause set, and
// incrementally shifted toward the best assignment seen each
// generation.
//
// The generational loop is single-threaded and deterministic under a
// fixed seed. All probability-vector transformations (Update, Mutate,
// Clamp) return freshly allocated vectors; the loop holds exactly one
// live vector at a time, so no two stages ever share a buffer.
package pbil

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/AleutianAI/evosat/services/solver/cnf"
)

// State is the solver's position in its lifecycle.
type State int

const (
	// StateInit is the state before the first generation runs.
	StateInit State = iota
	// StateIterating means the generational loop is in progress.
	StateIterating
	// StateConverged means an individual satisfied every clause.
	StateConverged
	// StateExhausted means MaxIterations generations ran without
	// convergence.
	StateExhausted
	// StateCancelled means the run was stopped through its context at a
	// generation boundary.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// GlobalBest records the best individual observed across all
// generations so far. Fitness is monotonically non-decreasing over a
// run; Vector is owned by the record, never shared with a population.
type GlobalBest struct {
	Generation int     `json:"generation"`
	Vector     []uint8 `json:"vector"`
	Fitness    int     `json:"fitness"`
}

// GenerationStats is one fitness-history sample.
type GenerationStats struct {
	Generation  int     `json:"generation"`
	BestFitness int     `json:"best_fitness"`
	AvgFitness  float64 `json:"avg_fitness"`
}

// Progress is a typed snapshot handed to the ProgressFunc. All slices
// are copies; the receiver may retain them.
type Progress struct {
	Generation  int
	BestFitness int // best of the reported generation
	AvgFitness  float64
	GlobalBest  GlobalBest
	MaxFitness  int
	ProbVector  []float64
	Statistics  VectorStatistics
	Done        bool
	Elapsed     time.Duration
}

// ProgressFunc receives progress snapshots. It is called synchronously
// from the solver loop, so slow receivers slow the run; hand off to a
// channel if that matters.
type ProgressFunc func(Progress)

// Result is the outcome of a run.
type Result struct {
	Best             []uint8           `json:"best"`
	Fitness          int               `json:"fitness"`
	MaxFitness       int               `json:"max_fitness"`
	GenerationFound  int               `json:"generation_found"`
	TotalGenerations int               `json:"total_generations"`
	Elapsed          time.Duration     `json:"elapsed"`
	State            State             `json:"-"`
	History          []GenerationStats `json:"-"`
}

// Solve runs PBIL on the problem until an individual satisfies every
// clause, MaxIterations generations have run, or ctx is cancelled.
// Cancellation is observed only at generation boundaries, so the
// returned GlobalBest always reflects fully evaluated generations; in
// that case the partial Result is returned together with ctx.Err().
//
// A problem with zero clauses never converges: every individual scores
// 0 = NumClauses, but an empty conjunction carries no signal, so the
// loop deliberately runs to exhaustion instead of declaring instant
// success.
func Solve(ctx context.Context, problem *cnf.Problem, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	src := opts.Source
	if src == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src = rand.NewPCG(seed, seed)
	}
	rng := rand.New(src)

	interval := opts.ReportInterval
	if interval == 0 {
		interval = 100
	}

	n := problem.NumVariables
	maxFitness := problem.NumClauses
	start := time.Now()

	// INIT: undecided model, zero-individual seed for best/worst and
	// for the global best.
	probVector := make([]float64, n)
	for i := range probVector {
		probVector[i] = 0.5
	}
	zero := make([]uint8, n)
	best, worst := zero, zero
	global := GlobalBest{Generation: 0, Vector: cloneBits(zero), Fitness: Fitness(zero, problem)}

	state := StateIterating
	generations := 0
	var history []GenerationStats
	var runErr error

	for gen := 0; gen < opts.MaxIterations; gen++ {
		if err := ctx.Err(); err != nil {
			state = StateCancelled
			runErr = err
			break
		}

		// The first generation samples the untouched 0.5 vector; there
		// is no prior best/worst to learn from yet.
		if gen > 0 {
			probVector = Update(probVector, best, worst, opts.LearningRate, opts.NegativeLearningRate)
			probVector = Mutate(rng, probVector, opts.MutationProbability, opts.MutationShift)
			probVector = Clamp(probVector)
		}

		population := Sample(rng, probVector, opts.PopSize)
		fits := evaluatePopulation(population, problem, opts.Workers)

		bestIdx := selectBestIdx(fits, maxFitness)
		best = population[bestIdx]
		bestFitness := fits[bestIdx]

		if bestFitness > global.Fitness {
			global = GlobalBest{Generation: gen, Vector: cloneBits(best), Fitness: bestFitness}
		}

		worstIdx := selectWorstIdx(fits)
		worst = population[worstIdx]

		avg := avgFitness(fits)
		history = append(history, GenerationStats{Generation: gen, BestFitness: bestFitness, AvgFitness: avg})
		generations = gen + 1

		if opts.Progress != nil && gen%interval == 0 {
			opts.Progress(snapshot(gen, bestFitness, avg, global, maxFitness, probVector, false, time.Since(start)))
		}

		if maxFitness > 0 && bestFitness == maxFitness {
			state = StateConverged
			break
		}
	}
	if state == StateIterating {
		state = StateExhausted
	}

	elapsed := time.Since(start)
	if opts.Progress != nil {
		last := GenerationStats{Generation: global.Generation, BestFitness: global.Fitness}
		if len(history) > 0 {
			last = history[len(history)-1]
		}
		opts.Progress(snapshot(last.Generation, last.BestFitness, last.AvgFitness, global, maxFitness, probVector, true, elapsed))
	}

	return Result{
		Best:             cloneBits(global.Vector),
		Fitness:          global.Fitness,
		MaxFitness:       maxFitness,
		GenerationFound:  global.Generation,
		TotalGenerations: generations,
		Elapsed:          elapsed,
		State:            state,
		History:          history,
	}, runErr
}

func snapshot(gen, bestFitness int, avg float64, global GlobalBest, maxFitness int, probVector []float64, done bool, elapsed time.Duration) Progress {
	pv := make([]float64, len(probVector))
	copy(pv, probVector)
	return Progress{
		Generation:  gen,
		BestFitness: bestFitness,
		AvgFitness:  avg,
		GlobalBest:  GlobalBest{Generation: global.Generation, Vector: cloneBits(global.Vector), Fitness: global.Fitness},
		MaxFitness:  maxFitness,
		ProbVector:  pv,
		Statistics:  Statistics(pv),
		Done:        done,
		Elapsed:     elapsed,
	}
}

func avgFitness(fits []int) float64 {
	if len(fits) == 0 {
		return 0
	}
	sum := 0
	for _, f := range fits {
		sum += f
	}
	return float64(sum) / float64(len(fits))
}

func cloneBits(bits []uint8) []uint8 {
	out := make([]uint8, len(bits))
	copy(out, bits)
	return out
}
