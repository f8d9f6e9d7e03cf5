// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pbil

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/AleutianAI/evosat/services/solver/cnf"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.PopSize = 50
	opts.MaxIterations = 500
	opts.Seed = 1
	return opts
}

func TestSolveConvergesOnSampleProblem(t *testing.T) {
	pb := sampleProblem()

	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		opts := testOptions()
		opts.Seed = seed
		result, err := Solve(context.Background(), pb, opts)
		if err != nil {
			t.Fatalf("seed %d: Solve: %v", seed, err)
		}
		if result.State != StateConverged {
			t.Errorf("seed %d: state = %s, want converged", seed, result.State)
		}
		if result.Fitness != 3 || result.MaxFitness != 3 {
			t.Errorf("seed %d: fitness = %d/%d, want 3/3", seed, result.Fitness, result.MaxFitness)
		}
		if ok, _ := pb.Verify(result.Best); !ok {
			t.Errorf("seed %d: reported solution %v does not satisfy the problem", seed, result.Best)
		}
		if result.GenerationFound >= result.TotalGenerations {
			t.Errorf("seed %d: found at %d but only %d generations ran",
				seed, result.GenerationFound, result.TotalGenerations)
		}
	}
}

func TestSolveDeterministicUnderSeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	pb, err := cnf.Random(rng, 25, 80, 3)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	opts := testOptions()
	opts.MaxIterations = 60
	a, err := Solve(context.Background(), pb, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	b, err := Solve(context.Background(), pb, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if !reflect.DeepEqual(a.Best, b.Best) {
		t.Error("same seed produced different best solutions")
	}
	if a.Fitness != b.Fitness || a.GenerationFound != b.GenerationFound {
		t.Errorf("same seed produced different outcomes: (%d, %d) vs (%d, %d)",
			a.Fitness, a.GenerationFound, b.Fitness, b.GenerationFound)
	}
}

func TestSolveGlobalBestMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 12))
	pb, err := cnf.Random(rng, 30, 120, 3)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	opts := testOptions()
	opts.MaxIterations = 80
	opts.ReportInterval = 1
	prev := -1
	opts.Progress = func(p Progress) {
		if p.GlobalBest.Fitness < prev {
			t.Errorf("global best dropped from %d to %d at generation %d",
				prev, p.GlobalBest.Fitness, p.Generation)
		}
		prev = p.GlobalBest.Fitness
	}

	if _, err := Solve(context.Background(), pb, opts); err != nil {
		t.Fatalf("Solve: %v", err)
	}
}

// A zero-clause problem satisfies nothing and signals nothing; the loop
// must run to exhaustion rather than declare instant convergence.
func TestSolveZeroClausesRunsToExhaustion(t *testing.T) {
	pb := cnf.New(3, nil)
	opts := testOptions()
	opts.MaxIterations = 10

	result, err := Solve(context.Background(), pb, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.State != StateExhausted {
		t.Errorf("state = %s, want exhausted", result.State)
	}
	if result.TotalGenerations != 10 {
		t.Errorf("TotalGenerations = %d, want 10", result.TotalGenerations)
	}
	if result.Fitness != 0 || result.MaxFitness != 0 {
		t.Errorf("fitness = %d/%d, want 0/0", result.Fitness, result.MaxFitness)
	}
}

func TestSolveProbabilityVectorStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 13))
	pb, err := cnf.Random(rng, 20, 60, 3)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	opts := testOptions()
	opts.MaxIterations = 50
	opts.MutationProbability = 0.5
	opts.MutationShift = 0.3
	opts.ReportInterval = 1
	opts.Progress = func(p Progress) {
		for i, v := range p.ProbVector {
			if v < 0 || v > 1 {
				t.Errorf("generation %d: probability[%d] = %v outside [0,1]", p.Generation, i, v)
			}
		}
	}

	if _, err := Solve(context.Background(), pb, opts); err != nil {
		t.Fatalf("Solve: %v", err)
	}
}

func TestSolveValidatesOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero pop size", func(o *Options) { o.PopSize = 0 }},
		{"negative pop size", func(o *Options) { o.PopSize = -5 }},
		{"learning rate above one", func(o *Options) { o.LearningRate = 1.5 }},
		{"negative learning rate", func(o *Options) { o.LearningRate = -0.1 }},
		{"negative lr above one", func(o *Options) { o.NegativeLearningRate = 2 }},
		{"mutation probability above one", func(o *Options) { o.MutationProbability = 1.01 }},
		{"mutation shift below zero", func(o *Options) { o.MutationShift = -0.5 }},
		{"zero max iterations", func(o *Options) { o.MaxIterations = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(&opts)
			_, err := Solve(context.Background(), sampleProblem(), opts)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := testOptions()
	result, err := Solve(ctx, sampleProblem(), opts)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if result.State != StateCancelled {
		t.Errorf("state = %s, want cancelled", result.State)
	}
	if result.TotalGenerations != 0 {
		t.Errorf("TotalGenerations = %d, want 0", result.TotalGenerations)
	}
	// The global best is still seeded from the zero individual, which
	// satisfies every clause with a negated first literal.
	if result.Fitness != Fitness(make([]uint8, 3), sampleProblem()) {
		t.Errorf("fitness = %d, want zero-individual fitness", result.Fitness)
	}
}

func TestSolveParallelEvaluationMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(14, 14))
	pb, err := cnf.Random(rng, 25, 90, 3)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	opts := testOptions()
	opts.MaxIterations = 40
	sequential, err := Solve(context.Background(), pb, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	opts.Workers = 4
	parallel, err := Solve(context.Background(), pb, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if !reflect.DeepEqual(sequential.Best, parallel.Best) ||
		sequential.Fitness != parallel.Fitness ||
		sequential.GenerationFound != parallel.GenerationFound {
		t.Error("parallel evaluation changed the outcome")
	}
}

func TestSolveProgressReporting(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 15))
	pb, err := cnf.Random(rng, 20, 70, 3)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	opts := testOptions()
	opts.MaxIterations = 25
	opts.ReportInterval = 10
	var generations []int
	var final *Progress
	opts.Progress = func(p Progress) {
		if p.Done {
			final = &p
			return
		}
		generations = append(generations, p.Generation)
		if len(p.ProbVector) != pb.NumVariables {
			t.Errorf("progress vector length %d, want %d", len(p.ProbVector), pb.NumVariables)
		}
	}

	result, err := Solve(context.Background(), pb, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	for _, g := range generations {
		if g%10 != 0 {
			t.Errorf("progress reported at generation %d, want multiples of 10", g)
		}
	}
	if final == nil {
		t.Fatal("no completion report")
	}
	if !final.Done {
		t.Error("final report not marked done")
	}
	if final.GlobalBest.Fitness != result.Fitness {
		t.Errorf("final report fitness %d, result fitness %d", final.GlobalBest.Fitness, result.Fitness)
	}
}

func TestSolveHistoryCoversEveryGeneration(t *testing.T) {
	pb := sampleProblem()
	opts := testOptions()
	result, err := Solve(context.Background(), pb, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(result.History) != result.TotalGenerations {
		t.Errorf("history length %d, want %d", len(result.History), result.TotalGenerations)
	}
	for i, h := range result.History {
		if h.Generation != i {
			t.Errorf("history[%d].Generation = %d", i, h.Generation)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateInit, "init"},
		{StateIterating, "iterating"},
		{StateConverged, "converged"},
		{StateExhausted, "exhausted"},
		{StateCancelled, "cancelled"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
