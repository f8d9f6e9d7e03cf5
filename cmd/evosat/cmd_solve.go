// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/evosat/services/solver/cnf"
	"github.com/AleutianAI/evosat/services/solver/pbil"
)

func runSolve(cmd *cobra.Command, args []string) {
	logger := config.logger()
	defer logger.Close()

	problem, diagnostics, err := cnf.ParseFile(args[0])
	if err != nil {
		logger.Error("cannot load problem", "file", args[0], "error", err)
		os.Exit(1)
	}
	for _, d := range diagnostics {
		logger.Warn("parse diagnostic", "file", args[0], "diagnostic", d)
	}

	opts := config.options()
	flags := cmd.Flags()
	if flags.Changed("pop-size") {
		opts.PopSize = popSize
	}
	if flags.Changed("learning-rate") {
		opts.LearningRate = learningRate
	}
	if flags.Changed("negative-learning-rate") {
		opts.NegativeLearningRate = negativeLR
	}
	if flags.Changed("mutation-probability") {
		opts.MutationProbability = mutProb
	}
	if flags.Changed("mutation-shift") {
		opts.MutationShift = mutShift
	}
	if flags.Changed("max-iterations") {
		opts.MaxIterations = maxIterations
	}
	if flags.Changed("workers") {
		opts.Workers = workers
	}
	if flags.Changed("report-interval") {
		opts.ReportInterval = reportInterval
	}
	opts.Seed = seed
	if !quietProgress {
		opts.Progress = func(p pbil.Progress) {
			if p.Done {
				return
			}
			logger.Info("generation",
				"generation", p.Generation,
				"best", p.BestFitness,
				"global_best", p.GlobalBest.Fitness,
				"max", p.MaxFitness,
				"avg", fmt.Sprintf("%.2f", p.AvgFitness),
				"entropy", fmt.Sprintf("%.3f", p.Statistics.Entropy))
		}
	}

	logger.Info("solving",
		"file", args[0],
		"variables", problem.NumVariables,
		"clauses", problem.NumClauses,
		"pop_size", opts.PopSize,
		"max_iterations", opts.MaxIterations)

	// Ctrl-C stops the run at the next generation boundary and still
	// reports the best solution found so far.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := pbil.Solve(ctx, problem, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("solve failed", "error", err)
		os.Exit(1)
	}

	ratio := 0.0
	if result.MaxFitness > 0 {
		ratio = float64(result.Fitness) / float64(result.MaxFitness)
	}
	fmt.Printf("State:       %s\n", result.State)
	fmt.Printf("Solution:    %s\n", pbil.SolutionString(result.Best))
	fmt.Printf("Fitness:     %d/%d clauses (%.1f%%)\n", result.Fitness, result.MaxFitness, ratio*100)
	fmt.Printf("Found at:    generation %d of %d\n", result.GenerationFound, result.TotalGenerations)
	fmt.Printf("Elapsed:     %s\n", result.Elapsed)

	ok, unsatisfied := problem.Verify(result.Best)
	if ok {
		fmt.Println("Solution satisfies all clauses.")
	} else {
		fmt.Printf("Solution leaves %d clauses unsatisfied: %v\n", len(unsatisfied), unsatisfied)
	}
}
