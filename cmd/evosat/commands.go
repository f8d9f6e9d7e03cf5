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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	popSize        int
	learningRate   float64
	negativeLR     float64
	mutProb        float64
	mutShift       float64
	maxIterations  int
	seed           uint64
	workers        int
	reportInterval int
	quietProgress  bool

	genVariables int
	genClauses   int
	genClauseLen int
	genSeed      uint64

	rootCmd = &cobra.Command{
		Use:   "evosat",
		Short: "A PBIL-based MAXSAT solver",
		Long: `evosat solves weighted-free MAXSAT instances with Population
Based Incremental Learning: a probability vector over the variables is
sampled into candidate assignments and shifted toward the best one
observed each generation.`,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [file.cnf]",
		Short: "Run PBIL on a DIMACS CNF problem",
		Args:  cobra.ExactArgs(1),
		Run:   runSolve, // Defined in cmd_solve.go
	}

	verifyCmd = &cobra.Command{
		Use:   "verify [file.cnf] [bitstring]",
		Short: "Check how many clauses a 0/1 assignment satisfies",
		Args:  cobra.ExactArgs(2),
		Run:   runVerify, // Defined in cmd_verify.go
	}

	generateCmd = &cobra.Command{
		Use:   "generate [file.cnf]",
		Short: "Write a random k-SAT instance for benchmarks and demos",
		Args:  cobra.ExactArgs(1),
		Run:   runGenerate, // Defined in cmd_generate.go
	}

	infoCmd = &cobra.Command{
		Use:   "info [file.cnf]",
		Short: "Print statistics for a DIMACS CNF problem",
		Args:  cobra.ExactArgs(1),
		Run:   runInfo, // Defined in cmd_info.go
	}
)

func init() {
	solveCmd.Flags().IntVar(&popSize, "pop-size", 0, "individuals sampled per generation")
	solveCmd.Flags().Float64Var(&learningRate, "learning-rate", 0, "step size toward the generation's best individual")
	solveCmd.Flags().Float64Var(&negativeLR, "negative-learning-rate", 0, "extra step on bits where best and worst disagree")
	solveCmd.Flags().Float64Var(&mutProb, "mutation-probability", 0, "per-entry mutation chance")
	solveCmd.Flags().Float64Var(&mutShift, "mutation-shift", 0, "mutation step size")
	solveCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "generation limit")
	solveCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	solveCmd.Flags().IntVar(&workers, "workers", 0, "parallel fitness evaluation workers (0 = sequential)")
	solveCmd.Flags().IntVar(&reportInterval, "report-interval", 0, "generations between progress reports")
	solveCmd.Flags().BoolVar(&quietProgress, "quiet", false, "suppress progress reporting")

	generateCmd.Flags().IntVar(&genVariables, "variables", 20, "number of variables")
	generateCmd.Flags().IntVar(&genClauses, "clauses", 50, "number of clauses")
	generateCmd.Flags().IntVar(&genClauseLen, "clause-length", 3, "literals per clause")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "random seed (0 picks one)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(infoCmd)
}
