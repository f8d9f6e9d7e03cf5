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
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/evosat/services/solver/cnf"
)

func runGenerate(cmd *cobra.Command, args []string) {
	logger := config.logger()
	defer logger.Close()

	s := genSeed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s))

	problem, err := cnf.Random(rng, genVariables, genClauses, genClauseLen)
	if err != nil {
		logger.Error("cannot generate problem", "error", err)
		os.Exit(1)
	}
	if err := cnf.WriteFile(args[0], problem); err != nil {
		logger.Error("cannot write problem", "file", args[0], "error", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d variables, %d clauses of length %d (seed %d)\n",
		args[0], problem.NumVariables, problem.NumClauses, genClauseLen, s)
}
