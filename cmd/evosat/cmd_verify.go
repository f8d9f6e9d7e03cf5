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
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/evosat/pkg/validation"
	"github.com/AleutianAI/evosat/services/solver/cnf"
	"github.com/AleutianAI/evosat/services/solver/pbil"
)

func runVerify(cmd *cobra.Command, args []string) {
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

	bits, err := validation.ParseBitString(args[1])
	if err != nil {
		logger.Error("invalid solution", "error", err)
		os.Exit(1)
	}
	if len(bits) != problem.NumVariables {
		logger.Error("solution length mismatch",
			"got", len(bits), "want", problem.NumVariables)
		os.Exit(1)
	}

	fitness := pbil.Fitness(bits, problem)
	fmt.Printf("Fitness: %d/%d clauses satisfied\n", fitness, problem.NumClauses)
	ok, unsatisfied := problem.Verify(bits)
	if ok {
		fmt.Println("Assignment satisfies all clauses.")
	} else {
		fmt.Printf("Unsatisfied clauses (0-based): %v\n", unsatisfied)
	}
}
