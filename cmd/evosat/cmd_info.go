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

	"github.com/AleutianAI/evosat/services/solver/cnf"
)

func runInfo(cmd *cobra.Command, args []string) {
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

	stats := problem.Statistics()
	fmt.Printf("Variables:          %d\n", stats.Variables)
	fmt.Printf("Clauses:            %d\n", stats.Clauses)
	fmt.Printf("Total literals:     %d\n", stats.TotalLiterals)
	fmt.Printf("Clause length:      %d-%d (avg %.2f)\n",
		stats.MinClauseLength, stats.MaxClauseLength, stats.AvgClauseLength)

	show := len(problem.Clauses)
	if show > 3 {
		show = 3
	}
	for i := 0; i < show; i++ {
		fmt.Printf("  C%d: %v\n", i+1, problem.Clauses[i])
	}
	if len(problem.Clauses) > show {
		fmt.Printf("  ... and %d more clauses\n", len(problem.Clauses)-show)
	}
}
