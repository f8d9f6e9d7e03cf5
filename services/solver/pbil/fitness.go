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
	"fmt"

	"github.com/AleutianAI/evosat/services/solver/cnf"
)

// Fitness counts the clauses of the problem satisfied by the given
// assignment. The result is in [0, problem.NumClauses]. It is a pure
// function and safe for concurrent use; the solver also uses it for
// final solution verification.
//
// An assignment of the wrong length is a contract violation and panics.
func Fitness(individual []uint8, problem *cnf.Problem) int {
	if len(individual) != problem.NumVariables {
		panic(fmt.Sprintf("pbil: individual length %d, want %d variables", len(individual), problem.NumVariables))
	}
	satisfied := 0
	for _, clause := range problem.Clauses {
		if clause.Satisfied(individual) {
			satisfied++
		}
	}
	return satisfied
}
