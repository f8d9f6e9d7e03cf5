// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cnf

import (
	"fmt"
	"math/rand/v2"
)

// Random generates a random k-SAT instance: numClauses clauses of
// clauseLen distinct variables each, every literal negated with
// probability 0.5. Useful for benchmarks and demos; there is no
// guarantee the instance is satisfiable.
func Random(rng *rand.Rand, numVariables, numClauses, clauseLen int) (*Problem, error) {
	if numVariables <= 0 || numClauses < 0 {
		return nil, fmt.Errorf("cnf: invalid instance size %d vars / %d clauses", numVariables, numClauses)
	}
	if clauseLen <= 0 || clauseLen > numVariables {
		return nil, fmt.Errorf("cnf: clause length %d out of range [1, %d]", clauseLen, numVariables)
	}

	clauses := make([]Clause, 0, numClauses)
	for i := 0; i < numClauses; i++ {
		clause := make(Clause, 0, clauseLen)
		for _, v := range rng.Perm(numVariables)[:clauseLen] {
			lit := Literal(v + 1)
			if rng.Float64() < 0.5 {
				lit = -lit
			}
			clause = append(clause, lit)
		}
		clauses = append(clauses, clause)
	}
	return New(numVariables, clauses), nil
}
