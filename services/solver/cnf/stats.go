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

import "gonum.org/v1/gonum/stat"

// Stats summarizes the shape of a problem, mainly for the "info" CLI
// command and the problems API.
type Stats struct {
	Variables       int     `json:"variables"`
	Clauses         int     `json:"clauses"`
	TotalLiterals   int     `json:"total_literals"`
	MinClauseLength int     `json:"min_clause_length"`
	MaxClauseLength int     `json:"max_clause_length"`
	AvgClauseLength float64 `json:"avg_clause_length"`
}

// Statistics computes clause-length statistics for the problem.
func (p *Problem) Statistics() Stats {
	s := Stats{Variables: p.NumVariables, Clauses: p.NumClauses}
	if len(p.Clauses) == 0 {
		return s
	}
	lengths := make([]float64, len(p.Clauses))
	s.MinClauseLength = len(p.Clauses[0])
	for i, clause := range p.Clauses {
		n := len(clause)
		lengths[i] = float64(n)
		s.TotalLiterals += n
		if n < s.MinClauseLength {
			s.MinClauseLength = n
		}
		if n > s.MaxClauseLength {
			s.MaxClauseLength = n
		}
	}
	s.AvgClauseLength = stat.Mean(lengths, nil)
	return s
}
