// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package cnf represents MAXSAT problems in conjunctive normal form and
// reads and writes them in the DIMACS CNF format.
//
// A Problem is immutable once constructed: the solver only ever reads
// clauses, so a single Problem can be shared by concurrent solves.
package cnf

import "fmt"

// Literal is a signed reference to a variable. The absolute value is a
// 1-based variable index; a negative literal is satisfied when the
// variable is assigned 0, a positive one when it is assigned 1.
// A Literal is never zero.
type Literal int

// Var returns the 1-based variable index the literal refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether the literal requires the variable to be true.
func (l Literal) IsPositive() bool { return l > 0 }

// Satisfied reports whether the literal holds under the given assignment.
// The assignment is indexed 0-based, so variable i lives at assignment[i-1].
func (l Literal) Satisfied(assignment []uint8) bool {
	bit := assignment[l.Var()-1]
	if l > 0 {
		return bit == 1
	}
	return bit == 0
}

// Clause is a disjunction of literals. Order is irrelevant for
// satisfaction but preserved for round-tripping through DIMACS.
type Clause []Literal

// Satisfied reports whether at least one literal of the clause holds
// under the given assignment.
func (c Clause) Satisfied(assignment []uint8) bool {
	for _, lit := range c {
		if lit.Satisfied(assignment) {
			return true
		}
	}
	return false
}

// Problem is an immutable MAXSAT instance: a conjunction of clauses
// over NumVariables boolean variables.
//
// Invariants, established at construction time:
//   - every literal's variable index is in [1, NumVariables]
//   - NumClauses == len(Clauses)
type Problem struct {
	NumVariables int
	NumClauses   int
	Clauses      []Clause
}

// New builds a Problem from raw clause data. Variable indexes larger
// than numVariables are not an error: numVariables grows to cover them,
// matching the leniency of the DIMACS parser. A zero literal is a
// programming error and panics.
func New(numVariables int, clauses []Clause) *Problem {
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit == 0 {
				panic("cnf: zero literal in clause")
			}
			if v := lit.Var(); v > numVariables {
				numVariables = v
			}
		}
	}
	return &Problem{
		NumVariables: numVariables,
		NumClauses:   len(clauses),
		Clauses:      clauses,
	}
}

// Verify checks an assignment against every clause and returns whether
// the problem is fully satisfied, together with the 0-based indexes of
// the unsatisfied clauses.
func (p *Problem) Verify(assignment []uint8) (bool, []int) {
	if len(assignment) != p.NumVariables {
		panic(fmt.Sprintf("cnf: assignment length %d, want %d", len(assignment), p.NumVariables))
	}
	var unsatisfied []int
	for i, clause := range p.Clauses {
		if !clause.Satisfied(assignment) {
			unsatisfied = append(unsatisfied, i)
		}
	}
	return len(unsatisfied) == 0, unsatisfied
}
