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

import "testing"

func TestLiteralSatisfied(t *testing.T) {
	tests := []struct {
		name       string
		lit        Literal
		assignment []uint8
		want       bool
	}{
		{"positive true", 1, []uint8{1}, true},
		{"positive false", 1, []uint8{0}, false},
		{"negative on zero", -1, []uint8{0}, true},
		{"negative on one", -1, []uint8{1}, false},
		{"second variable", 2, []uint8{0, 1}, true},
		{"negated second variable", -2, []uint8{0, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.Satisfied(tt.assignment); got != tt.want {
				t.Errorf("Literal(%d).Satisfied(%v) = %v, want %v", tt.lit, tt.assignment, got, tt.want)
			}
		})
	}
}

func TestClauseSatisfied(t *testing.T) {
	clause := Clause{1, -2, 3}
	tests := []struct {
		name       string
		assignment []uint8
		want       bool
	}{
		{"first literal", []uint8{1, 1, 0}, true},
		{"second literal", []uint8{0, 0, 0}, true},
		{"third literal", []uint8{0, 1, 1}, true},
		{"none", []uint8{0, 1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clause.Satisfied(tt.assignment); got != tt.want {
				t.Errorf("Satisfied(%v) = %v, want %v", tt.assignment, got, tt.want)
			}
		})
	}
}

func TestNewGrowsVariableCount(t *testing.T) {
	pb := New(2, []Clause{{1, -5}})
	if pb.NumVariables != 5 {
		t.Errorf("NumVariables = %d, want 5", pb.NumVariables)
	}
	if pb.NumClauses != 1 {
		t.Errorf("NumClauses = %d, want 1", pb.NumClauses)
	}
}

func TestNewPanicsOnZeroLiteral(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero literal")
		}
	}()
	New(2, []Clause{{1, 0}})
}

func TestVerify(t *testing.T) {
	// (x1 v -x2 v x3) ^ (-x1 v x2 v -x3) ^ (x1 v x2 v x3)
	pb := New(3, []Clause{{1, -2, 3}, {-1, 2, -3}, {1, 2, 3}})

	ok, unsat := pb.Verify([]uint8{1, 1, 1})
	if ok {
		t.Error("all-true assignment should not satisfy clause 2")
	}
	if len(unsat) != 1 || unsat[0] != 1 {
		t.Errorf("unsatisfied = %v, want [1]", unsat)
	}

	ok, unsat = pb.Verify([]uint8{1, 1, 0})
	if !ok || len(unsat) != 0 {
		t.Errorf("Verify([1,1,0]) = %v, %v, want full satisfaction", ok, unsat)
	}
}

func TestVerifyPanicsOnLengthMismatch(t *testing.T) {
	pb := New(3, []Clause{{1, 2, 3}})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on short assignment")
		}
	}()
	pb.Verify([]uint8{1})
}

func TestStatistics(t *testing.T) {
	pb := New(4, []Clause{{1, -2}, {3, 4, -1}, {2}})
	stats := pb.Statistics()

	if stats.Variables != 4 || stats.Clauses != 3 {
		t.Errorf("got %d vars / %d clauses, want 4/3", stats.Variables, stats.Clauses)
	}
	if stats.TotalLiterals != 6 {
		t.Errorf("TotalLiterals = %d, want 6", stats.TotalLiterals)
	}
	if stats.MinClauseLength != 1 || stats.MaxClauseLength != 3 {
		t.Errorf("clause length range = %d-%d, want 1-3", stats.MinClauseLength, stats.MaxClauseLength)
	}
	if stats.AvgClauseLength != 2.0 {
		t.Errorf("AvgClauseLength = %f, want 2.0", stats.AvgClauseLength)
	}
}

func TestStatisticsEmptyProblem(t *testing.T) {
	pb := New(3, nil)
	stats := pb.Statistics()
	if stats.Clauses != 0 || stats.AvgClauseLength != 0 {
		t.Errorf("unexpected stats for empty problem: %+v", stats)
	}
}
