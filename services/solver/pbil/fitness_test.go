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
	"math/rand/v2"
	"testing"

	"github.com/AleutianAI/evosat/services/solver/cnf"
)

// sampleProblem is (x1 v -x2 v x3) ^ (-x1 v x2 v -x3) ^ (x1 v x2 v x3).
func sampleProblem() *cnf.Problem {
	return cnf.New(3, []cnf.Clause{{1, -2, 3}, {-1, 2, -3}, {1, 2, 3}})
}

func TestFitness(t *testing.T) {
	pb := sampleProblem()
	tests := []struct {
		name       string
		individual []uint8
		want       int
	}{
		// All-true satisfies clauses 1 and 3 but not clause 2.
		{"all true", []uint8{1, 1, 1}, 2},
		{"all false", []uint8{0, 0, 0}, 2},
		{"full solution", []uint8{1, 1, 0}, 3},
		{"one satisfied", []uint8{0, 1, 0}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fitness(tt.individual, pb); got != tt.want {
				t.Errorf("Fitness(%v) = %d, want %d", tt.individual, got, tt.want)
			}
		})
	}
}

func TestFitnessBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	pb, err := cnf.Random(rng, 15, 40, 3)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	for i := 0; i < 200; i++ {
		individual := make([]uint8, pb.NumVariables)
		for j := range individual {
			individual[j] = uint8(rng.IntN(2))
		}
		f := Fitness(individual, pb)
		if f < 0 || f > pb.NumClauses {
			t.Fatalf("Fitness = %d outside [0, %d]", f, pb.NumClauses)
		}
	}
}

func TestFitnessZeroClauses(t *testing.T) {
	pb := cnf.New(4, nil)
	if got := Fitness([]uint8{0, 1, 0, 1}, pb); got != 0 {
		t.Errorf("Fitness on zero-clause problem = %d, want 0", got)
	}
}

func TestFitnessPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched individual length")
		}
	}()
	Fitness([]uint8{1}, sampleProblem())
}
