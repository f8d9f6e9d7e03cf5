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

import "github.com/AleutianAI/evosat/services/solver/cnf"

// SelectBest returns the individual with the highest fitness and that
// fitness. Ties go to the first individual in population order, which
// keeps selection deterministic under a fixed seed.
func SelectBest(population [][]uint8, problem *cnf.Problem) ([]uint8, int) {
	fits := evaluatePopulation(population, problem, 1)
	idx := selectBestIdx(fits, problem.NumClauses)
	return population[idx], fits[idx]
}

// SelectWorst returns the individual with the lowest fitness and that
// fitness, with the same first-encountered tie-break as SelectBest.
// maxFitness is accepted only as a sanity bound on the fitness values;
// it never influences which individual is picked.
func SelectWorst(population [][]uint8, problem *cnf.Problem, maxFitness int) ([]uint8, int) {
	fits := evaluatePopulation(population, problem, 1)
	idx := selectWorstIdx(fits)
	return population[idx], fits[idx]
}

// selectBestIdx scans precomputed fitness values for the strict
// maximum. maxFitness lets the scan stop early once an individual
// satisfies every clause; a later individual with equal fitness would
// lose the tie-break anyway, so the short-circuit cannot change the
// winner.
func selectBestIdx(fits []int, maxFitness int) int {
	best := 0
	for i, f := range fits {
		if f > fits[best] {
			best = i
		}
		if f == maxFitness && maxFitness > 0 {
			return best
		}
	}
	return best
}

// selectWorstIdx is the mirror scan for the strict minimum. Fitness
// cannot drop below zero, so zero short-circuits.
func selectWorstIdx(fits []int) int {
	worst := 0
	for i, f := range fits {
		if f < fits[worst] {
			worst = i
		}
		if f == 0 {
			return worst
		}
	}
	return worst
}
