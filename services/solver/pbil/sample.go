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

import "math/rand/v2"

// Sample draws a population of popSize individuals from the probability
// vector: bit i of each individual is an independent
// Bernoulli(probVector[i]) draw. Every individual gets its own backing
// array, so later generations can never alias a previous population.
func Sample(rng *rand.Rand, probVector []float64, popSize int) [][]uint8 {
	population := make([][]uint8, popSize)
	for i := range population {
		individual := make([]uint8, len(probVector))
		for j, p := range probVector {
			if rng.Float64() < p {
				individual[j] = 1
			}
		}
		population[i] = individual
	}
	return population
}
