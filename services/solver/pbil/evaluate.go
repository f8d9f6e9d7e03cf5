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
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/evosat/services/solver/cnf"
)

// evaluatePopulation scores every individual. With workers > 1 the
// evaluations run concurrently, but each goroutine writes only its own
// slot, so the returned slice is always in population order and
// selection tie-breaking stays deterministic.
func evaluatePopulation(population [][]uint8, problem *cnf.Problem, workers int) []int {
	fits := make([]int, len(population))
	if workers <= 1 {
		for i, individual := range population {
			fits[i] = Fitness(individual, problem)
		}
		return fits
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, individual := range population {
		g.Go(func() error {
			fits[i] = Fitness(individual, problem)
			return nil
		})
	}
	// The workers never return errors; Wait only synchronizes.
	_ = g.Wait()
	return fits
}
