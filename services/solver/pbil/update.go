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
	"math/rand/v2"
)

// Update shifts the probability vector toward the best individual at
// rate lr. On positions where best and worst disagree, a second shift
// at negativeLR reinforces the best individual's bit; positions where
// the two agree carry no extra signal and are left to the first shift
// alone.
//
// The result is a freshly allocated vector. The input is never written,
// so the caller's copy stays valid across the call; the loop controller
// owns exactly one live vector at a time.
func Update(probVector []float64, best, worst []uint8, lr, negativeLR float64) []float64 {
	if len(best) != len(probVector) || len(worst) != len(probVector) {
		panic(fmt.Sprintf("pbil: update with lengths pv=%d best=%d worst=%d", len(probVector), len(best), len(worst)))
	}
	out := make([]float64, len(probVector))
	for i, p := range probVector {
		b := float64(best[i])
		p = p*(1-lr) + b*lr
		if best[i] != worst[i] {
			p = p*(1-negativeLR) + b*negativeLR
		}
		out[i] = p
	}
	return out
}

// Mutate perturbs each entry independently with probability mutProb:
// a random direction d in {0,1} is drawn and the entry moves toward it
// by mutShift. Unselected entries pass through unchanged. The result is
// a new vector; clamping to [0,1] is the caller's explicit next step,
// not hidden here.
func Mutate(rng *rand.Rand, probVector []float64, mutProb, mutShift float64) []float64 {
	out := make([]float64, len(probVector))
	copy(out, probVector)
	for i := range out {
		if rng.Float64() < mutProb {
			d := float64(rng.IntN(2))
			out[i] = out[i]*(1-mutShift) + d*mutShift
		}
	}
	return out
}

// Clamp constrains every entry to [0.0, 1.0], returning a new vector.
func Clamp(probVector []float64) []float64 {
	out := make([]float64, len(probVector))
	for i, p := range probVector {
		switch {
		case p < 0:
			out[i] = 0
		case p > 1:
			out[i] = 1
		default:
			out[i] = p
		}
	}
	return out
}
