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
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// VectorStatistics describes how converged a probability vector is.
// Entropy is the mean per-variable Bernoulli entropy in bits: 1.0 for
// a fully undecided vector (all 0.5), approaching 0 as the model
// commits to an assignment.
type VectorStatistics struct {
	Entropy float64 `json:"entropy"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
}

// Statistics computes entropy, mean and standard deviation of a
// probability vector.
func Statistics(probVector []float64) VectorStatistics {
	if len(probVector) == 0 {
		return VectorStatistics{}
	}
	const eps = 1e-10
	var entropy float64
	for _, p := range probVector {
		p = math.Min(math.Max(p, eps), 1-eps)
		entropy -= p*math.Log2(p) + (1-p)*math.Log2(1-p)
	}
	return VectorStatistics{
		Entropy: entropy / float64(len(probVector)),
		Mean:    stat.Mean(probVector, nil),
		StdDev:  stat.StdDev(probVector, nil),
	}
}

// SolutionString renders a bit vector as a compact 0/1 string.
func SolutionString(individual []uint8) string {
	var b strings.Builder
	b.Grow(len(individual))
	for _, bit := range individual {
		if bit == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}
