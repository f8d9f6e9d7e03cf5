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
	"testing"
)

func TestStatisticsUndecidedVector(t *testing.T) {
	stats := Statistics([]float64{0.5, 0.5, 0.5, 0.5})
	if math.Abs(stats.Entropy-1.0) > 1e-9 {
		t.Errorf("entropy of undecided vector = %v, want 1.0", stats.Entropy)
	}
	if math.Abs(stats.Mean-0.5) > 1e-9 {
		t.Errorf("mean = %v, want 0.5", stats.Mean)
	}
}

func TestStatisticsConvergedVector(t *testing.T) {
	stats := Statistics([]float64{0, 1, 0, 1})
	if stats.Entropy > 1e-6 {
		t.Errorf("entropy of converged vector = %v, want ~0", stats.Entropy)
	}
	if math.Abs(stats.Mean-0.5) > 1e-9 {
		t.Errorf("mean = %v, want 0.5", stats.Mean)
	}
}

func TestStatisticsEmptyVector(t *testing.T) {
	stats := Statistics(nil)
	if stats.Entropy != 0 || stats.Mean != 0 || stats.StdDev != 0 {
		t.Errorf("stats of empty vector = %+v, want zeros", stats)
	}
}

func TestSolutionString(t *testing.T) {
	if got := SolutionString([]uint8{1, 0, 1, 1, 0}); got != "10110" {
		t.Errorf("SolutionString = %q, want \"10110\"", got)
	}
	if got := SolutionString(nil); got != "" {
		t.Errorf("SolutionString(nil) = %q, want empty", got)
	}
}
