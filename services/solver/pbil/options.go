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

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Options configures a PBIL run. The zero value is not usable; start
// from DefaultOptions and override what you need.
type Options struct {
	// PopSize is the number of individuals sampled per generation.
	PopSize int `validate:"gt=0"`

	// LearningRate is the step size toward the generation's best
	// individual.
	LearningRate float64 `validate:"gte=0,lte=1"`

	// NegativeLearningRate is the extra step applied on positions where
	// the best and worst individuals disagree.
	NegativeLearningRate float64 `validate:"gte=0,lte=1"`

	// MutationProbability is the per-entry chance of perturbing the
	// probability vector each generation.
	MutationProbability float64 `validate:"gte=0,lte=1"`

	// MutationShift is the magnitude of a mutation perturbation.
	MutationShift float64 `validate:"gte=0,lte=1"`

	// MaxIterations bounds the number of generations.
	MaxIterations int `validate:"gt=0"`

	// Seed seeds the run's random source. Runs with the same seed,
	// options and problem are bit-for-bit reproducible. Ignored when
	// Source is set; a zero seed with no Source picks a random seed.
	Seed uint64

	// Source overrides the random source entirely. Mostly for tests.
	Source rand.Source

	// Workers enables order-preserving parallel fitness evaluation
	// within a generation. 0 or 1 keeps evaluation sequential.
	Workers int `validate:"gte=0"`

	// ReportInterval is how often, in generations, Progress is invoked.
	// 0 means the default of every 100 generations.
	ReportInterval int `validate:"gte=0"`

	// Progress, when non-nil, receives typed progress snapshots every
	// ReportInterval generations and once at completion.
	Progress ProgressFunc
}

// DefaultOptions are the reference parameters the solver ships with.
func DefaultOptions() Options {
	return Options{
		PopSize:              100,
		LearningRate:         0.1,
		NegativeLearningRate: 0.075,
		MutationProbability:  0.02,
		MutationShift:        0.05,
		MaxIterations:        1000,
		ReportInterval:       100,
	}
}

// ValidationError reports out-of-range options. It is returned by
// Solve before any generation runs.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pbil: invalid options: %v", e.err)
}

func (e *ValidationError) Unwrap() error { return e.err }

// Validate checks every option against its allowed range.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return &ValidationError{err: err}
	}
	return nil
}
