// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/AleutianAI/evosat/pkg/logging"
	"github.com/AleutianAI/evosat/services/solver/pbil"
)

// Config mirrors evosat.yaml. Every field is optional; zero values
// keep the built-in defaults.
type Config struct {
	Solver struct {
		PopSize              int     `yaml:"pop_size"`
		LearningRate         float64 `yaml:"learning_rate"`
		NegativeLearningRate float64 `yaml:"negative_learning_rate"`
		MutationProbability  float64 `yaml:"mutation_probability"`
		MutationShift        float64 `yaml:"mutation_shift"`
		MaxIterations        int     `yaml:"max_iterations"`
		Workers              int     `yaml:"workers"`
		ReportInterval       int     `yaml:"report_interval"`
	} `yaml:"solver"`
	Logging struct {
		Level string `yaml:"level"` // debug, info, warn, error
		Dir   string `yaml:"dir"`
		JSON  bool   `yaml:"json"`
	} `yaml:"logging"`
}

// options builds solver options layered default < config file. Flag
// overrides are applied on top by the individual commands.
func (c Config) options() pbil.Options {
	opts := pbil.DefaultOptions()
	if c.Solver.PopSize > 0 {
		opts.PopSize = c.Solver.PopSize
	}
	if c.Solver.LearningRate > 0 {
		opts.LearningRate = c.Solver.LearningRate
	}
	if c.Solver.NegativeLearningRate > 0 {
		opts.NegativeLearningRate = c.Solver.NegativeLearningRate
	}
	if c.Solver.MutationProbability > 0 {
		opts.MutationProbability = c.Solver.MutationProbability
	}
	if c.Solver.MutationShift > 0 {
		opts.MutationShift = c.Solver.MutationShift
	}
	if c.Solver.MaxIterations > 0 {
		opts.MaxIterations = c.Solver.MaxIterations
	}
	if c.Solver.Workers > 0 {
		opts.Workers = c.Solver.Workers
	}
	if c.Solver.ReportInterval > 0 {
		opts.ReportInterval = c.Solver.ReportInterval
	}
	return opts
}

// logger builds the CLI logger from config.
func (c Config) logger() *logging.Logger {
	level := logging.LevelInfo
	switch c.Logging.Level {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	return logging.New(logging.Config{
		Level:   level,
		LogDir:  c.Logging.Dir,
		Service: "cli",
		JSON:    c.Logging.JSON,
	})
}
