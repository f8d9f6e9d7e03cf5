// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package problems manages the solver service's directory of CNF
// problem files: listing, upload, and cached parsing.
package problems

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	gocache "github.com/patrickmn/go-cache"

	"github.com/AleutianAI/evosat/pkg/logging"
	"github.com/AleutianAI/evosat/pkg/validation"
	"github.com/AleutianAI/evosat/services/solver/cnf"
)

// parsed is a cache entry: a parsed problem plus the parser
// diagnostics from when it was read.
type parsed struct {
	problem     *cnf.Problem
	diagnostics []string
}

// Store serves CNF problems from a directory. Parsed problems are
// cached; an fsnotify watcher drops a cache entry when its file
// changes on disk, so external edits are picked up without a restart.
type Store struct {
	dir     string
	cache   *gocache.Cache
	watcher *fsnotify.Watcher
	logger  *logging.Logger
}

// NewStore opens a store over dir, creating it if needed. The watcher
// is best-effort: if the platform refuses one, the store still works
// with TTL-based cache expiry alone.
func NewStore(dir string, logger *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("problems: cannot create %s: %w", dir, err)
	}
	s := &Store{
		dir:    dir,
		cache:  gocache.New(10*time.Minute, 30*time.Minute),
		logger: logger,
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("problems watcher unavailable, relying on cache TTL", "error", err)
		return s, nil
	}
	if err := watcher.Add(dir); err != nil {
		logger.Warn("cannot watch problems directory", "dir", dir, "error", err)
		watcher.Close()
		return s, nil
	}
	s.watcher = watcher
	go s.watch()
	return s, nil
}

func (s *Store) watch() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				name := filepath.Base(event.Name)
				s.cache.Delete(name)
				s.logger.Debug("problem cache invalidated", "name", name, "op", event.Op.String())
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("problems watcher error", "error", err)
		}
	}
}

// List returns the names of the stored problems, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("problems: cannot list %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".cnf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Get parses the named problem, serving repeated reads from cache.
// The name is validated against path traversal before touching disk.
func (s *Store) Get(name string) (*cnf.Problem, []string, error) {
	if err := validation.ValidateProblemName(name); err != nil {
		return nil, nil, err
	}
	if cached, ok := s.cache.Get(name); ok {
		entry := cached.(parsed)
		return entry.problem, entry.diagnostics, nil
	}
	problem, diagnostics, err := cnf.ParseFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, nil, err
	}
	for _, d := range diagnostics {
		s.logger.Warn("problem parse diagnostic", "name", name, "diagnostic", d)
	}
	s.cache.Set(name, parsed{problem: problem, diagnostics: diagnostics}, gocache.DefaultExpiration)
	return problem, diagnostics, nil
}

// Put stores DIMACS source under the given name, replacing any
// existing file, and returns the parsed problem. The source is parsed
// before anything touches disk, so an invalid upload never lands.
func (s *Store) Put(name, source string) (*cnf.Problem, []string, error) {
	if err := validation.ValidateProblemName(name); err != nil {
		return nil, nil, err
	}
	problem, diagnostics, err := cnf.Parse(strings.NewReader(source))
	if err != nil {
		return nil, nil, err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(source), 0o640); err != nil {
		return nil, nil, fmt.Errorf("problems: cannot write %s: %w", name, err)
	}
	s.cache.Set(name, parsed{problem: problem, diagnostics: diagnostics}, gocache.DefaultExpiration)
	return problem, diagnostics, nil
}

// Close stops the directory watcher.
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
