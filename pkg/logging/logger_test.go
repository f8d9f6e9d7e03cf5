// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	logger := Default()
	if logger == nil || logger.Slog() == nil {
		t.Fatal("Default returned an unusable logger")
	}
	// Must not panic.
	logger.Info("test message", "key", "value")
	if err := logger.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestFileLogging(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:   LevelDebug,
		LogDir:  dir,
		Service: "test",
		Quiet:   true,
	})
	logger.Info("file entry", "run", 1)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	name := filepath.Join(dir, "test_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "file entry") {
		t.Errorf("log file missing message: %q", content)
	}
	if !strings.Contains(content, `"service":"test"`) {
		t.Errorf("log file missing service attribute: %q", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  dir,
		Service: "filter",
		Quiet:   true,
	})
	logger.Info("should be dropped")
	logger.Warn("should be kept")
	logger.Close()

	name := filepath.Join(dir, "filter_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "should be dropped") {
		t.Error("info message not filtered at warn level")
	}
	if !strings.Contains(content, "should be kept") {
		t.Error("warn message missing")
	}
}

func TestWithAttributes(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{LogDir: dir, Service: "child", Quiet: true})
	child := logger.With("run_id", "abc123")
	child.Info("child entry")
	logger.Close()

	name := filepath.Join(dir, "child_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "abc123") {
		t.Errorf("child attribute missing: %q", string(data))
	}
}
