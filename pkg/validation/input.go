// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for user-provided values
// that end up in file paths or solver calls. Using these validators
// prevents path traversal from API parameters and malformed solution
// strings from reaching the evaluator.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// problemNamePattern matches problem file names exposed through the
// API: a plain file name, no separators, ending in .cnf.
var problemNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-]{0,127}\.cnf$`)

// ValidateProblemName validates a problem file name from an API path
// parameter. Rejects anything that could escape the problems directory
// (slashes, "..", absolute paths).
//
// Example:
//
//	if err := validation.ValidateProblemName(name); err != nil {
//	    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
//	    return
//	}
func ValidateProblemName(name string) error {
	if name == "" {
		return fmt.Errorf("problem name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid problem name %q: path separators are not allowed", name)
	}
	if !problemNamePattern.MatchString(name) {
		return fmt.Errorf("invalid problem name %q: must be a plain file name ending in .cnf", name)
	}
	return nil
}

// ParseBitString converts a 0/1 string into an assignment vector.
// Returns an error on any other character or on an empty string.
//
// Use this for user-supplied solutions before handing them to the
// evaluator, which treats a wrong-length vector as a programming error:
//
//	bits, err := validation.ParseBitString(arg)
//	if err != nil { ... }
//	if len(bits) != problem.NumVariables { ... }
func ParseBitString(s string) ([]uint8, error) {
	if s == "" {
		return nil, fmt.Errorf("solution string cannot be empty")
	}
	bits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("invalid solution character %q at position %d (want 0 or 1)", s[i], i)
		}
	}
	return bits, nil
}
