// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a malformed DIMACS input. Line is 1-based; it is
// zero when the error is not tied to a specific line (e.g. a missing
// file or a missing header).
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cnf: line %d: %s", e.Line, e.Msg)
	}
	return "cnf: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a problem in the DIMACS CNF subset:
//
//	c a comment, ignored
//	p cnf <variables> <clauses>
//	1 -2 3 0
//
// Each non-empty line after the header is one clause, a list of
// non-zero signed integers terminated by a trailing 0.
//
// The parser is deliberately lenient where real-world CNF files are
// sloppy: a declared clause count that disagrees with the clauses
// actually present is corrected to the parsed count, and a variable
// index above the declared count grows the problem. Both corrections
// are surfaced as diagnostics rather than errors. Structural problems
// (missing or malformed header, non-integer tokens) are fatal and
// return a *ParseError.
func Parse(r io.Reader) (*Problem, []string, error) {
	var (
		clauses      []Clause
		diagnostics  []string
		numVariables int
		numClauses   int
		headerSeen   bool
		lineNo       int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if headerSeen {
				return nil, nil, &ParseError{Line: lineNo, Msg: "duplicate problem line"}
			}
			var err error
			numVariables, numClauses, err = parseHeader(line, lineNo)
			if err != nil {
				return nil, nil, err
			}
			headerSeen = true
			continue
		}
		if !headerSeen {
			return nil, nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("clause %q before problem line", line)}
		}
		clause, err := parseClause(line, lineNo)
		if err != nil {
			return nil, nil, err
		}
		if len(clause) > 0 {
			clauses = append(clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, &ParseError{Line: lineNo, Msg: "read failed", Err: err}
	}
	if !headerSeen {
		return nil, nil, &ParseError{Msg: "missing \"p cnf\" problem line"}
	}

	if len(clauses) != numClauses {
		diagnostics = append(diagnostics, fmt.Sprintf(
			"header declares %d clauses but %d were parsed; using %d", numClauses, len(clauses), len(clauses)))
	}
	pb := New(numVariables, clauses)
	if pb.NumVariables > numVariables {
		diagnostics = append(diagnostics, fmt.Sprintf(
			"header declares %d variables but literals reach %d; using %d", numVariables, pb.NumVariables, pb.NumVariables))
	}
	return pb, diagnostics, nil
}

// ParseFile reads a DIMACS CNF problem from disk.
func ParseFile(path string) (*Problem, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ParseError{Msg: fmt.Sprintf("cannot open %s", path), Err: err}
	}
	defer f.Close()
	return Parse(f)
}

func parseHeader(line string, lineNo int) (numVariables, numClauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return 0, 0, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid problem line %q, want \"p cnf <vars> <clauses>\"", line)}
	}
	numVariables, err = strconv.Atoi(fields[2])
	if err != nil || numVariables < 0 {
		return 0, 0, &ParseError{Line: lineNo, Msg: fmt.Sprintf("variable count %q is not a valid integer", fields[2]), Err: err}
	}
	numClauses, err = strconv.Atoi(fields[3])
	if err != nil || numClauses < 0 {
		return 0, 0, &ParseError{Line: lineNo, Msg: fmt.Sprintf("clause count %q is not a valid integer", fields[3]), Err: err}
	}
	return numVariables, numClauses, nil
}

func parseClause(line string, lineNo int) (Clause, error) {
	fields := strings.Fields(line)
	var clause Clause
	for _, field := range fields {
		val, err := strconv.Atoi(field)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("token %q is not an integer", field), Err: err}
		}
		if val == 0 {
			// Clause terminator. Skipped rather than treated as
			// end-of-line so that files with a stray mid-line 0 still
			// parse.
			continue
		}
		clause = append(clause, Literal(val))
	}
	return clause, nil
}
