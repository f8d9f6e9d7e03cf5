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
)

// Write serializes the problem in DIMACS CNF format. The output parses
// back to an identical problem.
func Write(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", p.NumVariables, p.NumClauses); err != nil {
		return err
	}
	for _, clause := range p.Clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", int(lit)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the problem to path in DIMACS CNF format.
func WriteFile(path string, p *Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cnf: cannot create %s: %w", path, err)
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return fmt.Errorf("cnf: writing %s: %w", path, err)
	}
	return f.Close()
}
