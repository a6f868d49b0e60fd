// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteTable writes columns sharing the same x-coordinates to a text file
//  keys -- column names (without "x")
//  cols -- [len(keys)][len(X)] values
func WriteTable(fnpath string, X []float64, keys []string, cols [][]float64) error {
	if len(keys) != len(cols) {
		return chk.Err("number of keys and columns are different. %d != %d", len(keys), len(cols))
	}
	for j, col := range cols {
		if len(col) != len(X) {
			return chk.Err("column %q has %d values but there are %d x-coordinates", keys[j], len(col), len(X))
		}
	}
	var b bytes.Buffer
	io.Ff(&b, "%23s", "x")
	for _, key := range keys {
		io.Ff(&b, " %23s", key)
	}
	io.Ff(&b, "\n")
	for i, x := range X {
		io.Ff(&b, "%23.15e", x)
		for _, col := range cols {
			io.Ff(&b, " %23.15e", col[i])
		}
		io.Ff(&b, "\n")
	}
	err := os.WriteFile(fnpath, b.Bytes(), 0644)
	if err != nil {
		return chk.Err("cannot write table %q:\n%v", fnpath, err)
	}
	return nil
}

// SameX checks whether two sets of x-coordinates coincide (within TolC)
func SameX(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > TolC {
			return false
		}
	}
	return true
}
