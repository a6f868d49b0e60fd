// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// default line width in points
const defaultLw = 1.5

// GetDefaultStyles returns one style per profile labelled by method
func GetDefaultStyles(profiles []*Profile) []*plt.A {
	sty := make([]*plt.A, len(profiles))
	for i, p := range profiles {
		sty[i] = &plt.A{L: p.Method, Z: 1}
	}
	return sty
}

// GetLabel returns axis label with unit; e.g. "uVelocity [m/s]"
func GetLabel(key, unit string) string {
	if unit == "" {
		return key
	}
	return io.Sf("%s [%s]", key, unit)
}

// chartColor converts matplotlib colour codes; e.g. "r" or "#ff0000"
//  idx -- index of series; selects the default colour if code is empty or unknown
func chartColor(code string, idx int) drawing.Color {
	switch code {
	case "r", "red":
		return chart.ColorRed
	case "g", "green":
		return chart.ColorGreen
	case "b", "blue":
		return chart.ColorBlue
	case "k", "black":
		return chart.ColorBlack
	case "c", "cyan":
		return drawing.ColorFromHex("00bfbf")
	case "m", "magenta":
		return drawing.ColorFromHex("bf00bf")
	case "y", "yellow":
		return drawing.ColorFromHex("bfbf00")
	case "gray", "grey":
		return drawing.ColorFromHex("808080")
	}
	if strings.HasPrefix(code, "#") {
		return drawing.ColorFromHex(strings.TrimPrefix(code, "#"))
	}
	return chart.GetDefaultColor(idx)
}
