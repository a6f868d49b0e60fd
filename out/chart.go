// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/wcharczuk/go-chart/v2"
)

// figure size in inches
const (
	figWidth  = 6.4
	figHeight = 4.8
)

// drawChart renders figure to a png file using go-chart
func drawChart(fig *Figure, fnpath string, dpi int) (err error) {

	// axes
	ch := chart.Chart{
		Title:  fig.Title,
		DPI:    float64(dpi),
		Width:  int(figWidth * float64(dpi)),
		Height: int(figHeight * float64(dpi)),
		XAxis:  chart.XAxis{Name: fig.Xlbl},
		YAxis:  chart.YAxis{Name: fig.Ylbl},
	}

	// series; lower z-order first
	for i, d := range fig.sorted() {
		lw := d.Style.Lw
		if lw <= 0 {
			lw = defaultLw
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    d.Style.L,
			XValues: d.X,
			YValues: d.Y,
			Style: chart.Style{
				StrokeColor: chartColor(d.Style.C, i),
				StrokeWidth: lw * float64(dpi) / 72.0,
			},
		})
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	// save
	f, err := os.Create(fnpath)
	if err != nil {
		return chk.Err("cannot create figure file %q:\n%v", fnpath, err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = chk.Err("cannot close figure file %q:\n%v", fnpath, e)
		}
	}()
	err = ch.Render(chart.PNG, f)
	if err != nil {
		return chk.Err("cannot render figure %q:\n%v", fnpath, err)
	}
	return
}
