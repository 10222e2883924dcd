// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spikesynth generates a synthetic multi-channel recording with ground
// truth spikes and exports it: per-segment spike-time tables and traces
// as tab-separated files, plus template and trace plots.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"
	"github.com/neuraldata/spikesynth/synth"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func main() {
	cfg := &synth.Config{}
	cfg.Defaults()

	var dur, rate float64
	var out string
	var doPlot, doTraces bool

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Float64Var(&dur, "dur", 10, "duration of each segment in seconds")
	flag.IntVar(&cfg.NumChans, "chans", cfg.NumChans, "number of channels")
	flag.IntVar(&cfg.NumUnits, "units", cfg.NumUnits, "number of units")
	flag.IntVar(&cfg.NumSegments, "segs", cfg.NumSegments, "number of segments")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed -- 0 for a fresh random run")
	flag.Float64Var(&rate, "rate", 30000, "sampling frequency in Hz")
	flag.StringVar(&out, "out", "spikesynth_out", "output directory")
	flag.BoolVar(&doPlot, "plot", true, "render template and trace plots")
	flag.BoolVar(&doTraces, "traces", false, "also export the full traces (large)")
	flag.Parse()
	cfg.Durations = []float32{float32(dur)}
	cfg.Rate = float32(rate)

	if err := run(cfg, out, doPlot, doTraces); err != nil {
		fmt.Fprintf(os.Stderr, "spikesynth: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *synth.Config, out string, doPlot, doTraces bool) error {
	gn := synth.New(cfg)
	rec, srt, err := gn.Run()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}

	for si := 0; si < rec.NumSegments(); si++ {
		fmt.Printf("segment %d: %d chans x %d samples, %d spikes\n",
			si, rec.Segments[si].Dim(0), rec.Segments[si].Dim(1), srt.NumSpikes(si))
		fnm := filepath.Join(out, fmt.Sprintf("sorting_seg%d.tsv", si))
		if err := saveSorting(srt, si, fnm); err != nil {
			return err
		}
		if doTraces {
			fnm = filepath.Join(out, fmt.Sprintf("traces_seg%d.tsv", si))
			if err := saveTraces(rec, si, fnm); err != nil {
				return err
			}
		}
	}

	if doPlot {
		if err := plotTemplates(gn, filepath.Join(out, "templates.png")); err != nil {
			return err
		}
		if err := plotTraces(rec, filepath.Join(out, "traces.png")); err != nil {
			return err
		}
	}
	return nil
}

// saveSorting writes one segment's ground-truth spike train as a
// tab-separated table of (time, unit) rows.
func saveSorting(srt *synth.Sorting, seg int, fnm string) error {
	trn := srt.Trains[seg]
	sch := etable.Schema{
		{Name: "Time", Type: etensor.INT64},
		{Name: "Unit", Type: etensor.INT64},
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", fmt.Sprintf("Sorting_%d", seg))
	dt.SetMetaData("desc", "ground-truth spike times and unit labels")
	dt.SetFromSchema(sch, trn.Len())
	for i := range trn.Times {
		dt.SetCellFloat("Time", i, float64(trn.Times[i]))
		dt.SetCellFloat("Unit", i, float64(trn.Labels[i]))
	}
	return dt.SaveCSV(gi.FileName(fnm), etable.Tab, etable.Headers)
}

// saveTraces writes one segment's traces with one column per channel.
func saveTraces(rec *synth.Recording, seg int, fnm string) error {
	x := rec.Segments[seg]
	m, n := x.Dim(0), x.Dim(1)
	sch := etable.Schema{}
	for ch := 0; ch < m; ch++ {
		sch = append(sch, etable.Column{Name: fmt.Sprintf("Chan%d", ch), Type: etensor.FLOAT32})
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", fmt.Sprintf("Traces_%d", seg))
	dt.SetFromSchema(sch, n)
	for ch := 0; ch < m; ch++ {
		for i := 0; i < n; i++ {
			dt.SetCellFloat(fmt.Sprintf("Chan%d", ch), i, float64(x.Values[ch*n+i]))
		}
	}
	return dt.SaveCSV(gi.FileName(fnm), etable.Tab, etable.Headers)
}

// plotTemplates renders each unit's waveform on its strongest channel.
func plotTemplates(gn *synth.Generator, fnm string) error {
	ww := gn.Tmpl
	m, tu, k := ww.Dim(0), ww.Dim(1), ww.Dim(2)
	up := gn.Templates.Upsample
	tt := tu / up

	p := plot.New()
	p.Title.Text = "Unit templates (strongest channel)"
	p.X.Label.Text = "Time (samples)"
	p.Y.Label.Text = "Amplitude"

	for unit := 0; unit < k; unit++ {
		best, bestPk := 0, float64(0)
		for ch := 0; ch < m; ch++ {
			for ti := 0; ti < tu; ti++ {
				v := float64(ww.Values[(ch*tu+ti)*k+unit])
				if v < 0 {
					v = -v
				}
				if v > bestPk {
					best, bestPk = ch, v
				}
			}
		}
		pts := make(plotter.XYs, tt)
		for i := 0; i < tt; i++ {
			pts[i] = plotter.XY{X: float64(i - tt/2), Y: float64(ww.Values[(best*tu+i*up)*k+unit])}
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		ln.Width = vg.Points(1)
		ln.Color = plotutil.Color(unit)
		p.Add(ln)
		p.Legend.Add(fmt.Sprintf("unit %d ch %d", unit+1, best), ln)
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, fnm)
}

// plotTraces renders the first 100 msec of segment 0, channel 0.
func plotTraces(rec *synth.Recording, fnm string) error {
	if rec.NumSegments() == 0 {
		return nil
	}
	x := rec.Segments[0]
	n := x.Dim(1)
	ns := int(rec.Rate / 10)
	if ns > n {
		ns = n
	}
	pts := make(plotter.XYs, ns)
	for i := 0; i < ns; i++ {
		pts[i] = plotter.XY{X: float64(i) / float64(rec.Rate) * 1000, Y: float64(x.Values[i])}
	}
	p := plot.New()
	p.Title.Text = "Traces (segment 0, channel 0)"
	p.X.Label.Text = "Time (msec)"
	p.Y.Label.Text = "Amplitude"
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ln.Width = vg.Points(0.5)
	p.Add(ln)
	return p.Save(10*vg.Inch, 4*vg.Inch, fnm)
}
