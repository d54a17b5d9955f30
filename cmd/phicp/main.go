// Command phicp runs the acoplanarity pipeline over a JSON event file.
// It prints summary statistics and can optionally persist the run to
// SQLite and render PDF/HTML histograms of the angle distribution.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/htautau-data/phicp.report/internal/config"
	"github.com/htautau-data/phicp.report/internal/eventio"
	"github.com/htautau-data/phicp.report/internal/monitoring"
	"github.com/htautau-data/phicp.report/internal/phicp"
	"github.com/htautau-data/phicp.report/internal/phistore"
	"github.com/htautau-data/phicp.report/internal/report"
	"github.com/htautau-data/phicp.report/internal/version"
)

type options struct {
	showVersion bool
	configPath  string
	inputPath   string
	method1     string
	mode1       string
	method2     string
	mode2       string
	dbPath      string
	pdfPath     string
	htmlPath    string
	bins        int
}

func parseFlags() options {
	var o options
	flag.BoolVar(&o.showVersion, "version", false, "print version and exit")
	flag.StringVar(&o.configPath, "config", "", "optional JSON run config; flags override it")
	flag.StringVar(&o.inputPath, "input", "", "JSON event file (required)")
	flag.StringVar(&o.method1, "method1", "DP", "leg 1 reconstruction method (DP, PV, IP)")
	flag.StringVar(&o.mode1, "mode1", "rho", "leg 1 decay mode (e, mu, pi, rho, a1)")
	flag.StringVar(&o.method2, "method2", "DP", "leg 2 reconstruction method (DP, PV, IP)")
	flag.StringVar(&o.mode2, "mode2", "rho", "leg 2 decay mode (pi, rho, a1)")
	flag.StringVar(&o.dbPath, "db", "", "optional SQLite database to record the run")
	flag.StringVar(&o.pdfPath, "pdf", "", "optional PDF histogram output path")
	flag.StringVar(&o.htmlPath, "html", "", "optional HTML histogram output path")
	flag.IntVar(&o.bins, "bins", 25, "histogram bin count")
	flag.Parse()
	return o
}

// merge overlays file-config values under the flag values, keeping any
// flag the user set explicitly.
func merge(o options, cfg *config.RunConfig, set map[string]bool) options {
	if cfg == nil {
		return o
	}
	if !set["input"] {
		o.inputPath = config.StringOr(cfg.InputPath, o.inputPath)
	}
	if !set["method1"] {
		o.method1 = config.StringOr(cfg.Method1, o.method1)
	}
	if !set["mode1"] {
		o.mode1 = config.StringOr(cfg.Mode1, o.mode1)
	}
	if !set["method2"] {
		o.method2 = config.StringOr(cfg.Method2, o.method2)
	}
	if !set["mode2"] {
		o.mode2 = config.StringOr(cfg.Mode2, o.mode2)
	}
	if !set["db"] {
		o.dbPath = config.StringOr(cfg.DBPath, o.dbPath)
	}
	if !set["pdf"] {
		o.pdfPath = config.StringOr(cfg.PDFPath, o.pdfPath)
	}
	if !set["html"] {
		o.htmlPath = config.StringOr(cfg.HTMLPath, o.htmlPath)
	}
	if !set["bins"] {
		o.bins = config.IntOr(cfg.Bins, o.bins)
	}
	return o
}

func legConfig(method, mode string) (phicp.LegConfig, error) {
	m, err := phicp.ParseMethod(method)
	if err != nil {
		return phicp.LegConfig{}, err
	}
	d, err := phicp.ParseMode(mode)
	if err != nil {
		return phicp.LegConfig{}, err
	}
	return phicp.LegConfig{Method: m, Mode: d}, nil
}

func main() {
	o := parseFlags()
	if o.showVersion {
		fmt.Println(version.String())
		return
	}
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		o = merge(o, cfg, set)
	}
	if o.inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: phicp -input events.json [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg1, err := legConfig(o.method1, o.mode1)
	if err != nil {
		log.Fatalf("Leg 1 configuration: %v", err)
	}
	cfg2, err := legConfig(o.method2, o.mode2)
	if err != nil {
		log.Fatalf("Leg 2 configuration: %v", err)
	}

	batch, err := eventio.ReadFile(o.inputPath)
	if err != nil {
		log.Fatalf("Failed to read events: %v", err)
	}
	leg1, leg2, err := batch.Legs()
	if err != nil {
		log.Fatalf("Failed to convert events: %v", err)
	}
	monitoring.Stagef("input", "%d events from %s", len(batch.Events), o.inputPath)

	angles, err := phicp.Compute(leg1, leg2, cfg1, cfg2)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	s := report.Summarize(angles)
	monitoring.Stagef("angle", "%s x %s: n=%d mean=%.4f min=%.4f max=%.4f",
		cfg1, cfg2, s.N, s.Mean, s.Min, s.Max)

	if o.dbPath != "" {
		store, err := phistore.Open(o.dbPath)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer store.Close()
		id, err := store.InsertRun(&phistore.Run{
			Leg1:      cfg1.String(),
			Leg2:      cfg2.String(),
			InputPath: o.inputPath,
		}, angles)
		if err != nil {
			log.Fatalf("Failed to record run: %v", err)
		}
		monitoring.Stagef("store", "run %s recorded in %s", id, o.dbPath)
	}

	if o.pdfPath != "" || o.htmlPath != "" {
		h, err := report.NewHistogram(o.bins)
		if err != nil {
			log.Fatalf("Bad histogram configuration: %v", err)
		}
		h.Fill(angles)
		if n := h.Under + h.Over; n > 0 {
			monitoring.Stagef("report", "%d angles outside [0, 2pi) excluded from histogram", n)
		}
		title := fmt.Sprintf("phi_cp %s x %s", cfg1, cfg2)
		if o.pdfPath != "" {
			if err := h.SavePDF(o.pdfPath, title); err != nil {
				log.Fatalf("Failed to write PDF: %v", err)
			}
			monitoring.Stagef("report", "wrote %s", o.pdfPath)
		}
		if o.htmlPath != "" {
			if err := h.SaveHTML(o.htmlPath, title); err != nil {
				log.Fatalf("Failed to write HTML: %v", err)
			}
			monitoring.Stagef("report", "wrote %s", o.htmlPath)
		}
	}
}
