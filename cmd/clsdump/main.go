package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	clscodec "github.com/geofmt/cls-codec"
	"github.com/geofmt/cls-codec/cls"
)

func main() {
	var (
		outPath  = flag.String("o", "", "Write output to a file instead of stdout")
		yamlOut  = flag.Bool("yaml", false, "Render YAML instead of JSON")
		check    = flag.Bool("check", false, "Validate only and print a summary")
		strict   = flag.Bool("strict", false, "Fail on trailing bytes after the last record")
		encoding = flag.String("encoding", "", "Override the header text encoding (shift-jis, latin-1, windows-1252)")
		replace  = flag.Bool("replace", false, "Replace undecodable text with U+FFFD instead of failing")
		angles   = flag.String("angles", "", "Angle rendering mode (degrees, dms, gon)")
		points   = flag.String("points", "", "Point rendering mode (map, seq)")
		cfgPath  = flag.String("config", "", "Load settings from a TOML file")
		verbose  = flag.Bool("v", false, "Enable debug logging")
		browse   = flag.Bool("i", false, "Interactive record browser")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: clsdump [flags] <file.cls>")
		fmt.Fprintln(os.Stderr, "       clsdump -check <file.cls>")
		fmt.Fprintln(os.Stderr, "       clsdump -i <file.cls>  (interactive browser)")
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg := defaultConfig()
	if *cfgPath != "" {
		loaded, err := loadFileConfig(*cfgPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *outPath
		case "yaml":
			cfg.YAML = *yamlOut
		case "check":
			cfg.Check = *check
		case "strict":
			cfg.Strict = *strict
		case "encoding":
			cfg.Encoding = *encoding
		case "replace":
			cfg.Replace = *replace
		case "angles":
			cfg.Angles = *angles
		case "points":
			cfg.Points = *points
		case "v":
			cfg.Verbose = *verbose
		}
	})

	opts, vopts, err := cfg.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		cls.SetLogger(logger)
	}

	if *browse {
		if err := runInteractive(path, opts, vopts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(path, cfg, opts, vopts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func run(path string, cfg config, opts cls.Options, vopts cls.ValueOptions) error {
	// Read input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	// Decode and validate
	doc, err := clscodec.Parse(data, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Check {
		printSummary(path, len(data), doc)
		return nil
	}

	export := clscodec.ExportJSON
	if cfg.YAML {
		export = clscodec.ExportYAML
	}

	if cfg.Output == "" {
		return export(os.Stdout, doc, vopts)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export(f, doc, vopts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func printSummary(path string, size int, doc *cls.Document) {
	fmt.Printf("File:     %s (%d bytes)\n", path, size)
	fmt.Printf("Version:  %d\n", doc.Header.Version)
	fmt.Printf("Encoding: %s\n", doc.Header.Encoding)
	fmt.Printf("Records:  %d\n", len(doc.Records))
	for _, kind := range []byte{cls.KindStation, cls.KindObservation, cls.KindAnnotation, cls.KindFix, cls.KindTraverse} {
		if n := doc.CountByKind(kind); n > 0 {
			fmt.Printf("  %-12s %d\n", cls.KindName(kind), n)
		}
	}
	if e := doc.Extents; e != nil {
		fmt.Printf("Extents:  x [%g, %g]  y [%g, %g]  z [%g, %g]\n",
			e.MinX, e.MaxX, e.MinY, e.MaxY, e.MinZ, e.MaxZ)
	}
}
