/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command draw2svg converts Acorn Draw binary vector files to SVG, per spec.md
// section 6's external interface. Grounded on original_source's argument-parsing
// main block (draw_to_svg.py's __main__ section) and on unidoc-unipdf's cmd/
// examples for flag-driven single-file tooling.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drawfile/draw2svg/common"
	"github.com/drawfile/draw2svg/convert"
	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/svgwriter"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("draw2svg", flag.ContinueOnError)

	input := fs.String("input", "", "input .draw file (single-file mode)")
	output := fs.String("output", "", "output .svg file (single-file mode)")
	dir := fs.String("dir", "", "recursively convert every .draw file under this directory")
	utf8Mode := fs.Bool("utf8", false, "treat Draw byte payloads as UTF-8; bypass the encoding tables")
	tspans := fs.Bool("tspans", false, "emit text-area runs as <tspan>s inside one <text>")
	verbose := fs.Int("verbose", 0, "log verbosity: 0 silent, 1 filenames, 2 per-object detail")
	basicUnderlines := fs.Bool("basic-underlines", false, "omit colour/thickness from underline decoration")
	noBBox := fs.Bool("no-bbox", false, "do not emit textLength on single-line texts")
	labelDebug := fs.Bool("label-debug", false, "overlay object-type labels")
	showBoxes := fs.Bool("show-boxes", false, "overlay object bounding boxes")
	fontsPath := fs.String("fonts", "", "font substitution INI file ([main] section)")
	fitBorder := fs.String("fit-border", "", "grow the view-box around the file's bounding box, e.g. 10 or 5%")
	oneByteTypes := fs.Bool("one-byte-types", false, "parse the object type field as 8-bit")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	var logLevel common.LogLevel
	switch *verbose {
	case 0:
		logLevel = common.LogLevelSilent
	case 1:
		logLevel = common.LogLevelNotice
	default:
		logLevel = common.LogLevelDebug
	}
	common.SetLogger(common.NewConsoleLogger(logLevel))

	subs := fontconfig.DefaultTable()
	if *fontsPath != "" {
		loaded, err := fontconfig.LoadINI(*fontsPath)
		if err != nil {
			common.Log.Error("%v", err)
			return 1
		}
		subs = loaded
	}

	opts := convert.Options{
		Subs:        subs,
		OneByteType: *oneByteTypes,
		FitBorder:   *fitBorder,
		Config: svgwriter.Config{
			UTF8:            *utf8Mode,
			TSpans:          *tspans,
			BasicUnderlines: *basicUnderlines,
			UseBBox:         !*noBBox,
			LabelDebug:      *labelDebug,
			ShowBoxes:       *showBoxes,
		},
	}

	if *dir != "" {
		if *input != "" || *output != "" {
			fmt.Fprintln(os.Stderr, "draw2svg: --dir cannot be combined with --input/--output")
			return 2
		}
		return runDir(*dir, opts)
	}

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "draw2svg: --input and --output are required in single-file mode")
		return 1
	}
	if *input == *output {
		fmt.Fprintln(os.Stderr, "draw2svg: --input and --output must differ")
		return 2
	}

	common.Log.Notice("%s", *input)
	if err := convertFile(*input, *output, opts); err != nil {
		common.Log.Error("%s: %v", *input, err)
		return 1
	}
	return 0
}

func runDir(root string, opts convert.Options) int {
	failed := false
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".draw") {
			return nil
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
		common.Log.Notice("%s", path)
		if convErr := convertFile(path, out, opts); convErr != nil {
			common.Log.Error("%s: %v", path, convErr)
			failed = true
		}
		return nil
	})
	if err != nil {
		common.Log.Error("%v", err)
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

func convertFile(inputPath, outputPath string, opts convert.Options) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	svg, err := convert.File(data, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, svg, 0o644)
}
