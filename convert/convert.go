/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package convert

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/drawfile/draw2svg/common"
	"github.com/drawfile/draw2svg/drawfile"
	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/internal/binreader"
	"github.com/drawfile/draw2svg/svgwriter"
)

// Options configures one conversion, assembled from CLI flags (spec.md section 6).
type Options struct {
	Subs       fontconfig.Table
	Config     svgwriter.Config
	OneByteType bool
	FitBorder  string // e.g. "10" (pixels) or "5%"; empty disables it.
}

// fitBorderPattern splits a --fit-border value into its numeric magnitude and unit
// suffix, per spec.md section 6 ("<n>" pixels or "<n>%").
var fitBorderPattern = regexp.MustCompile(`^([\+\-\.\d]+)(.*)$`)

// File converts one in-memory Draw file to a complete SVG document, implementing
// the two-pass Orchestrator of spec.md section 4.3: Pass 1 discovers the page size
// via an Options object (or the default-page-size fallback), Pass 2 walks every
// object and renders it.
func File(data []byte, opts Options) ([]byte, error) {
	r := binreader.New(data)
	fileHeader, err := drawfile.ReadFileHeader(r)
	if err != nil {
		return nil, err
	}

	pass1 := binreader.New(data)
	if err := pass1.Seek(r.Position()); err != nil {
		return nil, err
	}
	options, found, err := drawfile.FindOptions(pass1, pass1.Len(), opts.OneByteType)
	if err != nil {
		return nil, err
	}
	if !found {
		fileWidthPx := geom.PtToPx(float64(fileHeader.BBox.X1) / 640.0)
		fileHeightPx := geom.PtToPx(float64(fileHeader.BBox.Y1) / 640.0)
		paperSize, landscape := DefaultPageSize(fileWidthPx, fileHeightPx)
		options.PaperSize = paperSize
		if landscape {
			options.PaperLimits = 0x10
		}
	}

	widthMM, heightMM, err := PaperSizeMM(options.PaperSize, options.Landscape())
	if err != nil {
		common.Log.Error("%v", err)
		return nil, err
	}
	widthPx, heightPx := mmToPixels(widthMM), mmToPixels(heightMM)
	widthDrawUnits := widthMM * geom.DrawUnitsPerMM
	heightDrawUnits := heightMM * geom.DrawUnitsPerMM

	conv := geom.NewCoordinateConversion(int32(widthDrawUnits), int32(heightDrawUnits), widthPx, heightPx)

	objects, err := drawfile.ReadAll(r, r.Len(), opts.OneByteType)
	if err != nil {
		return nil, err
	}

	ctx := svgwriter.NewContext(conv, opts.Subs, opts.Config)
	var body bytes.Buffer
	for _, obj := range objects {
		svgwriter.Render(&body, obj, ctx)
	}

	viewX, viewY, viewW, viewH := 0.0, 0.0, widthPx, heightPx
	if opts.FitBorder != "" {
		viewX, viewY, viewW, viewH, err = fitBorderViewBox(fileHeader.BBox, conv, opts.FitBorder)
		if err != nil {
			return nil, err
		}
	}

	return svgwriter.BuildDocument(body.Bytes(), viewX, viewY, viewW, viewH), nil
}

// fitBorderViewBox computes a view-box around the file's own bounding box expanded
// by the --fit-border margin, instead of the chosen page size, per spec.md section 6.
func fitBorderViewBox(bbox geom.Rect, conv geom.CoordinateConversion, fitBorder string) (x, y, w, h float64, err error) {
	m := fitBorderPattern.FindStringSubmatch(strings.TrimSpace(fitBorder))
	if m == nil {
		return 0, 0, 0, 0, fmt.Errorf("bad --fit-border value %q", fitBorder)
	}
	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("bad --fit-border value %q: %w", fitBorder, err)
	}

	bottomLeftX, bottomLeftY := conv.Point(bbox.X0, bbox.Y0)
	topRightX, topRightY := conv.Point(bbox.X1, bbox.Y1)
	boxX, boxY := bottomLeftX, topRightY
	boxW, boxH := topRightX-bottomLeftX, bottomLeftY-topRightY

	var border float64
	if strings.TrimSpace(m[2]) == "%" {
		border = magnitude / 100.0 * ((boxW + boxH) / 2.0)
	} else {
		border = magnitude
	}

	return boxX - border, boxY - border, boxW + 2*border, boxH + 2*border, nil
}
