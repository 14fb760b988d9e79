// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides the Line scene primitive: a styled 2D
// polyline over masked data arrays, with optional markers at each
// point, cached device-space geometry, and pick testing against both
// vertices and segments. Rendering goes through the abstract
// [render.Renderer] so the same line can target raster output, a
// recording backend, or anything else implementing that interface.
package lines

//go:generate core generate

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"github.com/plotline/plotline/base/errors"
	"github.com/plotline/plotline/colors"
	"github.com/plotline/plotline/config"
	"github.com/plotline/plotline/data"
	"github.com/plotline/plotline/enums"
	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/render"
	"github.com/plotline/plotline/styles"
	"github.com/plotline/plotline/units"
)

// ContainsFunc is a custom pick predicate that can be installed with
// [Line.SetContains] to replace the standard hit test. It returns
// whether the query point (in device dots) hits the line, and the
// indices of the hit vertices or segment starts.
type ContainsFunc func(ln *Line, cx, cy float32) (bool, []int)

// Line is a 2D polyline over float64 data arrays, with a line style,
// optional per-point markers, and a data-to-device transform. Style
// fields may be set directly; fields with parsing, validation, or
// rebuild side effects have Set methods instead.
type Line struct {

	// LineStyle is how segments between points are stroked.
	// Use [Line.SetLineStyle] to set it from a name or short code.
	LineStyle LineStyles

	// Marker is the shape stamped at each valid data point.
	// Use [Line.SetMarker] to set it from a name or short code.
	Marker Markers

	// LineWidth is the stroke width in points.
	LineWidth float32

	// MarkerSize is the marker size in points.
	MarkerSize float32

	// MarkerEdgeWidth is the marker outline width in points.
	MarkerEdgeWidth float32

	// Alpha is the opacity applied to both the line and its markers.
	Alpha float32

	// Antialiased is whether strokes are antialiased when the
	// renderer supports per-stroke control.
	Antialiased bool

	// Visible is whether Draw emits anything at all.
	Visible bool

	// ZOrder orders this line relative to sibling artists.
	ZOrder float32

	// Label is an optional name for legends and diagnostics.
	Label string

	// SolidCap is the cap style used for solid and step styles.
	SolidCap styles.LineCaps

	// SolidJoin is the join style used for solid and step styles.
	SolidJoin styles.LineJoins

	// DashCap is the cap style used for dashed styles.
	DashCap styles.LineCaps

	// DashJoin is the join style used for dashed styles.
	DashJoin styles.LineJoins

	color      color.RGBA
	edgeSpec   string
	edgeColor  color.RGBA
	faceSpec   string
	faceColor  color.RGBA
	dashSeq    []float32
	pickRadius float32

	xorig, yorig data.Values
	maskOrig     data.Mask
	x, y         []float64
	mask         data.Mask
	xconv, yconv data.Converter

	cache        PathCache
	containsFunc ContainsFunc
}

// New returns a new line over the given x and y data, styled from the
// given parameters (nil means standard defaults). The data is copied,
// broadcast, and validated as in [Line.SetData].
func New(x, y []float64, pr *config.Params) (*Line, error) {
	ln := &Line{}
	ln.Defaults(pr)
	if err := ln.SetData(x, y); err != nil {
		return nil, err
	}
	return ln, nil
}

// Defaults sets all style state from the given parameters
// (nil means standard defaults). Data and transform are untouched.
func (ln *Line) Defaults(pr *config.Params) {
	if pr == nil {
		pr = config.NewParams()
	}
	errors.Log(ln.SetColor(pr.Color))
	ln.SetLineStyle(pr.LineStyle)
	ln.SetMarker(pr.Marker)
	ln.LineWidth = pr.LineWidth
	ln.MarkerSize = pr.MarkerSize
	ln.MarkerEdgeWidth = pr.MarkerEdgeWidth
	ln.edgeSpec = "auto"
	ln.faceSpec = "auto"
	ln.Antialiased = pr.Antialiased
	ln.SolidCap = pr.SolidCapStyle
	ln.SolidJoin = pr.SolidJoinStyle
	ln.DashCap = pr.DashCapStyle
	ln.DashJoin = pr.DashJoinStyle
	ln.pickRadius = pr.PickRadius
	ln.Alpha = 1
	ln.Visible = true
	ln.ZOrder = 2
	ln.cache.Transform = math32.Identity2()
}

// SetData replaces the line's x and y data, copying both slices. When
// the new arrays equal the current ones and no mask is in play, the
// stored data and cached geometry are left as they are, so unit
// conversion and the path rebuild are skipped.
func (ln *Line) SetData(x, y []float64) error {
	if ln.maskOrig == nil && data.Equal(ln.xorig, x) && data.Equal(ln.yorig, y) {
		return nil
	}
	ln.xorig = append(data.Values(nil), x...)
	ln.yorig = append(data.Values(nil), y...)
	ln.maskOrig = nil
	return ln.recache()
}

// SetDataMask replaces the line's data along with a validity mask
// (true where the point is valid). Masked data always rebuilds the
// cached geometry, even when the values are unchanged.
func (ln *Line) SetDataMask(x, y []float64, mask data.Mask) error {
	ln.xorig = append(data.Values(nil), x...)
	ln.yorig = append(data.Values(nil), y...)
	ln.maskOrig = append(data.Mask(nil), mask...)
	return ln.recache()
}

// SetXData replaces only the x data, keeping y and any mask.
func (ln *Line) SetXData(x []float64) error {
	if ln.maskOrig == nil {
		return ln.SetData(x, ln.yorig)
	}
	return ln.SetDataMask(x, ln.yorig, ln.maskOrig)
}

// SetYData replaces only the y data, keeping x and any mask.
func (ln *Line) SetYData(y []float64) error {
	if ln.maskOrig == nil {
		return ln.SetData(ln.xorig, y)
	}
	return ln.SetDataMask(ln.xorig, y, ln.maskOrig)
}

// recache runs the data pipeline: unit conversion, length-1
// broadcasting, length validation, and folding non-finite values into
// the mask. The cached paths are invalidated and rebuilt lazily on
// the next draw or pick.
func (ln *Line) recache() error {
	x := convert(ln.xconv, ln.xorig)
	y := convert(ln.yconv, ln.yorig)
	if len(x) == 1 && len(y) > 1 {
		x = broadcast(x[0], len(y))
	}
	if len(y) == 1 && len(x) > 1 {
		y = broadcast(y[0], len(x))
	}
	if len(x) != len(y) {
		return errors.New("lines: xdata and ydata must be the same length")
	}
	mask := data.NewMask(len(x))
	if ln.maskOrig != nil {
		if len(ln.maskOrig) != len(x) {
			return errors.New("lines: mask must be the same length as the data")
		}
		copy(mask, ln.maskOrig)
	}
	mask.MaskFinite(x, y)
	ln.x, ln.y, ln.mask = x, y, mask
	ln.cache.Invalidate()
	return nil
}

func convert(c data.Converter, vals []float64) []float64 {
	if c == nil {
		return append([]float64(nil), vals...)
	}
	return c.Convert(vals)
}

func broadcast(v float64, n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return vals
}

// updateCache rebuilds the cached paths if the data pipeline has run
// since the last build.
func (ln *Line) updateCache() {
	if !ln.cache.Valid() {
		ln.cache.Update(ln.x, ln.y, ln.mask)
	}
}

// XData returns the stored x data. Callers must not modify it.
func (ln *Line) XData() data.Values { return ln.xorig }

// YData returns the stored y data. Callers must not modify it.
func (ln *Line) YData() data.Values { return ln.yorig }

// XY returns the processed coordinates: converted to data units and
// broadcast to a common length. Callers must not modify them.
func (ln *Line) XY() ([]float64, []float64) { return ln.x, ln.y }

// Mask returns the processed validity mask (true = valid), the
// intersection of the given mask with finiteness of both coordinates.
// Callers must not modify it.
func (ln *Line) Mask() data.Mask { return ln.mask }

// SetTransform sets the data-to-device transform. The cached paths
// are rebound to the new matrix without being rebuilt.
func (ln *Line) SetTransform(m math32.Matrix2) {
	ln.cache.Transform = m
}

// Transform returns the current data-to-device transform.
func (ln *Line) Transform() math32.Matrix2 { return ln.cache.Transform }

// SetConverters installs unit converters applied to the raw x and y
// data ahead of all geometry, and reruns the data pipeline. A nil
// converter passes values through unchanged.
func (ln *Line) SetConverters(xc, yc data.Converter) error {
	ln.xconv, ln.yconv = xc, yc
	return ln.recache()
}

// SetContains installs a custom pick predicate used by
// [Line.Contains] in place of the standard geometry test.
// A nil function restores the standard test.
func (ln *Line) SetContains(f ContainsFunc) { ln.containsFunc = f }

// SetPickRadius sets the pick radius in points for containment tests.
func (ln *Line) SetPickRadius(r float32) error {
	if math32.IsNaN(r) || r < 0 {
		return errors.New("lines: pick radius should be a distance")
	}
	ln.pickRadius = r
	return nil
}

// PickRadius returns the pick radius in points.
func (ln *Line) PickRadius() float32 { return ln.pickRadius }

// Contains reports whether the query point, in device dots, lies
// within the pick radius of the line, along with the indices of the
// hit vertices and segment starts (indices count the valid points in
// order). The pick radius is scaled from points to dots by the units
// context; a nil context logs a warning and uses it unscaled. For
// line style "none" only the vertices themselves are tested.
func (ln *Line) Contains(cx, cy float32, uc *units.Context) (bool, []int) {
	if ln.containsFunc != nil {
		return ln.containsFunc(ln, cx, cy)
	}
	ln.updateCache()
	verts := ln.cache.DeviceVerts()
	if len(verts) == 0 {
		return false, nil
	}
	radius := ln.pickRadius
	if uc == nil {
		slog.Warn("lines.Contains: no units context, pick radius is unscaled", "line", ln.String())
	} else {
		radius = uc.ToDots(ln.pickRadius, units.UnitPt)
	}
	var ind []int
	if ln.LineStyle == LineStyleNone {
		ind = PointHits(cx, cy, verts, radius)
	} else {
		ind = SegmentHits(cx, cy, verts, radius)
	}
	return len(ind) > 0, ind
}

// SetLineStyle sets the line style from its name ("solid", "dashed",
// "dash-dot", "dotted", "steps-pre", "steps-mid", "steps-post",
// "none") or short code ("-", "--", "-.", ":", "steps", "None", " ",
// ""). An unrecognized style is logged and the current one kept.
func (ln *Line) SetLineStyle(style string) {
	if ls, ok := lineStyleCodes[style]; ok {
		ln.LineStyle = ls
		return
	}
	var ls LineStyles
	if err := ls.SetString(style); err != nil {
		slog.Error("lines.SetLineStyle: unrecognized line style", "style", style)
		return
	}
	ln.LineStyle = ls
}

// SetMarker sets the marker from its name ("circle", "square",
// "triangle-up", ...) or short code (".", ",", "o", "v", "^", "<",
// ">", "1", "2", "3", "4", "s", "p", "h", "H", "+", "x", "D", "d",
// "|", "_", "None", " ", ""). An unrecognized marker is logged and
// the current one kept.
func (ln *Line) SetMarker(marker string) {
	if mk, ok := markerCodes[marker]; ok {
		ln.Marker = mk
		return
	}
	var mk Markers
	if err := mk.SetString(marker); err != nil {
		slog.Error("lines.SetMarker: unrecognized marker", "marker", marker)
		return
	}
	ln.Marker = mk
}

// SetDashes sets a custom dash sequence, alternating on/off ink
// lengths in points, which overrides the built-in dashed pattern.
// An empty or nil sequence resets the line style to solid; otherwise
// the line style becomes dashed.
func (ln *Line) SetDashes(seq []float32) {
	if len(seq) == 0 {
		ln.SetLineStyle("-")
	} else {
		ln.SetLineStyle("--")
	}
	ln.dashSeq = append([]float32(nil), seq...)
}

// Dashes returns the custom dash sequence, nil if unset.
func (ln *Line) Dashes() []float32 { return ln.dashSeq }

// SetColor sets the line color from a color name, single-letter code,
// or hex string.
func (ln *Line) SetColor(clr string) error {
	c, err := colors.FromString(clr)
	if err != nil {
		return err
	}
	ln.color = c
	return nil
}

// Color returns the line color.
func (ln *Line) Color() color.RGBA { return ln.color }

// SetMarkerEdgeColor sets the marker edge color: a color string,
// "auto" (black for filled markers, the line color for stroke-only
// ones), or "none" for no edge.
func (ln *Line) SetMarkerEdgeColor(clr string) error {
	switch strings.ToLower(clr) {
	case "auto", "none":
		ln.edgeSpec = strings.ToLower(clr)
		return nil
	}
	c, err := colors.FromString(clr)
	if err != nil {
		return err
	}
	ln.edgeSpec = clr
	ln.edgeColor = c
	return nil
}

// MarkerEdgeColor returns the marker edge color setting, which may be
// "auto" or "none".
func (ln *Line) MarkerEdgeColor() string { return ln.edgeSpec }

// SetMarkerFaceColor sets the marker face color: a color string,
// "auto" (the line color), or "none" for unfilled markers.
func (ln *Line) SetMarkerFaceColor(clr string) error {
	switch strings.ToLower(clr) {
	case "auto", "none":
		ln.faceSpec = strings.ToLower(clr)
		return nil
	}
	c, err := colors.FromString(clr)
	if err != nil {
		return err
	}
	ln.faceSpec = clr
	ln.faceColor = c
	return nil
}

// MarkerFaceColor returns the marker face color setting, which may be
// "auto" or "none".
func (ln *Line) MarkerFaceColor() string { return ln.faceSpec }

// markerEdgeImage resolves the marker edge color to a paint image,
// nil for "none".
func (ln *Line) markerEdgeImage() image.Image {
	switch ln.edgeSpec {
	case "none":
		return nil
	case "auto", "":
		if filledMarkers[ln.Marker] {
			return colors.Uniform(colors.Black)
		}
		return colors.Uniform(ln.color)
	}
	return colors.Uniform(ln.edgeColor)
}

// markerFaceImage resolves the marker face color to a paint image,
// nil for "none".
func (ln *Line) markerFaceImage() image.Image {
	switch ln.faceSpec {
	case "none":
		return nil
	case "auto", "":
		return colors.Uniform(ln.color)
	}
	return colors.Uniform(ln.faceColor)
}

// SetSolidCapStyle sets the cap style used for solid line styles,
// from its lowercased name.
func (ln *Line) SetSolidCapStyle(style string) error {
	return setCap(&ln.SolidCap, style)
}

// SetDashCapStyle sets the cap style used for dashed line styles,
// from its lowercased name.
func (ln *Line) SetDashCapStyle(style string) error {
	return setCap(&ln.DashCap, style)
}

// SetSolidJoinStyle sets the join style used for solid line styles,
// from its lowercased name.
func (ln *Line) SetSolidJoinStyle(style string) error {
	return setJoin(&ln.SolidJoin, style)
}

// SetDashJoinStyle sets the join style used for dashed line styles,
// from its lowercased name.
func (ln *Line) SetDashJoinStyle(style string) error {
	return setJoin(&ln.DashJoin, style)
}

func setCap(cs *styles.LineCaps, style string) error {
	var c styles.LineCaps
	if err := c.SetString(strings.ToLower(style)); err != nil {
		return fmt.Errorf("lines: invalid cap style %q; valid cap styles: %s", style, valueNames(styles.LineCapsValues()))
	}
	*cs = c
	return nil
}

func setJoin(js *styles.LineJoins, style string) error {
	var j styles.LineJoins
	if err := j.SetString(strings.ToLower(style)); err != nil {
		return fmt.Errorf("lines: invalid join style %q; valid join styles: %s", style, valueNames(styles.LineJoinsValues()))
	}
	*js = j
	return nil
}

// valueNames formats enum values as a comma separated list.
func valueNames[T enums.Enum](vals []T) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = v.String()
	}
	return strings.Join(strs, ", ")
}

// IsDashed reports whether the current line style is one of the
// dashed styles, which draw with the dash cap and join styles.
func (ln *Line) IsDashed() bool {
	switch ln.LineStyle {
	case LineStyleDashed, LineStyleDashDot, LineStyleDotted:
		return true
	}
	return false
}

// Draw renders the line and then its markers to the given renderer,
// bracketed as one "line2d" group. An invisible line emits nothing,
// not even the group.
func (ln *Line) Draw(rd render.Renderer) {
	if !ln.Visible {
		return
	}
	ln.updateCache()
	rd.OpenGroup("line2d")
	gc := render.NewGC()
	gc.Color = colors.Uniform(ln.color)
	gc.Alpha = ln.Alpha
	gc.Width = rd.PointsToPixels(ln.LineWidth)
	gc.Antialiased = ln.Antialiased
	if ln.IsDashed() {
		gc.Cap = ln.DashCap
		gc.Join = ln.DashJoin
	} else {
		gc.Cap = ln.SolidCap
		gc.Join = ln.SolidJoin
	}
	if ls := ln.LineStyle; 0 <= ls && ls < LineStylesN {
		lineDraws[ls](ln, rd, gc)
	}
	if mk := ln.Marker; mk != MarkerNone && 0 <= mk && mk < MarkersN {
		ln.drawMarkerPass(rd)
	}
	rd.CloseGroup()
}

// UpdateFrom copies style state from the other line: colors, widths,
// styles, dash pattern, caps, joins, marker state, alpha, visibility,
// and label. Data, transform, and converters are not copied.
func (ln *Line) UpdateFrom(other *Line) {
	ln.LineStyle = other.LineStyle
	ln.Marker = other.Marker
	ln.LineWidth = other.LineWidth
	ln.MarkerSize = other.MarkerSize
	ln.MarkerEdgeWidth = other.MarkerEdgeWidth
	ln.color = other.color
	ln.edgeSpec, ln.edgeColor = other.edgeSpec, other.edgeColor
	ln.faceSpec, ln.faceColor = other.faceSpec, other.faceColor
	ln.dashSeq = append([]float32(nil), other.dashSeq...)
	ln.SolidCap = other.SolidCap
	ln.SolidJoin = other.SolidJoin
	ln.DashCap = other.DashCap
	ln.DashJoin = other.DashJoin
	ln.Alpha = other.Alpha
	ln.Visible = other.Visible
	ln.Label = other.Label
}

// String returns the label if set, otherwise the processed points:
// all of them up to three, else the first two and the last.
func (ln *Line) String() string {
	if ln.Label != "" {
		return "Line(" + ln.Label + ")"
	}
	n := len(ln.x)
	if n > 3 {
		return fmt.Sprintf("Line((%g,%g),(%g,%g),...,(%g,%g))",
			ln.x[0], ln.y[0], ln.x[1], ln.y[1], ln.x[n-1], ln.y[n-1])
	}
	strs := make([]string, n)
	for i := range strs {
		strs[i] = fmt.Sprintf("(%g,%g)", ln.x[i], ln.y[i])
	}
	return "Line(" + strings.Join(strs, ",") + ")"
}
