package holdasset

import (
	"encoding/xml"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/speedwall/wallerr"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each unparsed SVG element
	WarnErrorMode
	// StrictErrorMode fails on the first unparsed SVG element
	StrictErrorMode
)

var errParamMismatch = wallerr.New(wallerr.ErrInvalidFormat, "svg parameter mismatch")

var (
	containerTags = map[string]bool{"svg": true, "g": true, "a": true, "switch": true}
	visualTags    = map[string]bool{
		"path": true, "rect": true, "circle": true, "ellipse": true,
		"polygon": true, "polyline": true, "line": true, "text": true,
		"use": true, "image": true,
	}
	// skippedTags hold no directly drawn content
	skippedTags = map[string]bool{
		"defs": true, "title": true, "desc": true, "metadata": true, "style": true,
		"clipPath": true, "mask": true, "pattern": true, "symbol": true, "marker": true,
		"linearGradient": true, "radialGradient": true, "filter": true, "script": true,
	}
)

// assetCursor is used while parsing hold SVG files
type assetCursor struct {
	points    []float64
	errorMode ErrorMode
	log       *zap.Logger

	asset      *Asset
	transforms []rasterx.Matrix2D // one per open element
	skipDepth  int                // > 0 inside ignored content
	rec        *recording
	visuals    []recording

	seenRoot, hasAnchor bool
	anchorTransform     rasterx.Matrix2D
}

var numberRe = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// getPoints reads a list of numbers separated by commas, spaces or signs,
// and stores them in c.points
func (c *assetCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	rest := strings.TrimSpace(dataPoints)
	for rest != "" {
		loc := numberRe.FindStringIndex(rest)
		if loc == nil || strings.Trim(rest[:loc[0]], ", \t\n\r") != "" {
			return errParamMismatch
		}
		f, err := strconv.ParseFloat(rest[loc[0]:loc[1]], 64)
		if err != nil {
			return errParamMismatch
		}
		c.points = append(c.points, f)
		rest = strings.TrimLeft(rest[loc[1]:], ", \t\n\r")
	}
	return nil
}

// parseLength reads a number with an optional absolute unit suffix.
func parseLength(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	for _, unit := range [...]string{"mm", "px", "cm", "pt", "in"} {
		if strings.HasSuffix(v, unit) {
			v = strings.TrimSpace(strings.TrimSuffix(v, unit))
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (c *assetCursor) readTransformAttr(m1 rasterx.Matrix2D, k string) (rasterx.Matrix2D, error) {
	ln := len(c.points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(c.points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(c.points[1], c.points[2]).
				Rotate(c.points[0]*math.Pi/180).
				Translate(-c.points[1], -c.points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(c.points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(c.points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(c.points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(c.points[0], c.points[0])
		} else if ln == 2 {
			m1 = m1.Scale(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(rasterx.Matrix2D{
				A: c.points[0],
				B: c.points[1],
				C: c.points[2],
				D: c.points[3],
				E: c.points[4],
				F: c.points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// parseTransform applies the transform list v on top of m1
func (c *assetCursor) parseTransform(m1 rasterx.Matrix2D, v string) (rasterx.Matrix2D, error) {
	ts := strings.Split(v, ")")
	for _, t := range ts {
		t = strings.TrimLeft(strings.TrimSpace(t), ", ")
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		err := c.getPoints(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = c.readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])))
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

func (c *assetCursor) top() rasterx.Matrix2D {
	if len(c.transforms) == 0 {
		return rasterx.Identity
	}
	return c.transforms[len(c.transforms)-1]
}

func attrValue(attrs []xml.Attr, name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name.Local == name && (attr.Name.Space == "" || attr.Name.Space == svgNamespace) {
			return attr.Value, true
		}
	}
	return "", false
}

func hasClass(attrs []xml.Attr, class string) bool {
	v, _ := attrValue(attrs, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// readLengths reads the named attributes, missing ones defaulting to 0.
func readLengths(attrs []xml.Attr, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, ok := attrValue(attrs, name)
		if !ok {
			continue
		}
		f, ok := parseLength(v)
		if !ok {
			return nil, wallerr.New(wallerr.ErrInvalidFormat, "invalid %s attribute %q", name, v)
		}
		out[i] = f
	}
	return out, nil
}

func (c *assetCursor) readCanvas(attrs []xml.Attr) error {
	var width, height float64
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err := c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.asset.ViewBox = Bounds{X: c.points[0], Y: c.points[1], W: c.points[2], H: c.points[3]}
		case "width":
			width, _ = parseLength(attr.Value)
		case "height":
			height, _ = parseLength(attr.Value)
		}
	}
	c.asset.Canvas = Dimensions{Width: c.asset.ViewBox.W, Height: c.asset.ViewBox.H}
	if c.asset.Canvas.Width <= 0 {
		c.asset.Canvas.Width = width
	}
	if c.asset.Canvas.Height <= 0 {
		c.asset.Canvas.Height = height
	}
	if c.asset.Canvas.Width <= 0 || c.asset.Canvas.Height <= 0 {
		return wallerr.New(wallerr.ErrMissingDimensions, "no viewBox nor width and height on <svg>")
	}
	if c.asset.ViewBox.W <= 0 || c.asset.ViewBox.H <= 0 {
		c.asset.ViewBox = Bounds{W: c.asset.Canvas.Width, H: c.asset.Canvas.Height}
	}
	return nil
}

func (c *assetCursor) readStartElement(se xml.StartElement) error {
	parent := c.top()
	if c.rec != nil {
		c.rec.open++
		c.rec.writeStart(se)
		c.transforms = append(c.transforms, parent)
		return nil
	}
	if c.skipDepth > 0 {
		c.skipDepth++
		c.transforms = append(c.transforms, parent)
		return nil
	}

	m := parent
	if v, ok := attrValue(se.Attr, "transform"); ok {
		var err error
		if m, err = c.parseTransform(parent, v); err != nil {
			return err
		}
	}
	c.transforms = append(c.transforms, m)

	tag := se.Name.Local
	if !c.seenRoot {
		if tag != "svg" {
			return wallerr.New(wallerr.ErrMissingDimensions, "root element is <%s>, not <svg>", tag)
		}
		c.seenRoot = true
		return c.readCanvas(se.Attr)
	}
	if se.Name.Space != "" && se.Name.Space != svgNamespace {
		// editor metadata (inkscape, sodipodi...)
		c.skipDepth = 1
		return nil
	}
	switch {
	case containerTags[tag]:
		return nil
	case skippedTags[tag]:
		c.skipDepth = 1
		return nil
	case visualTags[tag]:
		return c.readVisual(se, parent, m)
	}

	errStr := "cannot process svg element " + tag
	if c.errorMode == StrictErrorMode {
		return wallerr.New(wallerr.ErrInvalidFormat, "%s", errStr)
	} else if c.errorMode == WarnErrorMode {
		c.log.Warn(errStr)
	}
	c.skipDepth = 1
	return nil
}

func (c *assetCursor) readVisual(se xml.StartElement, parent, m rasterx.Matrix2D) error {
	tag := se.Name.Local
	id, _ := attrValue(se.Attr, "id")

	if (tag == "circle" || tag == "ellipse") &&
		(id == "anchor" || id == "insert" || hasClass(se.Attr, "anchor") || hasClass(se.Attr, "insert")) {
		c.skipDepth = 1
		if c.hasAnchor {
			return nil
		}
		center, err := readLengths(se.Attr, "cx", "cy")
		if err != nil {
			return err
		}
		x, y := m.Transform(center[0], center[1])
		c.asset.Anchor = Point{X: x, Y: y}
		c.anchorTransform = m
		c.hasAnchor = true
		return nil
	}

	if tag == "rect" && strings.HasPrefix(id, "label-") {
		if dir, ok := parseDirection(strings.TrimPrefix(id, "label-")); ok {
			c.skipDepth = 1
			r, err := readLengths(se.Attr, "x", "y", "width", "height")
			if err != nil {
				return err
			}
			c.asset.LabelZones[dir] = boundsOf(m, r[0], r[1], r[2], r[3])
			return nil
		}
	}

	c.rec = &recording{
		elem:  Element{Tag: tag, ID: id, Transform: parent, full: m},
		shape: id == "shape" || hasClass(se.Attr, "shape"),
	}
	c.rec.writeStart(se)
	return nil
}

func (c *assetCursor) readEndElement(ee xml.EndElement) {
	c.transforms = c.transforms[:len(c.transforms)-1]
	switch {
	case c.rec != nil:
		c.rec.writeEnd(ee)
		if c.rec.open > 0 {
			c.rec.open--
			return
		}
		c.rec.elem.Markup = c.rec.buf.String()
		c.visuals = append(c.visuals, *c.rec)
		c.rec = nil
	case c.skipDepth > 0:
		c.skipDepth--
	}
}

// finish splits the recorded elements between shape and auxiliary ones.
func (c *assetCursor) finish() error {
	if !c.seenRoot {
		return wallerr.New(wallerr.ErrMissingDimensions, "invalid svg xml hold asset")
	}
	if !c.hasAnchor {
		return wallerr.New(wallerr.ErrMissingAnchor, "no circle or ellipse tagged anchor or insert")
	}
	rotated := c.anchorTransform
	for i := range c.visuals {
		v := &c.visuals[i]
		if v.shape && c.asset.Shape == nil {
			elem := v.elem
			c.asset.Shape = &elem
			rotated = elem.full
			continue
		}
		c.asset.Auxiliary = append(c.asset.Auxiliary, v.elem)
	}
	c.asset.PreRotation = rotationOf(rotated)
	return nil
}

// Parse reads a hold asset from the given io.Reader.
// Elements the parser does not know about are ignored, logged
// through the global zap logger, or rejected, according to errMode.
func Parse(stream io.Reader, errMode ErrorMode) (*Asset, error) {
	return parse(stream, errMode, zap.L())
}

func parse(stream io.Reader, errMode ErrorMode, log *zap.Logger) (*Asset, error) {
	cursor := &assetCursor{
		errorMode: errMode,
		log:       log,
		asset:     &Asset{LabelZones: map[Direction]Bounds{}},
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, wallerr.New(wallerr.ErrInvalidFormat, "%s", err)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		case xml.EndElement:
			cursor.readEndElement(se)
		case xml.CharData:
			if cursor.rec != nil {
				cursor.rec.writeText(se)
			}
		}
	}
	if err := cursor.finish(); err != nil {
		return nil, err
	}
	return cursor.asset, nil
}
