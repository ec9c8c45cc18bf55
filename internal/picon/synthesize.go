package picon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"

	"plutoiptv/internal/fileutil"
	"plutoiptv/internal/gradient"
	"plutoiptv/internal/logging"
)

// CanvasSize is the fixed picon edge length in pixels.
const CanvasSize = 576

// logoOffsetY anchors the provider's 576x288 logo band vertically centered
// in the square canvas (the legacy -extent 576x576-0-144).
const logoOffsetY = 144

// Synthesizer renders picons into a directory.
type Synthesizer struct {
	dir    string
	logger *slog.Logger
}

// New constructs a synthesizer writing into dir.
func New(dir string, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "picon"),
	}
}

// Path returns the destination file for a channel slug.
func (s *Synthesizer) Path(slug string) string {
	return filepath.Join(s.dir, slug+".plutotv.png")
}

// Synthesize renders the picon for a channel slug from raw logo bytes.
// It reports whether a file was written; an existing non-empty picon is
// left untouched unless overwrite is set. Errors are scoped to this one
// picon so the caller can continue with other channels.
func (s *Synthesizer) Synthesize(slug string, logo []byte, spec gradient.Spec, overwrite bool) (bool, error) {
	dest := s.Path(slug)
	if !overwrite && fileutil.ExistsNonEmpty(dest) {
		s.logger.Debug("picon exists, skipping",
			logging.String(logging.FieldSlug, slug),
			logging.String(logging.FieldPath, dest))
		return false, nil
	}

	img, err := imaging.Decode(bytes.NewReader(logo))
	if err != nil {
		return false, fmt.Errorf("decode logo for %s: %w", slug, err)
	}

	canvas := imaging.New(CanvasSize, CanvasSize, color.NRGBA{})
	logoLayer := imaging.Paste(canvas, img, image.Pt(0, logoOffsetY))

	var result *image.NRGBA
	if spec.Enabled {
		background, err := renderGradient(spec)
		if err != nil {
			return false, fmt.Errorf("render gradient for %s: %w", slug, err)
		}
		// Logo layer drawn above: logo wins where opaque, gradient
		// shows through where it is transparent.
		result = imaging.Overlay(background, logoLayer, image.Pt(0, 0), 1.0)
	} else {
		result = logoLayer
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return false, fmt.Errorf("encode picon for %s: %w", slug, err)
	}
	if err := fileutil.WriteFileAtomic(dest, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("write picon for %s: %w", slug, err)
	}

	s.logger.Info("wrote picon",
		logging.String(logging.FieldSlug, slug),
		logging.String(logging.FieldPath, dest))
	return true, nil
}

// renderGradient rasterizes the two-stop linear gradient. Angle 0 runs
// top to bottom; the rotation increases clockwise.
func renderGradient(spec gradient.Spec) (*image.NRGBA, error) {
	c1, c2, err := spec.Stops()
	if err != nil {
		return nil, err
	}

	theta := float64(spec.Angle) * math.Pi / 180
	dirX, dirY := math.Sin(theta), math.Cos(theta)

	img := image.NewNRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	half := float64(CanvasSize-1) / 2
	// Maximum |projection| of any pixel onto the gradient axis.
	scale := half * (math.Abs(dirX) + math.Abs(dirY))

	for y := 0; y < CanvasSize; y++ {
		for x := 0; x < CanvasSize; x++ {
			projection := (float64(x)-half)*dirX + (float64(y)-half)*dirY
			t := 0.5
			if scale > 0 {
				t = (projection/scale + 1) / 2
			}
			blended := c1.BlendRgb(c2, t)
			r, g, b := blended.RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img, nil
}
