// Package plot renders the aggregated Monte Carlo series as a PNG with
// three stacked panels: mean spread, mean belief, and the mean fundamental
// against the mean quotes.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"glosten_go/internal/domain"
)

// Chart holds the output dimensions in pixels.
type Chart struct {
	Width  int
	Height int
}

// Lines are rasterized at double resolution and downsampled with Lanczos,
// which anti-aliases them without a font or vector dependency.
const superSample = 2

var (
	background = color.NRGBA{255, 255, 255, 255}
	frameGray  = color.NRGBA{204, 204, 204, 255}

	spreadBlue   = color.NRGBA{31, 119, 180, 255}
	beliefOrange = color.NRGBA{255, 127, 14, 255}
	fundGreen    = color.NRGBA{44, 160, 44, 255}
	askRed       = color.NRGBA{214, 39, 40, 255}
	bidPurple    = color.NRGBA{148, 103, 189, 255}
)

// Render draws the three panels and returns the final image.
func (c Chart) Render(agg *domain.AggregateHistory) (*image.NRGBA, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("chart dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if agg == nil || agg.TickCount() == 0 {
		return nil, fmt.Errorf("nothing to plot: empty aggregate")
	}

	w, h := c.Width*superSample, c.Height*superSample
	canvas := imaging.New(w, h, background)

	margin := 10 * superSample
	panelH := h / 3
	panels := []struct {
		rect   image.Rectangle
		series [][]float64
		colors []color.NRGBA
	}{
		{image.Rect(0, 0, w, panelH), [][]float64{agg.Spread}, []color.NRGBA{spreadBlue}},
		{image.Rect(0, panelH, w, 2*panelH), [][]float64{agg.Belief}, []color.NRGBA{beliefOrange}},
		{
			image.Rect(0, 2*panelH, w, h),
			[][]float64{agg.Fundamental, agg.Ask, agg.Bid},
			[]color.NRGBA{fundGreen, askRed, bidPurple},
		},
	}

	for _, p := range panels {
		rect := p.rect.Inset(margin)
		drawFrame(canvas, rect)

		lo, hi := seriesRange(p.series)
		for i, s := range p.series {
			drawSeries(canvas, rect, s, lo, hi, p.colors[i])
		}
	}

	return imaging.Resize(canvas, c.Width, c.Height, imaging.Lanczos), nil
}

// RenderFile renders to path, creating parent directories. The format is
// inferred from the extension (png for the default config).
func (c Chart) RenderFile(path string, agg *domain.AggregateHistory) error {
	img, err := c.Render(agg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	return imaging.Save(img, path)
}

func seriesRange(series [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi == lo {
		// Flat series still gets a visible centered line.
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

func drawFrame(img *image.NRGBA, rect image.Rectangle) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetNRGBA(x, rect.Min.Y, frameGray)
		img.SetNRGBA(x, rect.Max.Y-1, frameGray)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.SetNRGBA(rect.Min.X, y, frameGray)
		img.SetNRGBA(rect.Max.X-1, y, frameGray)
	}
}

func drawSeries(img *image.NRGBA, rect image.Rectangle, series []float64, lo, hi float64, col color.NRGBA) {
	n := len(series)
	if n == 0 {
		return
	}

	plotW := float64(rect.Dx() - 1)
	plotH := float64(rect.Dy() - 1)

	toXY := func(i int) (float64, float64) {
		x := float64(rect.Min.X)
		if n > 1 {
			x += plotW * float64(i) / float64(n-1)
		}
		// y grows downward; high values sit at the top of the panel.
		y := float64(rect.Min.Y) + plotH*(1-(series[i]-lo)/(hi-lo))
		return x, y
	}

	px, py := toXY(0)
	for i := 1; i < n; i++ {
		x, y := toXY(i)
		drawLine(img, px, py, x, y, col)
		px, py = x, y
	}
	if n == 1 {
		img.SetNRGBA(int(px), int(py), col)
	}
}

// drawLine rasterizes a segment by stepping one pixel at a time along the
// dominant axis.
func drawLine(img *image.NRGBA, x0, y0, x1, y1 float64, col color.NRGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + (x1-x0)*t))
		y := int(math.Round(y0 + (y1-y0)*t))
		img.SetNRGBA(x, y, col)
	}
}
