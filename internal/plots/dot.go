// internal/plots/dot.go
package plots

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"enrich/internal/common"
	"enrich/pkg/api"
)

// floor for plotted adjusted p-values so -log10 stays finite.
const minPlotP = 1e-16

// DotPlot renders the classic enrichment dot plot for the strongest
// topN rows: x = hit fraction of the set, y = -log10(adjusted p),
// glyph radius scaled by hit count. The output format follows the file
// extension (.png or .svg).
func DotPlot(path, title string, rows []api.EnrichmentRowV1, topN int) error {
	if len(rows) == 0 {
		return errors.New("plots: no rows to plot")
	}

	buf := make([]api.EnrichmentRowV1, len(rows))
	copy(buf, rows)
	common.SortRows(buf)
	buf = common.TopN(buf, topN)

	pts := make(plotter.XYs, len(buf))
	maxHits := 1
	for i, r := range buf {
		frac := 0.0
		if r.Size > 0 {
			frac = float64(r.Hits) / float64(r.Size)
		}
		padj := r.AdjPValue
		if padj < minPlotP {
			padj = minPlotP
		}
		pts[i].X = frac
		pts[i].Y = -math.Log10(padj)
		if r.Hits > maxHits {
			maxHits = r.Hits
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "hit fraction"
	p.Y.Label.Text = "-log10 adjusted p"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		r := vg.Points(3 + 9*float64(buf[i].Hits)/float64(maxHits))
		return draw.GlyphStyle{
			Color:  color.RGBA{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xc0},
			Radius: r,
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(sc)
	p.Add(plotter.NewGrid())

	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("plots: %v", err)
	}
	return nil
}
