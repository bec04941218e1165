package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/poiesic/coursematch/core"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrEmptyRanking is returned when a chart has nothing to draw.
var ErrEmptyRanking = errors.New("ranking is empty")

// ErrCoordinateMismatch is returned when coordinates and courses differ in count.
var ErrCoordinateMismatch = errors.New("coordinates do not match courses")

var (
	pageBackground  = rgb(0x0f1117)
	panelBackground = rgb(0x1a1d27)
	axisColor       = rgb(0x8892a8)
	mutedColor      = rgb(0x4a5568)
	strongColor     = rgb(0x6c9bff)
	mediumColor     = rgb(0x38bdf8)
	beforeColor     = rgb(0xef4444)
	afterColor      = rgb(0x4ade80)
	legendText      = rgb(0xe2e8f0)
)

// CategoryColors maps course categories to scatter colours.
var CategoryColors = map[core.Category]color.Color{
	core.CategoryCSCore:            rgb(0x6c9bff),
	core.CategoryCSElective:        rgb(0x38bdf8),
	core.CategoryCybersecurityCore: rgb(0xa78bfa),
	core.CategoryMath:              rgb(0x4ade80),
}

// SimilarityColor picks the bar colour for an embedding score.
func SimilarityColor(score float64) color.Color {
	switch {
	case score > 0.35:
		return strongColor
	case score > 0.2:
		return mediumColor
	}
	return mutedColor
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// ComparisonChart writes a PNG with the keyword ranking on the left, the
// embedding ranking on the right and the query underneath.
func ComparisonChart(path, query string, keyword, semantic core.Ranking) error {
	if len(keyword) == 0 || len(semantic) == 0 {
		return ErrEmptyRanking
	}

	kwMax := 1.0
	for _, sc := range keyword {
		kwMax = math.Max(kwMax, sc.Score)
	}
	before, err := rankingPanel("BEFORE: Keyword Matching", "Word Matches", beforeColor, keyword,
		kwMax+1, func(float64) color.Color { return mutedColor }, "%.0f")
	if err != nil {
		return err
	}
	after, err := rankingPanel("AFTER: Embedding Similarity", "Cosine Similarity", afterColor, semantic,
		1, SimilarityColor, "%.3f")
	if err != nil {
		return err
	}

	width, height := 14*vg.Inch, 4.5*vg.Inch
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseBackgroundColor(pageBackground))
	dc := draw.New(img)

	caption := before.Title.TextStyle
	caption.Color = strongColor
	caption.XAlign = text.XCenter
	caption.Font.Size = vg.Points(11)
	dc.FillText(caption, vg.Point{X: width / 2, Y: 0.15 * vg.Inch}, fmt.Sprintf("Student Query: %q", query))

	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: 0.3 * vg.Inch, PadTop: 0.1 * vg.Inch, PadBottom: 0.45 * vg.Inch,
		PadLeft: 0.1 * vg.Inch, PadRight: 0.2 * vg.Inch}
	canvases := plot.Align([][]*plot.Plot{{before, after}}, tiles, dc)
	before.Draw(canvases[0][0])
	after.Draw(canvases[0][1])

	return writePNG(path, img)
}

// rankingPanel draws one horizontal bar per entry, best at the top.
func rankingPanel(title, xLabel string, titleColor color.Color, ranking core.Ranking, xMax float64,
	barColor func(float64) color.Color, valueFormat string) (*plot.Plot, error) {
	p := plot.New()
	stylePlot(p)
	p.Title.Text = title
	p.Title.TextStyle.Color = titleColor
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = xLabel
	p.X.Min, p.X.Max = 0, xMax

	n := len(ranking)
	codes := make([]string, n)
	labels := plotter.XYLabels{XYs: make(plotter.XYs, n), Labels: make([]string, n)}
	for rank, sc := range ranking {
		pos := n - 1 - rank
		codes[pos] = sc.Course.Code

		bar, err := plotter.NewBarChart(plotter.Values{sc.Score}, vg.Points(18))
		if err != nil {
			return nil, fmt.Errorf("bar for %s: %w", sc.Course.Code, err)
		}
		bar.Horizontal = true
		bar.XMin = float64(pos)
		bar.Color = barColor(sc.Score)
		bar.LineStyle.Color = rgb(0x2a2e3d)
		p.Add(bar)

		labels.XYs[pos] = plotter.XY{X: math.Max(sc.Score, 0), Y: float64(pos)}
		labels.Labels[pos] = fmt.Sprintf(valueFormat, sc.Score)
	}

	values, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, fmt.Errorf("value labels: %w", err)
	}
	values.Offset = vg.Point{X: vg.Points(4), Y: -vg.Points(4)}
	for i := range values.TextStyle {
		values.TextStyle[i].Color = axisColor
	}
	p.Add(values)
	p.NominalY(codes...)
	return p, nil
}

// EmbeddingSpaceChart writes a scatter of 2D course coordinates coloured by
// category, with every point labelled by its course code.
func EmbeddingSpaceChart(path string, courses []core.Course, coords [][]float64) error {
	if len(courses) == 0 {
		return ErrEmptyRanking
	}
	if len(coords) != len(courses) {
		return fmt.Errorf("%w: %d coordinates for %d courses", ErrCoordinateMismatch, len(coords), len(courses))
	}

	p := plot.New()
	stylePlot(p)
	p.Title.Text = "Course Embedding Space (t-SNE Projection)"
	p.Title.TextStyle.Color = legendText
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Dimension 1"
	p.Y.Label.Text = "Dimension 2"
	p.Legend.Top = true
	p.Legend.TextStyle.Color = legendText

	groups := make(map[core.Category]plotter.XYs)
	var uncategorised plotter.XYs
	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(courses)), Labels: make([]string, len(courses))}
	for i, c := range courses {
		if len(coords[i]) < 2 {
			return fmt.Errorf("%w: %s has %d coordinates", ErrCoordinateMismatch, c.Code, len(coords[i]))
		}
		xy := plotter.XY{X: coords[i][0], Y: coords[i][1]}
		if _, ok := CategoryColors[c.Category]; ok {
			groups[c.Category] = append(groups[c.Category], xy)
		} else {
			uncategorised = append(uncategorised, xy)
		}
		labels.XYs[i] = xy
		labels.Labels[i] = c.Code
	}

	for _, cat := range core.Categories {
		points := groups[cat]
		scatter, err := newScatter(points, CategoryColors[cat])
		if err != nil {
			return fmt.Errorf("scatter for %s: %w", cat, err)
		}
		if len(points) > 0 {
			p.Add(scatter)
		}
		p.Legend.Add(string(cat), scatter)
	}
	if len(uncategorised) > 0 {
		scatter, err := newScatter(uncategorised, axisColor)
		if err != nil {
			return fmt.Errorf("scatter for other categories: %w", err)
		}
		p.Add(scatter)
	}

	codes, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("code labels: %w", err)
	}
	codes.Offset = vg.Point{X: vg.Points(8), Y: vg.Points(6)}
	for i, c := range courses {
		col, ok := CategoryColors[c.Category]
		if !ok {
			col = axisColor
		}
		codes.TextStyle[i].Color = col
		codes.TextStyle[i].Font.Size = vg.Points(7.5)
	}
	p.Add(codes)

	return p.Save(11*vg.Inch, 7.5*vg.Inch, path)
}

func newScatter(points plotter.XYs, c color.Color) (*plotter.Scatter, error) {
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(6), Shape: draw.CircleGlyph{}}
	return scatter, nil
}

func stylePlot(p *plot.Plot) {
	p.BackgroundColor = panelBackground
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.LineStyle.Color = rgb(0x2a2e3d)
		axis.Label.TextStyle.Color = axisColor
		axis.Tick.LineStyle.Color = rgb(0x2a2e3d)
		axis.Tick.Label.Color = axisColor
	}
}

func writePNG(path string, img *vgimg.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close chart file: %w", cerr)
		}
	}()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	return nil
}
