package plot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/drakos74/load-profiles/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	panelWidth  = 4 * vg.Inch
	panelHeight = 3 * vg.Inch
	// Cols is the number of panels per row.
	Cols = 3
)

var (
	memberColor = color.RGBA{R: 150, G: 150, B: 150, A: 120}
	medoidColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// Facets draws the vectors of every cluster in its own panel,
// members as thin grey lines and the medoid as a thick line on top.
// The panels are tiled in rows of Cols and written as a png at the given path.
func Facets(title string, vectors [][]float64, a model.Assignment, path string) error {
	if len(vectors) != len(a.Labels) {
		return fmt.Errorf("%d vectors for %d labels", len(vectors), len(a.Labels))
	}
	cols := Cols
	if a.K < cols {
		cols = a.K
	}
	rows := int(math.Ceil(float64(a.K) / float64(cols)))

	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
		for c := range plots[r] {
			plots[r][c] = blank()
		}
	}

	for cluster := 0; cluster < a.K; cluster++ {
		p, err := panel(title, cluster, vectors, a)
		if err != nil {
			return fmt.Errorf("could not draw cluster %d: %w", cluster, err)
		}
		plots[cluster/cols][cluster%cols] = p
	}

	img := vgimg.New(vg.Length(cols)*panelWidth, vg.Length(rows)*panelHeight)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, t, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	return writePNG(img, path)
}

func panel(title string, cluster int, vectors [][]float64, a model.Assignment) (*plot.Plot, error) {
	members := a.Members(cluster)
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - cluster %d (%d)", title, cluster+1, len(members))
	p.X.Label.Text = "index"
	p.Y.Label.Text = "value"

	for _, m := range members {
		if m == a.Medoids[cluster] {
			continue
		}
		l, err := plotter.NewLine(xys(vectors[m]))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Color = memberColor
		p.Add(l)
	}

	l, err := plotter.NewLine(xys(vectors[a.Medoids[cluster]]))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = medoidColor
	p.Add(l)
	return p, nil
}

// blank is an empty panel filling the grid.
func blank() *plot.Plot {
	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p
}

func xys(v []float64) plotter.XYs {
	pts := make(plotter.XYs, len(v))
	for i, f := range v {
		pts[i].X = float64(i + 1)
		pts[i].Y = f
	}
	return pts
}

func writePNG(img *vgimg.Canvas, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir for '%s': %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create '%s': %w", path, err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("could not write '%s': %w", path, err)
	}
	return nil
}
