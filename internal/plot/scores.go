package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/load-profiles/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Scores draws the validity index against the number of clusters.
func Scores(title string, scores []model.Score, path string) error {
	if len(scores) == 0 {
		return fmt.Errorf("no scores to draw")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "k"
	p.Y.Label.Text = scores[0].Index

	pts := make(plotter.XYs, 0, len(scores))
	for _, s := range scores {
		if s.Degenerate {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(s.K), Y: s.Value})
	}
	if len(pts) > 0 {
		l, s, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("could not draw scores: %w", err)
		}
		l.LineStyle.Color = medoidColor
		s.Color = medoidColor
		p.Add(l, s)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir for '%s': %w", path, err)
	}
	return p.Save(5*vg.Inch, 3*vg.Inch, path)
}
