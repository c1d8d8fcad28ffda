package plot

import (
	"fmt"
	"io"

	"github.com/drakos74/load-profiles/internal/model"
	"github.com/guptarohit/asciigraph"
)

// ASCII prints the medoid of every cluster as a terminal chart.
func ASCII(w io.Writer, vectors [][]float64, a model.Assignment) error {
	sizes := a.Sizes()
	for c, m := range a.Medoids {
		graph := asciigraph.Plot(vectors[m],
			asciigraph.Height(8),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("cluster %d medoid #%d (%d members)", c+1, m+1, sizes[c])))
		if _, err := fmt.Fprintf(w, "%s\n\n", graph); err != nil {
			return err
		}
	}
	return nil
}
