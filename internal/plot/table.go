package plot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/drakos74/load-profiles/internal/model"
	"github.com/olekukonko/tablewriter"
)

// Table prints the validity scores, marking the chosen k.
func Table(w io.Writer, scores []model.Score, chosen int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"k", "index", "value", ""})
	for _, s := range scores {
		mark := ""
		if s.K == chosen {
			mark = "*"
		}
		value := strconv.FormatFloat(s.Value, 'f', 4, 64)
		if s.Degenerate {
			value = "degenerate"
		}
		table.Append([]string{
			strconv.Itoa(s.K),
			s.Index,
			value,
			mark,
		})
	}
	table.Render()
}

// Sizes prints the members of every cluster.
func Sizes(w io.Writer, ids []string, a model.Assignment) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"cluster", "medoid", "size"})
	sizes := a.Sizes()
	for c, m := range a.Medoids {
		table.Append([]string{
			fmt.Sprintf("%d", c+1),
			ids[m],
			strconv.Itoa(sizes[c]),
		})
	}
	table.Render()
}

// Vectors prints the first rows of the representation, one row per series.
func Vectors(w io.Writer, ids []string, header []string, vectors [][]float64, rows int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"id"}, header...))
	for i, v := range vectors {
		if i >= rows {
			break
		}
		row := make([]string, 0, len(v)+1)
		row = append(row, ids[i])
		for _, x := range v {
			row = append(row, strconv.FormatFloat(x, 'f', 3, 64))
		}
		table.Append(row)
	}
	table.Render()
}
