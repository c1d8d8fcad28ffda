package repr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/drakos74/load-profiles/internal/metrics"
	"github.com/drakos74/load-profiles/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknown       = errors.New("unknown")
	ErrInvalidParams = errors.New("invalid parameters")
	ErrLength        = errors.New("incompatible series length")
)

// Method transforms a series into a fixed length representation.
type Method interface {
	// Name is the identifier of the method including its parameters.
	Name() string
	// Len returns the length of the representation for a series of length n.
	Len(n int) (int, error)
	// Apply computes the representation of the series.
	Apply(x []float64) ([]float64, error)
}

// Matrix applies the method on every series of the dataset, after the optional normalisation.
// Rows are processed concurrently, the order of the result follows the dataset.
func Matrix(ctx context.Context, ds model.Dataset, method Method, norm Normaliser) (model.Representation, error) {
	rep := model.Representation{
		Method: method.Name(),
	}
	if err := ds.Validate(); err != nil {
		return rep, err
	}
	dim, err := method.Len(ds.Length())
	if err != nil {
		return rep, fmt.Errorf("could not apply '%s' on series of length %d: %w", method.Name(), ds.Length(), err)
	}

	start := time.Now()
	vectors := make([][]float64, ds.Len())
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range ds.Series {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x := s.Values
			if norm != nil {
				x = norm(x)
			}
			v, err := method.Apply(x)
			if err != nil {
				return fmt.Errorf("could not apply '%s' on series '%s': %w", method.Name(), s.ID, err)
			}
			if len(v) != dim {
				return fmt.Errorf("'%s' produced %d values instead of %d for series '%s': %w", method.Name(), len(v), dim, s.ID, ErrLength)
			}
			vectors[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}
	rep.Vectors = vectors

	metrics.Observer.Representation(method.Name(), ds.Len(), time.Since(start))
	log.Debug().
		Str("method", method.Name()).
		Int("rows", len(vectors)).
		Int("dim", dim).
		Dur("duration", time.Since(start)).
		Msg("computed representation")
	return rep, nil
}

// Header returns the column names of the vectors of the method with the given dimension.
func Header(m Method, dim int) []string {
	switch mm := m.(type) {
	case FeaClip:
		return append([]string(nil), FeaClipNames[:]...)
	case Windowing:
		l, err := mm.Method.Len(mm.Win)
		if err != nil || l == 0 || dim%l != 0 {
			break
		}
		inner := Header(mm.Method, l)
		names := make([]string, 0, dim)
		for w := 0; w < dim/l; w++ {
			for _, name := range inner {
				names = append(names, fmt.Sprintf("%s_w%d", name, w+1))
			}
		}
		return names
	}
	names := make([]string, dim)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i+1)
	}
	return names
}
