package repr

import (
	"fmt"
)

// Windowing applies the inner method on consecutive non-overlapping windows
// and concatenates the results.
type Windowing struct {
	Win    int
	Method Method
}

func (w Windowing) Name() string {
	inner := "none"
	if w.Method != nil {
		inner = w.Method.Name()
	}
	return fmt.Sprintf("window(win=%d,%s)", w.Win, inner)
}

func (w Windowing) Len(n int) (int, error) {
	if w.Win <= 0 || w.Method == nil {
		return 0, fmt.Errorf("window %d: %w", w.Win, ErrInvalidParams)
	}
	if n < w.Win || n%w.Win != 0 {
		return 0, fmt.Errorf("length %d is not a multiple of window %d: %w", n, w.Win, ErrLength)
	}
	l, err := w.Method.Len(w.Win)
	if err != nil {
		return 0, err
	}
	return n / w.Win * l, nil
}

func (w Windowing) Apply(x []float64) ([]float64, error) {
	l, err := w.Len(len(x))
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, l)
	for i := 0; i < len(x); i += w.Win {
		v, err := w.Method.Apply(x[i : i+w.Win])
		if err != nil {
			return nil, fmt.Errorf("window at %d: %w", i, err)
		}
		out = append(out, v...)
	}
	return out, nil
}
