package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/drakos74/load-profiles/internal/cluster"
	"github.com/drakos74/load-profiles/internal/metrics"
	"github.com/drakos74/load-profiles/internal/model"
	"github.com/drakos74/load-profiles/internal/plot"
	"github.com/drakos74/load-profiles/internal/repr"
	"github.com/drakos74/load-profiles/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrConfig = errors.New("invalid config")

// Report is the outcome of a pipeline run.
type Report struct {
	ID         string           `json:"id"`
	Time       time.Time        `json:"time"`
	Dataset    string           `json:"dataset"`
	Method     string           `json:"method"`
	Norm       string           `json:"norm"`
	Rows       int              `json:"rows"`
	Dim        int              `json:"dim"`
	Index      string           `json:"index"`
	Scores     []model.Score    `json:"scores"`
	K          int              `json:"k"`
	Assignment model.Assignment `json:"assignment"`
	Medoids    []string         `json:"medoids"`
	Charts     []string         `json:"charts,omitempty"`
}

// Pipeline extracts typical profiles out of a dataset.
type Pipeline struct {
	dataset model.Dataset
	method  repr.Method
	norm    string
	kMin    int
	kMax    int
	k       int
	index   string
	output  string
	store   storage.Persistence
	history storage.Persistence
	out     io.Writer
}

// New creates a new pipeline for the given dataset with the defaults of the walkthrough.
func New(ds model.Dataset) *Pipeline {
	cfg := DefaultConfig()
	return &Pipeline{
		dataset: ds,
		method:  repr.SeasonalProfile{Freq: ds.Freq, Func: repr.AggMean},
		norm:    cfg.Method.Norm,
		kMin:    cfg.KMin,
		kMax:    cfg.KMax,
		index:   cfg.Index,
		store:   storage.NewVoidStorage(),
		history: storage.NewVoidStorage(),
	}
}

// FromConfig creates a new pipeline for the dataset out of the given config.
func FromConfig(ds model.Dataset, cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, err := repr.Parse(cfg.Method, ds.Freq)
	if err != nil {
		return nil, err
	}
	if _, err := repr.Norm(cfg.Method.Norm); err != nil {
		return nil, err
	}
	if _, _, err := cluster.Lookup(cfg.Index); err != nil {
		return nil, err
	}
	return New(ds).
		WithMethod(method).
		WithNorm(cfg.Method.Norm).
		WithRange(cfg.KMin, cfg.KMax).
		WithK(cfg.K).
		WithIndex(cfg.Index).
		WithOutput(cfg.Output), nil
}

func (p *Pipeline) WithMethod(method repr.Method) *Pipeline {
	p.method = method
	return p
}

func (p *Pipeline) WithNorm(norm string) *Pipeline {
	p.norm = norm
	return p
}

func (p *Pipeline) WithRange(kMin, kMax int) *Pipeline {
	p.kMin = kMin
	p.kMax = kMax
	return p
}

// WithK fixes the number of clusters instead of picking the best scoring one.
func (p *Pipeline) WithK(k int) *Pipeline {
	p.k = k
	return p
}

func (p *Pipeline) WithIndex(index string) *Pipeline {
	p.index = index
	return p
}

// WithOutput renders the charts into the given directory.
func (p *Pipeline) WithOutput(dir string) *Pipeline {
	p.output = dir
	return p
}

// WithStore persists the report of every run.
func (p *Pipeline) WithStore(store storage.Persistence) *Pipeline {
	p.store = store
	return p
}

// WithHistory appends a summary of every run.
func (p *Pipeline) WithHistory(history storage.Persistence) *Pipeline {
	p.history = history
	return p
}

// WithWriter prints the scores and the medoids to the given writer.
func (p *Pipeline) WithWriter(w io.Writer) *Pipeline {
	p.out = w
	return p
}

// Run computes the representation, clusters it for every k in range, picks the number of clusters
// and renders and stores the outcome.
func (p *Pipeline) Run(ctx context.Context) (report Report, err error) {
	defer func() {
		metrics.Observer.Run(p.method.Name(), err)
	}()

	report = Report{
		ID:      uuid.New().String(),
		Time:    time.Now(),
		Dataset: p.dataset.Name,
		Method:  p.method.Name(),
		Norm:    p.norm,
		Index:   p.index,
	}
	logger := log.With().
		Str("run", report.ID).
		Str("dataset", report.Dataset).
		Str("method", report.Method).
		Logger()

	if p.kMin < 2 || p.kMax < p.kMin {
		return report, fmt.Errorf("cluster range [%d,%d]: %w", p.kMin, p.kMax, ErrConfig)
	}
	if p.k != 0 && (p.k < p.kMin || p.k > p.kMax) {
		return report, fmt.Errorf("k=%d outside [%d,%d]: %w", p.k, p.kMin, p.kMax, ErrConfig)
	}

	norm, err := repr.Norm(p.norm)
	if err != nil {
		return report, err
	}
	rep, err := repr.Matrix(ctx, p.dataset, p.method, norm)
	if err != nil {
		return report, fmt.Errorf("could not compute representation: %w", err)
	}
	report.Rows = len(rep.Vectors)
	report.Dim = rep.Dim()
	logger.Info().
		Int("rows", report.Rows).
		Int("dim", report.Dim).
		Msg("representation")

	result, err := cluster.Sweep(ctx, rep.Vectors, p.kMin, p.kMax, p.index)
	if err != nil {
		return report, fmt.Errorf("could not cluster: %w", err)
	}
	report.Index = result.Index
	report.Scores = result.Scores

	k := p.k
	if k == 0 {
		k = result.Scores[result.Best()].K
	}
	a, ok := result.For(k)
	if !ok {
		return report, fmt.Errorf("no clustering for k=%d: %w", k, ErrConfig)
	}
	report.K = k
	report.Assignment = a
	ids := p.dataset.IDs()
	report.Medoids = make([]string, len(a.Medoids))
	for c, m := range a.Medoids {
		report.Medoids[c] = ids[m]
	}
	logger.Info().
		Int("k", k).
		Str("index", result.Index).
		Ints("sizes", a.Sizes()).
		Strs("medoids", report.Medoids).
		Msg("clusters")

	if p.output != "" {
		charts, err := p.render(rep, result, a)
		if err != nil {
			return report, fmt.Errorf("could not render charts: %w", err)
		}
		report.Charts = charts
	}

	if p.out != nil {
		plot.Table(p.out, report.Scores, k)
		plot.Sizes(p.out, ids, a)
		if err := plot.ASCII(p.out, rep.Vectors, a); err != nil {
			return report, fmt.Errorf("could not print medoids: %w", err)
		}
	}

	key := storage.Key{
		Hash:  report.Time.Unix(),
		Set:   p.dataset.Name,
		Label: slug(report.Method),
	}
	if err := p.store.Store(key, report); err != nil {
		logger.Error().Err(err).Str("key", key.Path()).Msg("could not store report")
		return report, fmt.Errorf("could not store report: %w", err)
	}
	if err := p.history.Store(HistoryKey(p.dataset.Name), Summary(report)); err != nil {
		logger.Warn().Err(err).Msg("could not append to run history")
	}

	return report, nil
}

func (p *Pipeline) render(rep model.Representation, result cluster.Result, a model.Assignment) ([]string, error) {
	start := time.Now()
	name := slug(rep.Method)
	facets := filepath.Join(p.output, fmt.Sprintf("%s_%s_k%d.png", p.dataset.Name, name, a.K))
	if err := plot.Facets(rep.Method, rep.Vectors, a, facets); err != nil {
		return nil, err
	}
	scores := filepath.Join(p.output, fmt.Sprintf("%s_%s_%s.png", p.dataset.Name, name, result.Index))
	if err := plot.Scores(fmt.Sprintf("%s - %s", rep.Method, result.Index), result.Scores, scores); err != nil {
		return nil, err
	}
	metrics.Observer.Render(time.Since(start))
	return []string{facets, scores}, nil
}

// RunSummary is the short version of a report kept in the run history.
type RunSummary struct {
	ID     string    `json:"id"`
	Time   time.Time `json:"time"`
	Method string    `json:"method"`
	Dim    int       `json:"dim"`
	K      int       `json:"k"`
	Score  float64   `json:"score"`
}

// Summary extracts the summary of the report.
func Summary(r Report) RunSummary {
	s := RunSummary{
		ID:     r.ID,
		Time:   r.Time,
		Method: r.Method,
		Dim:    r.Dim,
		K:      r.K,
	}
	for _, score := range r.Scores {
		if score.K == r.K {
			s.Score = score.Value
		}
	}
	return s
}

// slug turns a method name into something usable as a file name.
func slug(name string) string {
	r := strings.NewReplacer("(", "_", ")", "", ",", "_", "=", "", "/", "-")
	return r.Replace(name)
}
