package seggo

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/propensio/seggo/kmeans"
	"github.com/propensio/seggo/label"
	"github.com/propensio/seggo/seed"
	"github.com/propensio/seggo/selection"
	"github.com/propensio/seggo/snapshot"
)

// Defaults for Request fields left at their zero value.
const (
	DefaultKMin    = 2
	DefaultKMax    = 10
	DefaultMaxIter = 30
	DefaultNInit   = 10
	DefaultMinGap  = 0.05
)

// Request describes one segmentation computation. Zero-valued fields take
// the defaults above; the zero Method is the compromise policy. Seed nil
// means "derive from the matrix contents".
type Request struct {
	KMin    int              `json:"k_min"`
	KMax    int              `json:"k_max"`
	MaxIter int              `json:"max_iter"`
	NInit   int              `json:"n_init"`
	Method  selection.Method `json:"method"`
	MinGap  float64          `json:"min_gap"`
	Seed    *uint32          `json:"seed,omitempty"`
}

// Sweep holds the per-k results of one sweep as parallel arrays, plus the
// derived selections.
type Sweep struct {
	Ks               []int     `json:"ks"`
	Inertia          []float64 `json:"inertia"`
	Silhouette       []float64 `json:"silhouette"`
	SuggestedK       int       `json:"suggested_k"`
	BestBySilhouette int       `json:"best_by_silhouette"`
	FinalK           int       `json:"final_k"`
}

// Run is the winning clustering at the final k.
type Run struct {
	Labels    []int       `json:"labels"`
	Centroids [][]float64 `json:"centroids"`
	Inertia   float64     `json:"inertia"`
}

// Response is the complete result of one segmentation. It echoes every
// parameter other than the matrix, so a caller holding a Response can
// reproduce it exactly; method, seed and min gap are the minimum
// reproducibility triple.
type Response struct {
	Sweep        Sweep    `json:"sweep"`
	FinalRun     Run      `json:"final_run"`
	SegmentNames []string `json:"segment_names"`

	Method  selection.Method `json:"method"`
	Seed    uint32           `json:"seed"`
	MinGap  float64          `json:"min_gap"`
	MaxIter int              `json:"max_iter"`
	NInit   int              `json:"n_init"`
	KMin    int              `json:"k_min"`
	KMax    int              `json:"k_max"`
}

// Engine runs segmentations over one immutable feature matrix.
//
// The matrix is validated once at construction and never mutated. At most
// one segmentation runs at a time per Engine; concurrent requests are
// rejected with ErrComputationInProgress rather than queued.
type Engine struct {
	matrix [][]float64
	dim    int
	opts   options

	computing atomic.Bool

	mu   sync.RWMutex
	last *Response
}

// New creates an Engine over the given matrix. The matrix must be
// non-empty and rectangular; the caller must not modify it afterwards.
func New(matrix [][]float64, optFns ...Option) (*Engine, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyMatrix
	}

	dim := len(matrix[0])
	for i, row := range matrix {
		if len(row) != dim {
			return nil, &ErrRaggedMatrix{Row: i, Expected: dim, Actual: len(row)}
		}
	}

	o := applyOptions(optFns)
	if o.categories == nil {
		o.categories = label.Categories
	}

	return &Engine{
		matrix: matrix,
		dim:    dim,
		opts:   o,
	}, nil
}

// Rows returns the number of rows in the engine's matrix.
func (e *Engine) Rows() int { return len(e.matrix) }

// Dimension returns the matrix column count.
func (e *Engine) Dimension() int { return e.dim }

// LastResponse returns the most recently completed segmentation, or nil if
// none has finished yet.
func (e *Engine) LastResponse() *Response {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}

// Segment runs one full segmentation: a parallel sweep over the requested
// k range, elbow and silhouette selection, one rerun at the final k, and
// segment naming. req may be nil for all defaults.
//
// Cancellation is honored between restarts and between k values; an
// individual k-means run is bounded and never interrupted. If a snapshot
// store is configured the response is persisted before returning; a failed
// save returns an error, but the computed response stays available via
// LastResponse.
func (e *Engine) Segment(ctx context.Context, req *Request) (*Response, error) {
	r := normalizeRequest(req)

	if r.KMin < 1 {
		return nil, fmt.Errorf("%w: k range starts at %d", ErrInvalidK, r.KMin)
	}
	if r.KMax < r.KMin {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidKRange, r.KMin, r.KMax)
	}

	if !e.computing.CompareAndSwap(false, true) {
		return nil, ErrComputationInProgress
	}
	defer e.computing.Store(false)

	seedVal := seed.Derive(e.matrix)
	if r.Seed != nil {
		seedVal = *r.Seed
	}

	logger := e.opts.logger.WithSeed(seedVal).WithRows(len(e.matrix)).WithDimension(e.dim)

	sweepStart := time.Now()
	sweep, err := e.sweep(ctx, r, seedVal, logger)
	e.opts.metricsCollector.RecordSweep(r.KMax-r.KMin+1, time.Since(sweepStart), err)
	logger.LogSweep(ctx, r.KMin, r.KMax, sweep.FinalK, err)
	if err != nil {
		return nil, err
	}

	final, err := e.multiStart(ctx, sweep.FinalK, seedVal, r, logger)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Sweep: *sweep,
		FinalRun: Run{
			Labels:    final.Labels,
			Centroids: final.Centroids,
			Inertia:   final.Inertia,
		},
		SegmentNames: label.ForCentroids(final.Centroids, e.opts.categories),
		Method:       r.Method,
		Seed:         seedVal,
		MinGap:       r.MinGap,
		MaxIter:      r.MaxIter,
		NInit:        r.NInit,
		KMin:         r.KMin,
		KMax:         r.KMax,
	}

	e.mu.Lock()
	e.last = resp
	e.mu.Unlock()

	if e.opts.snapshotStore != nil {
		if err := e.saveSnapshot(ctx, resp); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

// sweep runs the multi-start optimizer for every k in the range and
// derives the selections. Results are written into pre-sized parallel
// slices by index, so concurrent execution assembles the same arrays as
// sequential execution.
func (e *Engine) sweep(ctx context.Context, r Request, seedVal uint32, logger *Logger) (*Sweep, error) {
	count := r.KMax - r.KMin + 1
	ks := make([]int, count)
	inertia := make([]float64, count)
	silhouette := make([]float64, count)
	for i := range ks {
		ks[i] = r.KMin + i
	}

	parallelism := e.opts.parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, k := range ks {
		i, k := i, k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := e.multiStart(gctx, k, seedVal, r, logger)
			if err != nil {
				return err
			}

			inertia[i] = res.Inertia
			silhouette[i] = selection.Silhouette(e.matrix, res.Labels, res.Centroids)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return &Sweep{}, err
	}

	suggestedK := selection.ElbowK(ks, inertia)
	bestBySilhouette := selection.BestBySilhouette(ks, silhouette)
	finalK := selection.Choose(selection.Config{Method: r.Method, MinGap: r.MinGap}, ks, silhouette, suggestedK, bestBySilhouette)

	return &Sweep{
		Ks:               ks,
		Inertia:          inertia,
		Silhouette:       silhouette,
		SuggestedK:       suggestedK,
		BestBySilhouette: bestBySilhouette,
		FinalK:           finalK,
	}, nil
}

// multiStart runs one multi-start optimization under a worker slot of the
// resource controller, if one is configured.
func (e *Engine) multiStart(ctx context.Context, k int, seedVal uint32, r Request, logger *Logger) (*kmeans.Result, error) {
	if err := e.opts.controller.AcquireWorker(ctx); err != nil {
		return nil, err
	}
	defer e.opts.controller.ReleaseWorker()

	start := time.Now()
	res, err := kmeans.MultiStart(ctx, e.matrix, k, seedVal, r.NInit, r.MaxIter, e.opts.parallelism)

	e.opts.metricsCollector.RecordRun(k, time.Since(start), err)
	if err != nil {
		logger.LogRun(ctx, k, 0, err)
		return nil, err
	}

	logger.LogRun(ctx, k, res.Inertia, nil)
	return res, nil
}

func (e *Engine) saveSnapshot(ctx context.Context, resp *Response) error {
	name := fmt.Sprintf("sweep-%d-k%d", resp.Seed, resp.Sweep.FinalK)

	start := time.Now()
	err := snapshot.Save(ctx, e.opts.snapshotStore, name, resp, snapshot.Options{
		Codec:      e.opts.codec,
		Compressor: e.opts.snapshotCompressor,
		Controller: e.opts.controller,
	})

	e.opts.metricsCollector.RecordSnapshot(time.Since(start), err)
	e.opts.logger.LogSnapshot(ctx, name, err)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return nil
}

func normalizeRequest(req *Request) Request {
	var r Request
	if req != nil {
		r = *req
	}
	if r.KMin == 0 {
		r.KMin = DefaultKMin
	}
	if r.KMax == 0 {
		r.KMax = DefaultKMax
	}
	if r.MaxIter == 0 {
		r.MaxIter = DefaultMaxIter
	}
	if r.NInit == 0 {
		r.NInit = DefaultNInit
	}
	if r.MinGap == 0 {
		r.MinGap = DefaultMinGap
	}
	return r
}
