package stability

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/mat"

	"github.com/clustkit/stability/cluster"
	"github.com/clustkit/stability/dataset"
	"github.com/clustkit/stability/split"
)

// progressEvery throttles progress log records during a run.
const progressEvery = time.Second

// Run estimates clustering stability by cross-validation. For every fold
// produced by the configured splitters it partitions the dataset into a
// train and a test half, trains one clustering method instance per half
// for every cluster count in ks, and scores the agreement between the
// train half's predictions on the test data and the test half's own
// labeling.
//
// The returned Result holds one score table per metric, with the per-fold
// tables concatenated in fold enumeration order.
func Run(ctx context.Context, ds *dataset.Dataset, method cluster.Method, ks []int, optFns ...Option) (Result, error) {
	o := applyOptions(optFns)

	switch {
	case ds == nil || ds.Matrix() == nil:
		return nil, ErrNilData
	case method == nil:
		return nil, ErrNilMethod
	case len(ks) == 0:
		return nil, ErrEmptySweep
	case len(o.splitters) == 0:
		return nil, ErrNoSplitters
	}

	for _, k := range ks {
		if k < 1 {
			return nil, fmt.Errorf("sweep k=%d: %w", k, cluster.ErrInvalidK)
		}
	}

	if len(o.splitters) != len(o.spaces) {
		return nil, &ErrCountMismatch{Splitters: len(o.splitters), Spaces: len(o.spaces)}
	}

	for _, s := range o.spaces {
		if !s.valid() {
			return nil, &ErrSpace{Space: s}
		}
	}

	folds := enumerateFolds(o.splitters)
	if len(folds) == 0 {
		return nil, ErrNoFolds
	}

	runID := o.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	logger := o.logger.WithRun(runID)

	workers := o.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	logger.LogRunStart(ctx, len(folds), workers, ks)

	var (
		start    = time.Now()
		results  = make([]map[string]*mat.Dense, len(folds))
		progress = rate.NewLimiter(rate.Every(progressEvery), 1)
		done     atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, fold := range folds {
		g.Go(func() error {
			foldStart := time.Now()

			tables, err := runFold(gctx, ds, method, ks, fold, &o)

			o.collector.RecordFold(i, time.Since(foldStart), err)
			logger.LogFold(gctx, i, time.Since(foldStart), err)

			if err != nil {
				return fmt.Errorf("fold %d: %w", i, err)
			}

			results[i] = tables

			if n := done.Add(1); progress.Allow() {
				logger.LogProgress(gctx, int(n), len(folds))
			}

			return nil
		})
	}

	err := g.Wait()

	o.collector.RecordRun(len(folds), time.Since(start), err)
	logger.LogRun(ctx, len(folds), time.Since(start), err)

	if err != nil {
		return nil, err
	}

	return aggregate(results, len(ks))
}

// enumerateFolds crosses the pair sequences of all splitters. The last
// splitter varies fastest, so two splitters with 3 and 2 folds yield
// (0,0) (0,1) (1,0) (1,1) (2,0) (2,1).
func enumerateFolds(splitters []split.Splitter) [][]split.Pair {
	lists := make([][]split.Pair, len(splitters))

	total := 1
	for i, s := range splitters {
		lists[i] = slices.Collect(s.Pairs())
		total *= len(lists[i])
	}

	if total == 0 {
		return nil
	}

	folds := make([][]split.Pair, 0, total)
	idx := make([]int, len(lists))

	for {
		fold := make([]split.Pair, len(lists))
		for i, j := range idx {
			fold[i] = lists[i][j]
		}

		folds = append(folds, fold)

		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(lists[pos]) {
				break
			}

			idx[pos] = 0
			pos--
		}

		if pos < 0 {
			break
		}
	}

	return folds
}

// aggregate concatenates the per-fold score tables horizontally, in fold
// order. The metric key set of fold 0 is authoritative; a later fold
// missing one of its keys fails the run.
func aggregate(results []map[string]*mat.Dense, sweep int) (Result, error) {
	out := make(Result, len(results[0]))

	for key := range results[0] {
		table := mat.NewDense(2, sweep*len(results), nil)

		for f, fold := range results {
			ft, ok := fold[key]
			if !ok {
				return nil, &ErrFoldKey{Fold: f, Key: key}
			}

			for c := range sweep {
				table.Set(0, f*sweep+c, ft.At(0, c))
				table.Set(1, f*sweep+c, ft.At(1, c))
			}
		}

		out[key] = table
	}

	return out, nil
}
