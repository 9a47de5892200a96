package quicksort

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kabu1204/go-vector/types"
	"github.com/panjf2000/ants/v2"
)

type span struct{ from, to int }

// sortParallel partitions on the calling goroutine until the pending ranges
// are small enough or numerous enough, then sorts each of them on the pool.
// Ranges are disjoint, so workers never touch the same index.
func sortParallel[T any](c Container[T], compare types.Comparator[T], n int, conf *config) error {
	s := sequenceOf(c)
	maxLeaves := conf.parallelism * 4
	pending := []span{{0, n - 1}}
	leaves := make([]span, 0, maxLeaves)
	for len(pending) > 0 {
		r := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if r.from >= r.to {
			continue
		}
		if r.to-r.from < conf.threshold || len(leaves)+len(pending) >= maxLeaves {
			leaves = append(leaves, r)
			continue
		}
		left, right := partition(s, compare, r.from, r.to)
		pending = append(pending, span{r.from, right}, span{left, r.to})
	}
	if err := s.error(); err != nil {
		return err
	}

	pool, err := ants.NewPool(conf.parallelism)
	if err != nil {
		return fmt.Errorf("quicksort: creating pool: %w", err)
	}
	defer pool.Release()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, r := range leaves {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			ls := sequenceOf(c)
			sortRange(ls, compare, r.from, r.to)
			if err := ls.error(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("quicksort: submitting range [%d, %d]: %w", r.from, r.to, err))
			mu.Unlock()
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}
