package quicksort

const defaultThreshold = 4096

type config struct {
	parallelism int
	threshold   int
}

type Option func(*config)

// WithParallelism sorts independent partitions on a pool of n workers.
// n <= 1 keeps the sort on the calling goroutine.
func WithParallelism(n int) Option { return func(c *config) { c.parallelism = n } }

// WithThreshold sets the range size below which a partition is no longer
// split for the pool. Values below 2 are ignored.
func WithThreshold(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.threshold = n
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{threshold: defaultThreshold}
	for _, o := range opts {
		o(c)
	}
	return c
}
