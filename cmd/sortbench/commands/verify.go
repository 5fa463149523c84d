package commands

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gosulliv/sorted-collections/lib/list"
)

var errVerifyFailed = errors.New("[sortbench] verification failed")

func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the sorted-list properties on a randomized run",
		Long: `verify inserts n pseudo-random values, then checks through the
public contract only: ascending iteration, len consistency, rank
round-trips and positional access. Exits non-zero on any violation.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd)
		},
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer func() {
		_ = logger.Sync()
	}()

	n := viper.GetInt("n")
	seed := viper.GetInt64("seed")
	rng := rand.New(rand.NewSource(seed))

	sl, err := list.NewXSegl[int64](list.WithXSeglLoadFactor(viper.GetInt("load-factor")))
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		sl.Insert(rng.Int63n(int64(n) * 2))
	}

	var violations error

	// Ascending iteration and count.
	var visited int64
	prev := int64(-1 << 62)
	sl.Foreach(func(i int64, v int64) bool {
		if v < prev {
			violations = multierr.Append(violations,
				fmt.Errorf("order violated at position %d: %d < %d", i, v, prev))
			return false
		}
		prev = v
		visited++
		return true
	})
	if visited != sl.Len() {
		violations = multierr.Append(violations,
			fmt.Errorf("len mismatch: iterated %d, Len() %d", visited, sl.Len()))
	}

	// Rank round-trips on sampled probes.
	values := sl.Values()
	for i := 0; i < 1000 && sl.Len() > 0; i++ {
		probe := rng.Int63n(int64(n) * 2)
		var less int64
		for _, v := range values {
			if v < probe {
				less++
			}
		}
		if got := sl.Rank(probe); got != less {
			violations = multierr.Append(violations,
				fmt.Errorf("rank(%d) = %d, want %d", probe, got, less))
		}
	}

	// Positional access agrees with iteration order.
	for i := 0; i < 1000 && sl.Len() > 0; i++ {
		pos := rng.Int63n(sl.Len())
		got, getErr := sl.Get(pos)
		if getErr != nil {
			violations = multierr.Append(violations, getErr)
			continue
		}
		if got != values[pos] {
			violations = multierr.Append(violations,
				fmt.Errorf("get(%d) = %d, want %d", pos, got, values[pos]))
		}
	}

	if violations != nil {
		logger.Error(violations, "verification failed",
			zap.Int("n", n), zap.Int64("seed", seed))
		return multierr.Append(errVerifyFailed, violations)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s elements across %d segments, all properties hold\n",
		humanize.Comma(sl.Len()), sl.SegmentCount())
	return nil
}
