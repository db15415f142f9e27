package cmd

import (
	"context"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	digest "github.com/Giulio2002/faster_digest"
)

// hashLines computes every configured digest of every line. Lines are spread
// over at most config.Workers goroutines; results keep the input order.
func hashLines(ctx context.Context, config *Config, lines []string) ([][]digest.Digest, error) {
	results := make([][]digest.Digest, len(lines))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(config.Workers)
	for i, line := range lines {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sums := make([]digest.Digest, len(config.Algorithms))
			for j, alg := range config.Algorithms {
				sum, err := digest.SumString(alg, line)
				if err != nil {
					return errors.Wrapf(err, "line %d", i+1)
				}
				sums[j] = sum
			}
			results[i] = sums
			glog.V(1).Infof("hashLines: line %d hashed with %d algorithms", i+1, len(sums))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		glog.Errorf("hashLines: %v", err)
		return nil, err
	}
	return results, nil
}
