//go:build linux

package scan

import (
	"golang.org/x/sync/errgroup"

	"github.com/portslayer/portslayer/pkg/model"
)

// Scan collects both sources and merges them into one sorted,
// deduplicated port list. Source failures are absorbed at the source
// (an unavailable source contributes nothing); a fully failed scan is
// an empty list, never an error.
func Scan() []model.PortRecord {
	var cmdRecords, kernelRecords []model.PortRecord

	var g errgroup.Group
	g.Go(func() error {
		cmdRecords = collectCommandSource()
		return nil
	})
	g.Go(func() error {
		kernelRecords = collectKernelSource()
		return nil
	})
	g.Wait() //nolint:errcheck // the collectors absorb all failures

	return Merge(cmdRecords, kernelRecords)
}
