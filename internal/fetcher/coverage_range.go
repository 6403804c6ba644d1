package fetcher

import "fmt"

// BlockRange is an inclusive range of block numbers.
type BlockRange struct {
	FromBlock uint64
	ToBlock   uint64
}

func (r BlockRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.FromBlock, r.ToBlock)
}

// Len returns the number of blocks in the range.
func (r BlockRange) Len() uint64 {
	return r.ToBlock - r.FromBlock + 1
}

// Halves splits the range into two non-empty parts. A single-block range cannot be split.
func (r BlockRange) Halves() (BlockRange, BlockRange, bool) {
	if r.FromBlock >= r.ToBlock {
		return r, BlockRange{}, false
	}

	mid := r.FromBlock + (r.ToBlock-r.FromBlock)/2 //nolint:mnd
	return BlockRange{FromBlock: r.FromBlock, ToBlock: mid},
		BlockRange{FromBlock: mid + 1, ToBlock: r.ToBlock},
		true
}

// Partition splits the range around sub, returning the pieces in block order so that
// together they cover the range exactly once. ok is false when sub is not a proper,
// non-empty sub-range.
func (r BlockRange) Partition(sub BlockRange) ([]BlockRange, bool) {
	if sub.FromBlock > sub.ToBlock ||
		sub.FromBlock < r.FromBlock || sub.ToBlock > r.ToBlock ||
		sub == r {
		return nil, false
	}

	parts := make([]BlockRange, 0, 3) //nolint:mnd
	if sub.FromBlock > r.FromBlock {
		parts = append(parts, BlockRange{FromBlock: r.FromBlock, ToBlock: sub.FromBlock - 1})
	}
	parts = append(parts, sub)
	if sub.ToBlock < r.ToBlock {
		parts = append(parts, BlockRange{FromBlock: sub.ToBlock + 1, ToBlock: r.ToBlock})
	}

	return parts, true
}
