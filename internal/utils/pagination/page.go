package pagination

import (
	"fmt"
)

// Page is an offset/limit window over an ordered result set.
type Page struct {
	Size   int
	Offset int
}

// Validate rejects unusable windows. A non-positive size is an input error;
// an offset past the end of the data is not (it yields an empty page).
func (p Page) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("page size must be positive, got %d", p.Size)
	}
	if p.Offset < 0 {
		return fmt.Errorf("page offset must not be negative, got %d", p.Offset)
	}
	return nil
}

// Bounds returns the [start, end) slice indices of the window over a result
// set of totalCount rows, plus whether rows remain after the window.
func (p Page) Bounds(totalCount int) (start, end int, hasMore bool) {
	if p.Offset >= totalCount {
		return totalCount, totalCount, false
	}
	start = p.Offset
	end = p.Offset + p.Size
	if end > totalCount {
		end = totalCount
	}
	return start, end, end < totalCount
}
