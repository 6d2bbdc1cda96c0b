// Package export writes visit records as numbered JSON files in the layout
// Safari's browsing-data import reads.
package export

import (
	"math"

	"github.com/runnerr0/chromium-export/internal/history"
)

// maxReported is the number of files that get a progress line when an
// export spans many files.
const maxReported = 10

// FileCount returns how many files Paginate yields for n records at size
// records per file. Zero records still produce one file.
func FileCount(n, size int) int {
	if size <= 0 {
		return 0
	}
	if n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate splits records into consecutive pages of at most size records,
// preserving order. An empty input yields a single empty page.
func Paginate(records []history.VisitRecord, size int) [][]history.VisitRecord {
	if len(records) == 0 {
		return [][]history.VisitRecord{{}}
	}

	pages := make([][]history.VisitRecord, 0, FileCount(len(records), size))
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		pages = append(pages, records[start:end])
	}
	return pages
}

// SampleIndices picks which of n files get a progress line: all of them
// when n <= 10, otherwise 10 indices spread evenly from first to last.
func SampleIndices(n int) map[int]bool {
	picked := make(map[int]bool, min(n, maxReported))
	if n <= maxReported {
		for i := 0; i < n; i++ {
			picked[i] = true
		}
		return picked
	}

	step := float64(n-1) / float64(maxReported-1)
	for j := 0; j < maxReported; j++ {
		picked[int(math.RoundToEven(step*float64(j)))] = true
	}
	return picked
}
