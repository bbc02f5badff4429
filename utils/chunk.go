package utils

import (
	"errors"
	"fmt"
	"iter"
)

// ErrChunkSize is returned when a chunk size is zero or negative.
var ErrChunkSize = errors.New("chunk size must be positive")

// Chunk splits items into sub-slices of length size; the last chunk holds the
// remainder. Element order is preserved and concatenating the chunks
// reconstructs items. The sub-slices share backing storage with items.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, size)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range ChunkSeq(items, size) {
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// ChunkSeq is the lazy form of Chunk. A non-positive size yields an empty
// sequence; use Chunk when the size needs validating.
func ChunkSeq[T any](items []T, size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(items[start:end]) {
				return
			}
		}
	}
}
