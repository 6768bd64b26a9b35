package reconcile

import "fmt"

// Chunk splits items into consecutive slices of at most n elements.
// Marketplace import endpoints cap the batch size per request (Ozon:
// 100 stocks, 900 prices), so upload batches are sent chunk by chunk.
// The returned slices share the backing array of items.
func Chunk[T any](items []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", n)
	}

	chunks := make([][]T, 0, (len(items)+n-1)/n)
	for start := 0; start < len(items); start += n {
		end := start + n
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks, nil
}
