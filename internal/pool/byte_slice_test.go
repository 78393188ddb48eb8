package pool_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/lestrrat-go/textkit/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestByteSliceReuse(t *testing.T) {
	bs := pool.ByteSlice()
	b := bs.Get()
	require.Len(t, b, 0, "fresh slice should be empty")
	require.GreaterOrEqual(t, cap(b), 64, "fresh slice should have the default capacity")

	b = append(b, "TWFu"...)
	bs.Put(b)

	b = bs.Get()
	require.Len(t, b, 0, "recycled slice should be reset")

	big := bs.GetCapacity(4096)
	require.Len(t, big, 0)
	require.GreaterOrEqual(t, cap(big), 4096, "GetCapacity should honor the requested size")
	bs.Put(big)
}

func TestByteSliceConcurrent(t *testing.T) {
	const workers = 32
	const size = 200

	bs := pool.ByteSlice()
	results := make([][]byte, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			b := bs.GetCapacity(size)
			defer bs.Put(b)
			for range size {
				b = append(b, byte('A'+i%26))
			}
			results[i] = bytes.Clone(b)
		}()
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, bytes.Repeat([]byte{byte('A' + i%26)}, size), got, "worker %d saw foreign data", i)
	}
}
