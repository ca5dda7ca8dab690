// Package pool provides pooled scratch buffers for the patch apply loop.
package pool

import "sync"

// ChunkSize is the length of the scratch buffer used to stage original
// bytes while the diff stream is added to them. Copy steps longer than
// this are processed in ChunkSize pieces.
const ChunkSize = 64 * 1024

var chunkPool = sync.Pool{
	New: func() any {
		b := make([]byte, ChunkSize)
		return &b
	},
}

// GetChunk retrieves a ChunkSize scratch buffer from the pool.
//
// The caller must call the returned cleanup function (typically with
// defer) to return the buffer to the pool.
//
// Returns:
//   - []byte: A buffer with length ChunkSize
//   - func(): Cleanup function returning the buffer to the pool
func GetChunk() ([]byte, func()) {
	ptr, _ := chunkPool.Get().(*[]byte)

	return *ptr, func() { chunkPool.Put(ptr) }
}
