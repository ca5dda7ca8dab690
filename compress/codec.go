package compress

// Compressor compresses a complete in-memory block.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete in-memory block.
//
// Implementations validate the stream format and return an error if the
// data is corrupted or was produced by an incompatible algorithm.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}
