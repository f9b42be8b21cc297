package aes256

// forEachChunk iterates over blockSize-byte chunks of data without allocation.
// A trailing partial chunk is passed with its actual size.
func forEachChunk(data []byte, blockSize int, fn func([]byte)) {
	if blockSize <= 0 {
		panic("forEachChunk: blockSize must be positive")
	}

	numFullBlocks := len(data) / blockSize
	for i := 0; i < numFullBlocks; i++ {
		start := i * blockSize
		fn(data[start : start+blockSize])
	}

	remainder := len(data) % blockSize
	if remainder != 0 {
		fn(data[len(data)-remainder:])
	}
}
