package aes256

import (
	"crypto/cipher"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the smallest input, in blocks, that is split across
// goroutines.
const parallelThreshold = 64

type ecb struct {
	b         cipher.Block
	blockSize int
	workers   int
}

func newECB(b cipher.Block) *ecb {
	return &ecb{
		b:         b,
		blockSize: b.BlockSize(),
		workers:   runtime.GOMAXPROCS(0),
	}
}

type ecbEncrypter ecb

// NewECBEncrypter returns a BlockMode which encrypts each block of its input
// independently with b. Equal plaintext blocks give equal ciphertext blocks.
func NewECBEncrypter(b cipher.Block) cipher.BlockMode {
	return (*ecbEncrypter)(newECB(b))
}

func (x *ecbEncrypter) BlockSize() int { return x.blockSize }

func (x *ecbEncrypter) CryptBlocks(dst, src []byte) {
	(*ecb)(x).crypt(dst, src, x.b.Encrypt)
}

type ecbDecrypter ecb

// NewECBDecrypter returns a BlockMode which decrypts each block of its input
// independently with b.
func NewECBDecrypter(b cipher.Block) cipher.BlockMode {
	return (*ecbDecrypter)(newECB(b))
}

func (x *ecbDecrypter) BlockSize() int { return x.blockSize }

func (x *ecbDecrypter) CryptBlocks(dst, src []byte) {
	(*ecb)(x).crypt(dst, src, x.b.Decrypt)
}

// crypt applies fn to every block of src. Large inputs are cut into contiguous
// runs of blocks, one per worker; each worker writes only its own range of dst,
// so block order is preserved.
func (x *ecb) crypt(dst, src []byte, fn func(dst, src []byte)) {
	if len(src)%x.blockSize != 0 {
		panic("aes256/ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("aes256/ecb: output smaller than input")
	}

	n := len(src) / x.blockSize
	if n < parallelThreshold || x.workers < 2 {
		cryptRange(dst, src, x.blockSize, fn)
		return
	}

	per := (n + x.workers - 1) / x.workers
	var g errgroup.Group
	g.SetLimit(x.workers)
	for start := 0; start < n; start += per {
		end := min(start+per, n)
		lo, hi := start*x.blockSize, end*x.blockSize
		g.Go(func() error {
			cryptRange(dst[lo:hi], src[lo:hi], x.blockSize, fn)
			return nil
		})
	}
	_ = g.Wait()
}

func cryptRange(dst, src []byte, blockSize int, fn func(dst, src []byte)) {
	forEachChunk(src, blockSize, func(block []byte) {
		fn(dst[:blockSize], block)
		dst = dst[blockSize:]
	})
}
