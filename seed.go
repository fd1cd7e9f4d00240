package ndrand

import (
	"crypto/rand"
	"encoding/binary"
)

// CryptoSeed returns a nondeterministic seed value obtained from the
// operating system's entropy source (crypto/rand). Use it to seed an
// Engine when reproducibility is not wanted:
//
//	eng := ndrand.NewPCG(ndrand.CryptoSeed())
//
// CryptoSeed panics if the entropy source fails, which on supported
// platforms cannot happen in practice.
func CryptoSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}
