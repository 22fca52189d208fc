package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a SHA-256 content hash used to key cached artifacts.
type Digest [sha256.Size]byte

// HashBytes digests a source buffer.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// HashStrings digests a sequence of strings with length framing, so
// ("ab","c") and ("a","bc") do not collide.
func HashStrings(parts ...string) Digest {
	h := sha256.New()
	var lenbuf [8]byte
	for _, p := range parts {
		n := len(p)
		for i := 0; i < 8; i++ {
			lenbuf[i] = byte(n >> (8 * i))
		}
		h.Write(lenbuf[:])
		h.Write([]byte(p))
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Combine derives a digest from a unit's own content digest and the
// digests of its dependencies. Callers must pass deps in a deterministic
// order.
func Combine(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	h.Write(content[:])
	for _, d := range deps {
		h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// IsZero reports whether the digest is the all-zero value.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
