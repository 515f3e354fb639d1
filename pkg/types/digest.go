package types

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// digest accumulates field values into a 64-bit xxhash. Each field is
// terminated so that ("ab", "c") and ("a", "bc") hash differently.
type digest struct {
	d *xxhash.Digest
}

func newDigest(kind string) digest {
	d := digest{d: xxhash.New()}
	d.str(kind)
	return d
}

func (d digest) str(s string) digest {
	_, _ = d.d.WriteString(s)
	_, _ = d.d.Write([]byte{0})
	return d
}

func (d digest) u64(v uint64) digest {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.d.Write(buf[:])
	return d
}

func (d digest) sum() uint64 {
	return d.d.Sum64()
}
