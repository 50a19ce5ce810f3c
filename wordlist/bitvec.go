package wordlist

import "math/bits"

// Bitvec is a set of dictionary indices.
type Bitvec struct {
	Bytes []uint64
	Size  int
	Count int
}

func NewBitvec(size int) *Bitvec {
	numBytes := (size + 63) / 64
	return &Bitvec{
		Bytes: make([]uint64, numBytes),
		Size:  size,
		Count: 0,
	}
}

// Full returns a Bitvec with every index below size set.
func Full(size int) *Bitvec {
	bv := NewBitvec(size)
	for i := range size {
		bv.Set(i)
	}
	return bv
}

// Set adds index to the set. Indices outside [0, Size) are ignored.
func (bv *Bitvec) Set(index int) {
	if index < 0 || index >= bv.Size {
		return
	}
	byteIndex := index / 64
	bitIndex := index % 64
	if (bv.Bytes[byteIndex] & (1 << bitIndex)) == 0 {
		bv.Bytes[byteIndex] |= 1 << bitIndex
		bv.Count++
	}
}

func (bv *Bitvec) Get(index int) bool {
	if index < 0 || index >= bv.Size {
		return false
	}
	byteIndex := index / 64
	bitIndex := index % 64
	return (bv.Bytes[byteIndex] & (1 << bitIndex)) != 0
}

// And returns the intersection of bv and other.
func (bv *Bitvec) And(other *Bitvec) *Bitvec {
	minLen := min(len(other.Bytes), len(bv.Bytes))

	result := &Bitvec{Bytes: make([]uint64, minLen), Size: min(bv.Size, other.Size), Count: 0}
	for i := range minLen {
		result.Bytes[i] = bv.Bytes[i] & other.Bytes[i]
		result.Count += bits.OnesCount64(result.Bytes[i])
	}
	return result
}

// Indices returns the set indices in increasing order.
func (bv *Bitvec) Indices() []int {
	ret := make([]int, 0, bv.Count)
	for i, b := range bv.Bytes {
		for b != 0 {
			j := bits.TrailingZeros64(b)
			ret = append(ret, i*64+j)
			b &= b - 1
		}
	}
	return ret
}
