package sparse

const hashSeed = 0x2545F4914F6CDD1D

// fmix64 is the MurmurHash3 64-bit finalizer.
func fmix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func mixEntry(valueHash uint64, index int) uint64 {
	return fmix64(valueHash ^ fmix64(uint64(index)+hashSeed))
}

// Hash returns a hash consistent with Equal.
//
// Entries equal to the default do not contribute, and entries are combined
// by addition so the result does not depend on store order. The count folded
// into the final mix is the number of contributing entries, not ActiveSize.
func (v *Vector[E]) Hash() uint64 {
	def := v.table.Default()
	var sum uint64
	n := 0
	for i, x := range v.table.Active() {
		if v.ring.Equal(x, def) {
			continue
		}
		sum += mixEntry(v.ring.Hash(x), i)
		n++
	}
	return fmix64(sum ^ fmix64(uint64(n)^hashSeed))
}
