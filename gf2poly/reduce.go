package gf2poly

// wordBit returns the bit index split into (limb index, bit-within-limb).
func wordBit(pos int) (limb, bit int) {
	return pos >> 5, pos & 31
}

// Coeff returns bit i of the polynomial packed in p.
func Coeff(p []uint32, i int) uint32 {
	limb, bit := wordBit(i)
	return (p[limb] >> uint(bit)) & 1
}

// SetCoeff sets bit i of the polynomial packed in p.
func SetCoeff(p []uint32, i int) {
	limb, bit := wordBit(i)
	p[limb] |= uint32(1) << uint(bit)
}

// copyBits copies the half-open bit range [start, end) of a into the start
// of r, left-justified. a and r must not overlap.
func copyBits(r, a []uint32, start, end int) {
	left := start & 31
	right := 32 - left
	length := end - start
	n := length >> 5
	a = a[start>>5:]

	if left != 0 {
		for i := 0; i < n; i++ {
			r[i] = (a[i] >> uint(left)) | (a[i+1] << uint(right))
		}
	} else {
		copy(r[:n], a[:n])
	}

	if rem := length & 31; rem != 0 {
		r[n] = a[n] >> uint(left)
		if left != 0 && end&31 != 0 {
			r[n] |= a[n+1] << uint(right)
		}
		r[n] &= (uint32(1) << uint(rem)) - 1
	}
}

// shiftedAdd computes r += a << shift, where a holds n limbs and r holds at
// least n+1 limbs. shift must be smaller than 32.
func shiftedAdd(r, a []uint32, n, shift int) {
	if shift == 0 {
		for i := 0; i < n; i++ {
			r[i] ^= a[i]
		}
		return
	}

	right := 32 - shift
	var prev uint32
	for i := 0; i < n; i++ {
		r[i] ^= (a[i] << uint(shift)) | (prev >> uint(right))
		prev = a[i]
	}
	r[n] ^= prev >> uint(right)
}

// ModPhiScratchLimbs is the number of limbs a ModPhi scratch buffer needs:
// at least the width of the widest block in phiBlockPos (623 bits, 20
// limbs), with room to spare.
const ModPhiScratchLimbs = 32

// ModPhi reduces r modulo the MT19937 minimal polynomial phi (degree
// 19937), in place. r must hold enough limbs to represent the unreduced
// product (up to degree 2*19936); every bit at or above degree 39875 must
// already be zero, which holds for any product of two operands of degree
// less than 19937. tmp is scratch space of at least ModPhiScratchLimbs
// limbs.
//
// The algorithm is the sparse fast-reduction scheme from the Boost
// polynomial library, specialised to phi: phi is restated as 33
// descending blocks (phiBlockPos) and the bit positions where phi itself
// has a nonzero coefficient (phiBitPos); each block is folded into the
// positions phi's bits would push it to, one shifted-XOR-add per nonzero
// bit of phi.
func ModPhi(r, tmp []uint32) {
	for i := 0; i < len(phiBlockPos)-1; i++ {
		start := phiBlockPos[i+1]
		end := phiBlockPos[i]
		size := (end - start + 31) >> 5

		copyBits(tmp, r, start, end)
		for _, bitPos := range phiBitPos {
			pos := bitPos + start - mt19937PolyDegree
			limb, bit := wordBit(pos)
			shiftedAdd(r[limb:], tmp, size, bit)
		}
		limb, bit := wordBit(start)
		shiftedAdd(r[limb:], tmp, size, bit)
	}
}

const mt19937PolyDegree = 19937

// phiBitPos lists the bit positions, in ascending order, where the
// MT19937 minimal polynomial phi has a nonzero coefficient (excluding its
// degree-19937 leading term, handled implicitly by phiBlockPos ending at
// 19937).
var phiBitPos = [134]int{
	0, 1189, 1416, 1585, 1643, 1870, 2493, 2773, 3000, 3227, 3454, 3681, 3908, 4135,
	4362, 4753, 5661, 6337, 6569, 7129, 7477, 7525, 7583, 7752, 7979, 8206,
	9505, 9901, 9969, 10128, 10693, 10761, 10920, 11089, 11147, 11157, 11215, 11321,
	11374, 11384, 11485, 11611, 11712, 11717, 11838, 11881, 11944, 11997, 12277, 12335,
	12393, 12504, 12509, 12620, 12673, 12731, 12736, 12789, 12905, 12958, 12963, 13137,
	13185, 13190, 13243, 13301, 13412, 13528, 13533, 13639, 13697, 13760, 13813, 13866,
	14093, 14151, 14209, 14320, 14325, 14436, 14547, 14552, 14605, 14721, 14774, 14779,
	14953, 15001, 15006, 15059, 15117, 15228, 15344, 15349, 15455, 15513, 15576, 15629,
	15682, 15909, 15967, 16025, 16136, 16141, 16252, 16363, 16368, 16421, 16537, 16590,
	16595, 16817, 16822, 16875, 16933, 17044, 17160, 17271, 17329, 17445, 17498, 17725,
	17783, 17841, 17952, 18068, 18179, 18237, 18406, 18633, 18691, 18860, 19087, 19314,
}

// phiBlockPos lists descending block boundaries used to fold the
// reduction into 33 passes instead of one per degree.
var phiBlockPos = [34]int{
	39875, 39252, 38629, 38006, 37383, 36760, 36137, 35514, 34891, 34268, 33645, 33022,
	32399, 31776, 31153, 30530, 29907, 29284, 28661, 28038, 27415, 26792, 26169,
	25546, 24923, 24300, 23677, 23054, 22431, 21808, 21185, 20562, 19939, 19937,
}
