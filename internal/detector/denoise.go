package detector

// majorityThreshold is the minimum 3x3 neighborhood sum (including the pixel
// itself) for a pixel to survive denoising. 5 of 9 is a strict majority.
const majorityThreshold = 5

// Denoise removes speckle from a binary mask with a 3x3 majority vote.
//
// Each interior pixel becomes 1 iff at least 5 of the 9 cells in its 3x3
// neighborhood are 1. Border pixels keep their input value. The operation has
// no sequential dependency between pixels, so it reads only from the input
// mask and writes a fresh output.
func Denoise(m *Mask) *Mask {
	out := NewMask(m.Width, m.Height)
	copy(out.Bits, m.Bits)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				row := (y + dy) * m.Width
				for dx := -1; dx <= 1; dx++ {
					sum += int(m.Bits[row+x+dx])
				}
			}
			if sum >= majorityThreshold {
				out.Bits[y*m.Width+x] = 1
			} else {
				out.Bits[y*m.Width+x] = 0
			}
		}
	}
	return out
}
