package detector

// Blob is a 4-connected foreground region of a mask. Member pixels are
// stored as flat indices (y*width + x) in discovery order.
type Blob struct {
	Members   []int
	Size      int
	CentroidX float64
	CentroidY float64
}

// ExtractLargestBlob finds the largest 4-connected foreground region in the
// mask. Seeds are visited in raster order for determinism, and each region is
// filled with an explicit FIFO queue over a visited bitmap rather than
// recursion, so memory stays bounded by the mask area. Ties go to the region
// discovered first (strictly-greater comparison). An all-background mask
// yields a Blob of size 0.
func ExtractLargestBlob(m *Mask) *Blob {
	visited := make([]bool, len(m.Bits))
	largest := &Blob{}

	for start := 0; start < len(m.Bits); start++ {
		if m.Bits[start] == 0 || visited[start] {
			continue
		}

		members := floodFill(m, visited, start)
		if len(members) > largest.Size {
			largest = newBlob(members, m.Width)
		}
	}
	return largest
}

// floodFill collects the 4-connected region containing start, marking every
// member in the visited bitmap.
func floodFill(m *Mask, visited []bool, start int) []int {
	queue := []int{start}
	visited[start] = true
	var members []int

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		members = append(members, idx)

		x := idx % m.Width
		y := idx / m.Width

		// 4-connectivity: left, right, up, down.
		if x > 0 {
			queue = push(m, visited, queue, idx-1)
		}
		if x < m.Width-1 {
			queue = push(m, visited, queue, idx+1)
		}
		if y > 0 {
			queue = push(m, visited, queue, idx-m.Width)
		}
		if y < m.Height-1 {
			queue = push(m, visited, queue, idx+m.Width)
		}
	}
	return members
}

func push(m *Mask, visited []bool, queue []int, idx int) []int {
	if m.Bits[idx] == 0 || visited[idx] {
		return queue
	}
	visited[idx] = true
	return append(queue, idx)
}

// newBlob builds a Blob from member indices, computing the centroid as the
// arithmetic mean of member coordinates.
func newBlob(members []int, width int) *Blob {
	var sumX, sumY float64
	for _, idx := range members {
		sumX += float64(idx % width)
		sumY += float64(idx / width)
	}
	n := float64(len(members))
	return &Blob{
		Members:   members,
		Size:      len(members),
		CentroidX: sumX / n,
		CentroidY: sumY / n,
	}
}
