package detector

import "testing"

func TestComputeFeatures_BoundingBox(t *testing.T) {
	// A 3x2 rectangle at (4,5)..(6,6).
	m := NewMask(10, 10)
	fillRect(m, 4, 5, 7, 7)
	blob := ExtractLargestBlob(m)

	f := ComputeFeatures(blob, m.Width)

	if f == nil {
		t.Fatal("ComputeFeatures returned nil for non-empty blob")
	}
	if f.Left != 4 || f.Right != 6 || f.Top != 5 || f.Bottom != 6 {
		t.Errorf("bbox = (%d,%d,%d,%d), want (4,6,5,6)", f.Left, f.Right, f.Top, f.Bottom)
	}
	if f.Width != 2 || f.Height != 1 {
		t.Errorf("size = %dx%d, want 2x1", f.Width, f.Height)
	}
	if f.AspectRatio != 2.0 {
		t.Errorf("AspectRatio = %f, want 2.0", f.AspectRatio)
	}
}

func TestComputeFeatures_EmptyBlob(t *testing.T) {
	if got := ComputeFeatures(&Blob{}, 10); got != nil {
		t.Errorf("ComputeFeatures(empty) = %+v, want nil", got)
	}
	if got := ComputeFeatures(nil, 10); got != nil {
		t.Errorf("ComputeFeatures(nil) = %+v, want nil", got)
	}
}

func TestComputeFeatures_AspectRatioSentinel(t *testing.T) {
	// A single-row blob has a zero-height bounding box; the aspect ratio
	// must come back as the sentinel, never a division result.
	m := NewMask(10, 3)
	fillRect(m, 2, 1, 8, 2)
	blob := ExtractLargestBlob(m)

	f := ComputeFeatures(blob, m.Width)

	if f.Height != 0 {
		t.Fatalf("Height = %d, want 0", f.Height)
	}
	if f.AspectRatio != AspectRatioUndefined {
		t.Errorf("AspectRatio = %f, want sentinel %d", f.AspectRatio, AspectRatioUndefined)
	}
}

// buildSpikedBlob constructs a blob whose sampled member pixels are fully
// controlled: sample slots (every 10th member) hold designed points and the
// filler members form a vertical line symmetric around the centroid, so the
// centroid stays at exactly (500, 500).
func buildSpikedBlob(t *testing.T, samples [][2]int) *Blob {
	t.Helper()

	const width = 1000
	members := make([]int, 0, len(samples)*fingerSampleStride)
	filler := 0
	for i := 0; i < len(samples)*fingerSampleStride; i++ {
		if i%fingerSampleStride == 0 {
			p := samples[i/fingerSampleStride]
			members = append(members, p[1]*width+p[0])
			continue
		}
		// Symmetric filler pairs above/below the centroid.
		j := filler/2 + 1
		if filler%2 == 0 {
			members = append(members, (500+j)*width+500)
		} else {
			members = append(members, (500-j)*width+500)
		}
		filler++
	}

	return newBlob(members, width)
}

func TestEstimateFingerCount_TwoSpikes(t *testing.T) {
	// 20 sampled points: 14 close to the centroid (distances 4..10) and 6
	// far away, 3 pointing right (angle bin 0) and 3 pointing left (angle
	// bin 6). The far 30% cutoff keeps exactly the 6 spike points, giving
	// two bins with more than one point.
	samples := [][2]int{
		// near, symmetric pairs at distances 4..10
		{504, 500}, {496, 500},
		{505, 500}, {495, 500},
		{506, 500}, {494, 500},
		{507, 500}, {493, 500},
		{508, 500}, {492, 500},
		{509, 500}, {491, 500},
		{510, 500}, {490, 500},
		// far, two opposite spikes at distances 96, 98, 100
		{600, 500}, {400, 500},
		{598, 500}, {402, 500},
		{596, 500}, {404, 500},
	}
	blob := buildSpikedBlob(t, samples)
	if blob.CentroidX != 500 || blob.CentroidY != 500 {
		t.Fatalf("centroid = (%f, %f), want (500, 500)", blob.CentroidX, blob.CentroidY)
	}

	f := ComputeFeatures(blob, 1000)

	if f.FingerCount != 2 {
		t.Errorf("FingerCount = %d, want 2", f.FingerCount)
	}
}

func TestEstimateFingerCount_CompactBlobClampsToOne(t *testing.T) {
	// A compact square: no direction dominates, so the count clamps to the
	// lower bound of 1.
	m := NewMask(50, 50)
	fillRect(m, 20, 20, 26, 26)
	blob := ExtractLargestBlob(m)

	f := ComputeFeatures(blob, m.Width)

	if f.FingerCount != 1 {
		t.Errorf("FingerCount = %d, want 1 for compact blob", f.FingerCount)
	}
}

func TestEstimateFingerCount_TinyBlob(t *testing.T) {
	// Fewer than two samples: the estimate falls back to 1.
	m := NewMask(10, 10)
	fillRect(m, 4, 4, 7, 6)
	blob := ExtractLargestBlob(m)

	f := ComputeFeatures(blob, m.Width)

	if f.FingerCount != 1 {
		t.Errorf("FingerCount = %d, want 1 for tiny blob", f.FingerCount)
	}
}
