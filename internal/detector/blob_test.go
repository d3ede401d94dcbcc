package detector

import (
	"math"
	"testing"
)

// fillRect marks a rectangular region of the mask as foreground.
// x1/y1 are inclusive, x2/y2 exclusive.
func fillRect(m *Mask, x1, y1, x2, y2 int) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			m.Set(x, y, 1)
		}
	}
}

func TestExtractLargestBlob_EmptyMask(t *testing.T) {
	m := NewMask(10, 10)

	blob := ExtractLargestBlob(m)

	if blob.Size != 0 {
		t.Errorf("Size = %d, want 0 for all-background mask", blob.Size)
	}
	if len(blob.Members) != 0 {
		t.Errorf("Members has %d entries, want 0", len(blob.Members))
	}
}

func TestExtractLargestBlob_KeepsLargerRegion(t *testing.T) {
	// Two disjoint regions: 5x10 = 50 pixels and 20x10 = 200 pixels.
	m := NewMask(40, 40)
	fillRect(m, 1, 1, 11, 6)    // 50 pixels
	fillRect(m, 15, 10, 35, 20) // 200 pixels

	blob := ExtractLargestBlob(m)

	if blob.Size != 200 {
		t.Fatalf("Size = %d, want 200", blob.Size)
	}

	// Centroid of the 200-pixel region: x in [15, 34], y in [10, 19].
	wantX, wantY := 24.5, 14.5
	if math.Abs(blob.CentroidX-wantX) > 1e-9 {
		t.Errorf("CentroidX = %f, want %f", blob.CentroidX, wantX)
	}
	if math.Abs(blob.CentroidY-wantY) > 1e-9 {
		t.Errorf("CentroidY = %f, want %f", blob.CentroidY, wantY)
	}
}

func TestExtractLargestBlob_TieGoesToFirstInRasterOrder(t *testing.T) {
	// Two 2x2 regions of equal size; the one discovered first in raster
	// order must win (strictly-greater comparison when updating).
	m := NewMask(20, 20)
	fillRect(m, 2, 2, 4, 4)
	fillRect(m, 10, 10, 12, 12)

	blob := ExtractLargestBlob(m)

	if blob.Size != 4 {
		t.Fatalf("Size = %d, want 4", blob.Size)
	}
	if blob.CentroidX != 2.5 || blob.CentroidY != 2.5 {
		t.Errorf("centroid = (%f, %f), want (2.5, 2.5) for the first region",
			blob.CentroidX, blob.CentroidY)
	}
}

func TestExtractLargestBlob_FourConnectivity(t *testing.T) {
	// Two pixels touching only diagonally are separate blobs under
	// 4-connectivity.
	m := NewMask(5, 5)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	m.Set(3, 2, 1)

	blob := ExtractLargestBlob(m)

	if blob.Size != 2 {
		t.Errorf("Size = %d, want 2 (diagonal neighbors must not merge)", blob.Size)
	}
}

func TestExtractLargestBlob_LShape(t *testing.T) {
	// An L-shaped region is a single 4-connected component.
	m := NewMask(10, 10)
	fillRect(m, 2, 2, 4, 8) // vertical bar, 2x6
	fillRect(m, 4, 6, 8, 8) // horizontal bar, 4x2

	blob := ExtractLargestBlob(m)

	if blob.Size != 20 {
		t.Errorf("Size = %d, want 20", blob.Size)
	}
}
