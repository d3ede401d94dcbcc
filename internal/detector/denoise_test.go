package detector

import "testing"

// maskFromRows builds a mask from a string grid where '1' is foreground and
// anything else is background.
func maskFromRows(t *testing.T, rows []string) *Mask {
	t.Helper()

	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != m.Width {
			t.Fatalf("row %d has length %d, want %d", y, len(row), m.Width)
		}
		for x := 0; x < len(row); x++ {
			if row[x] == '1' {
				m.Set(x, y, 1)
			}
		}
	}
	return m
}

func assertMaskEquals(t *testing.T, got *Mask, want []string) {
	t.Helper()

	for y, row := range want {
		for x := 0; x < len(row); x++ {
			var wantBit uint8
			if row[x] == '1' {
				wantBit = 1
			}
			if got.At(x, y) != wantBit {
				t.Errorf("mask(%d,%d) = %d, want %d", x, y, got.At(x, y), wantBit)
			}
		}
	}
}

func TestDenoise_MajorityVote(t *testing.T) {
	// A 3x3 block of foreground inside a 1-pixel border of background.
	// The corner pixels of the block see a 3x3 neighborhood sum of 4 (< 5)
	// and are removed; the edge midpoints see 6 and the center sees 9, so
	// they survive. The border copies its input value.
	input := maskFromRows(t, []string{
		"00000",
		"01110",
		"01110",
		"01110",
		"00000",
	})

	got := Denoise(input)

	assertMaskEquals(t, got, []string{
		"00000",
		"00100",
		"01110",
		"00100",
		"00000",
	})
}

func TestDenoise_RemovesSpeckle(t *testing.T) {
	// Isolated single pixels have a neighborhood sum of 1 and disappear.
	input := maskFromRows(t, []string{
		"00000",
		"00000",
		"00100",
		"00000",
		"00001",
	})

	got := Denoise(input)

	if got.At(2, 2) != 0 {
		t.Error("isolated interior pixel should be removed")
	}
	// Border pixels keep their input value.
	if got.At(4, 4) != 1 {
		t.Error("border pixel should keep its input value")
	}
}

func TestDenoise_DoesNotMutateInput(t *testing.T) {
	input := maskFromRows(t, []string{
		"000",
		"010",
		"000",
	})

	Denoise(input)

	if input.At(1, 1) != 1 {
		t.Error("Denoise mutated its input mask")
	}
}

func TestDenoise_FullMask(t *testing.T) {
	input := maskFromRows(t, []string{
		"11111",
		"11111",
		"11111",
		"11111",
		"11111",
	})

	got := Denoise(input)

	// Every interior neighborhood sums to 9; everything stays foreground.
	assertMaskEquals(t, got, []string{
		"11111",
		"11111",
		"11111",
		"11111",
		"11111",
	})
}
