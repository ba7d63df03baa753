package kernels

import (
	"image"
	"testing"
)

func TestStretchContrastConcrete(t *testing.T) {
	// lower=50, upper=150: 50 clamps to 0, 150 saturates to 255, and 100
	// lands on floor(255*50/100) = 127.
	cases := []struct {
		in   uint8
		want uint8
	}{
		{in: 0, want: 0},
		{in: 49, want: 0},
		{in: 50, want: 0},
		{in: 51, want: 2},    // floor(255*1/100)
		{in: 100, want: 127}, // floor(255*50/100)
		{in: 149, want: 252}, // floor(255*99/100)
		{in: 150, want: 255},
		{in: 255, want: 255},
	}

	src := image.NewGray(image.Rect(0, 0, len(cases), 1))
	for i, c := range cases {
		src.Pix[i] = c.in
	}
	dst := image.NewGray(src.Rect)

	if err := StretchContrast(src, dst, 50, 150, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range cases {
		if dst.Pix[i] != c.want {
			t.Fatalf("sample %d: got %d, want %d", c.in, dst.Pix[i], c.want)
		}
	}
}

func TestStretchContrastFullRangeIsIdentity(t *testing.T) {
	// With bounds 0..255 every interior sample maps to itself.
	src := image.NewGray(image.Rect(0, 0, 256, 1))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	dst := image.NewGray(src.Rect)
	if err := StretchContrast(src, dst, 0, 255, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("sample %d: got %d", i, dst.Pix[i])
		}
	}
}

func TestStretchContrastIdempotentOnBinaryValues(t *testing.T) {
	src := randomGray(32, 32, 6)
	once := image.NewGray(src.Rect)
	twice := image.NewGray(src.Rect)

	if err := StretchContrast(src, once, 40, 200, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Re-stretching a 0/255 bitmap with the same bounds must be a fixpoint:
	// 0 <= lower and 255 >= upper for any valid bounds.
	if err := StretchContrast(once, twice, 40, 200, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	binary := image.NewGray(src.Rect)
	if err := Threshold(src, binary, 127, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stretched := image.NewGray(src.Rect)
	if err := StretchContrast(binary, stretched, 40, 200, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range binary.Pix {
		if stretched.Pix[i] != binary.Pix[i] {
			t.Fatalf("pixel %d: stretch moved binary value %d to %d", i, binary.Pix[i], stretched.Pix[i])
		}
	}
}

func TestStretchContrastMonotonic(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 256, 1))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	dst := image.NewGray(src.Rect)
	if err := StretchContrast(src, dst, 30, 220, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < 256; i++ {
		if dst.Pix[i] < dst.Pix[i-1] {
			t.Fatalf("not monotonic at %d: %d < %d", i, dst.Pix[i], dst.Pix[i-1])
		}
	}
}

func TestStretchContrastParallelMatchesSequential(t *testing.T) {
	src := randomGray(640, 480, 7)
	seq := image.NewGray(src.Rect)
	par := image.NewGray(src.Rect)

	if err := StretchContrast(src, seq, 20, 235, Options{Parallel: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := StretchContrast(src, par, 20, 235, Options{Parallel: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range seq.Pix {
		if seq.Pix[i] != par.Pix[i] {
			t.Fatalf("pixel %d: sequential %d, parallel %d", i, seq.Pix[i], par.Pix[i])
		}
	}
}

func TestStretchContrastRejectsDegenerateBounds(t *testing.T) {
	src := filled(4, 4, 10)
	dst := image.NewGray(src.Rect)

	if err := StretchContrast(src, dst, 100, 100, Options{}); err == nil {
		t.Fatal("expected error for upper == lower")
	}
	if err := StretchContrast(src, dst, 150, 100, Options{}); err == nil {
		t.Fatal("expected error for upper < lower")
	}

	// Fail fast means dst is untouched.
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("dst written at %d (%d) despite rejected bounds", i, v)
		}
	}
}
