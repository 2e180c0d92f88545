package render

import (
	"bytes"
	"testing"
)

func TestFillPackedRGBA(t *testing.T) {
	cells := []uint32{0xFF0000, 0x7F8000, 0x000000, 0x123456}
	buf := make([]byte, 4*len(cells))
	FillPackedRGBA(buf, cells)

	want := []byte{
		0xff, 0x00, 0x00, 0xff,
		0x7f, 0x80, 0x00, 0xff,
		0x00, 0x00, 0x00, 0xff,
		0x12, 0x34, 0x56, 0xff,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = % x, want % x", buf, want)
	}
}

func TestFillPackedRGBAShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	FillPackedRGBA(buf, []uint32{0x010203, 0x040506})
	if !bytes.Equal(buf, []byte{1, 2, 3, 0xff}) {
		t.Fatalf("pixels = % x", buf)
	}
}
