package render

// FillPackedRGBA converts packed 0xRRGGBB cells into opaque RGBA pixels in
// buf. Cells that do not fit in buf are skipped.
func FillPackedRGBA(buf []byte, cells []uint32) {
	n := len(cells)
	if limit := len(buf) / 4; n > limit {
		n = limit
	}
	for i := 0; i < n; i++ {
		c := cells[i]
		base := i * 4
		buf[base+0] = uint8(c >> 16)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c)
		buf[base+3] = 0xff
	}
}
