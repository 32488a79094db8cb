package gfx

// Blend composites c over the 4-byte RGBA pixel dst.
//
// Each channel becomes round(src*a + dst*(1-a)) with a = c.A/255. The
// destination alpha is always set to 255: the back buffer is an opaque
// presentation surface and transparency is never accumulated.
func Blend(dst []byte, c Color) {
	_ = dst[3]
	alpha := float32(c.A) / 255
	inv := 1 - alpha
	dst[0] = blendChannel(c.R, dst[0], alpha, inv)
	dst[1] = blendChannel(c.G, dst[1], alpha, inv)
	dst[2] = blendChannel(c.B, dst[2], alpha, inv)
	dst[3] = 0xFF
}

func blendChannel(src, dst uint8, alpha, inv float32) uint8 {
	v := float32(src)*alpha + float32(dst)*inv + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// put writes c at byte offset off, taking the opaque path when possible.
func (b *Buffer) put(off int, c Color) {
	p := b.pix[off : off+4 : off+4]
	if c.A == 0xFF {
		p[0] = c.R
		p[1] = c.G
		p[2] = c.B
		p[3] = 0xFF
		return
	}
	Blend(p, c)
}
