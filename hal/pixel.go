package hal

// RGB565 packs an 8-bit color into 16 bits.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGBFrom565 expands a 16-bit pixel back to 8 bits per channel.
func RGBFrom565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// toRGBA converts one row of pixels in format f into RGBA bytes.
func toRGBA(f PixelFormat, dst, src []byte, n int) {
	switch f {
	case PixelFormatRGBA8888:
		copy(dst[:n*4], src[:n*4])
	case PixelFormatBGRA8888:
		for i := 0; i < n; i++ {
			s := src[i*4 : i*4+4 : i*4+4]
			d := dst[i*4 : i*4+4 : i*4+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], 0xFF
		}
	case PixelFormatRGB565:
		for i := 0; i < n; i++ {
			r, g, b := RGBFrom565(uint16(src[i*2]) | uint16(src[i*2+1])<<8)
			d := dst[i*4 : i*4+4 : i*4+4]
			d[0], d[1], d[2], d[3] = r, g, b, 0xFF
		}
	}
}
