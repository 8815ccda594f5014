package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale enlarges src by an integer factor so that every cell becomes a
// factor x factor block. Gray, paletted, RGBA, NRGBA and CMYK images are
// replicated byte for byte and keep their type; anything else goes through
// nearest-neighbour resampling into an NRGBA image.
func Scale(src image.Image, factor int) image.Image {
	if factor < 2 {
		return src
	}
	b := src.Bounds()
	rect := image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor)

	switch s := src.(type) {
	case *image.Gray:
		dst := image.NewGray(rect)
		replicate(dst.Pix, dst.Stride, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, b, 1, factor)
		return dst
	case *image.Paletted:
		dst := image.NewPaletted(rect, s.Palette)
		replicate(dst.Pix, dst.Stride, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, b, 1, factor)
		return dst
	case *image.RGBA:
		dst := image.NewRGBA(rect)
		replicate(dst.Pix, dst.Stride, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, b, 4, factor)
		return dst
	case *image.NRGBA:
		dst := image.NewNRGBA(rect)
		replicate(dst.Pix, dst.Stride, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, b, 4, factor)
		return dst
	case *image.CMYK:
		dst := image.NewCMYK(rect)
		replicate(dst.Pix, dst.Stride, s.Pix[s.PixOffset(b.Min.X, b.Min.Y):], s.Stride, b, 4, factor)
		return dst
	}

	dst := image.NewNRGBA(rect)
	draw.NearestNeighbor.Scale(dst, rect, src, b, draw.Src, nil)
	return dst
}

// replicate copies each bpp-byte source pixel into a factor x factor block.
// src starts at the bounds' top-left pixel.
func replicate(dst []uint8, dstStride int, src []uint8, srcStride int, b image.Rectangle, bpp, factor int) {
	w, h := b.Dx(), b.Dy()
	for sy := 0; sy < h; sy++ {
		row := dst[sy*factor*dstStride:]
		for sx := 0; sx < w; sx++ {
			px := src[sy*srcStride+sx*bpp : sy*srcStride+sx*bpp+bpp]
			for k := 0; k < factor; k++ {
				copy(row[(sx*factor+k)*bpp:], px)
			}
		}
		for k := 1; k < factor; k++ {
			copy(dst[(sy*factor+k)*dstStride:(sy*factor+k+1)*dstStride], row[:dstStride])
		}
	}
}
