// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exrx provides reading and writing of floating-point RGBA
// OpenEXR images, and tolerance-based comparison between them, as used
// for CTL transform test input and reference images.
package exrx

import (
	"fmt"
	"os"

	"github.com/mrjoshuak/go-openexr/exr"
)

// Open opens an RGBA image from the given OpenEXR filename.
// Missing color channels read as 0 and a missing alpha channel reads
// as 1, so RGB-only files round-trip as fully opaque.
func Open(filename string) (*exr.RGBAImage, error) {
	f, err := exr.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("exrx.Open: %w", err)
	}
	defer f.Close()

	sr, err := exr.NewScanlineReader(f)
	if err != nil {
		return nil, fmt.Errorf("exrx.Open: %s: %w", filename, err)
	}
	dw := sr.DataWindow()
	fb, _ := exr.AllocateChannels(sr.Header().Channels(), dw)
	sr.SetFrameBuffer(fb)
	minX, maxX := int(dw.Min.X), int(dw.Max.X)
	minY, maxY := int(dw.Min.Y), int(dw.Max.Y)
	if err := sr.ReadPixels(minY, maxY); err != nil {
		return nil, fmt.Errorf("exrx.Open: %s: %w", filename, err)
	}

	rs := fb.Get("R")
	gs := fb.Get("G")
	bs := fb.Get("B")
	as := fb.Get("A")

	img := exr.NewRGBAImage(exr.RectFromSize(int(dw.Width()), int(dw.Height())))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			var r, g, b float32
			a := float32(1)
			if rs != nil {
				r = rs.GetFloat32(x, y)
			}
			if gs != nil {
				g = gs.GetFloat32(x, y)
			}
			if bs != nil {
				b = bs.GetFloat32(x, y)
			}
			if as != nil {
				a = as.GetFloat32(x, y)
			}
			img.SetRGBA(x-minX, y-minY, r, g, b, a)
		}
	}
	return img, nil
}

// Save saves the given RGBA image to the given OpenEXR filename.
// Channels are written as uncompressed 32-bit floats, not the usual
// half floats, so that stored reference pixels are bit-exact and
// comparisons at 1e-7 tolerances are meaningful.
func Save(img *exr.RGBAImage, filename string) error {
	b := img.Bounds()
	w, ht := b.Dx(), b.Dy()

	h := exr.NewScanlineHeader(w, ht)
	h.SetCompression(exr.CompressionNone)
	cl := exr.NewChannelList()
	for _, name := range []string{"A", "B", "G", "R"} {
		cl.Add(exr.NewChannel(name, exr.PixelTypeFloat))
	}
	h.SetChannels(cl)

	fb := exr.NewRGBAFrameBuffer(w, ht, true)
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			r, g, bv, a := img.RGBA(x, y)
			fb.SetPixel(x, y, r, g, bv, a)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("exrx.Save: %w", err)
	}

	sw, err := exr.NewScanlineWriter(file, h)
	if err != nil {
		file.Close()
		return fmt.Errorf("exrx.Save: %s: %w", filename, err)
	}
	sw.SetFrameBuffer(fb.ToFrameBuffer())
	if err := sw.WritePixels(0, ht-1); err != nil {
		file.Close()
		return fmt.Errorf("exrx.Save: %s: %w", filename, err)
	}
	if err := sw.Close(); err != nil {
		file.Close()
		return fmt.Errorf("exrx.Save: %s: %w", filename, err)
	}
	return file.Close()
}
