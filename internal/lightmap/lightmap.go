// Package lightmap generates the static light-level textures the map
// renderer samples through each vertex's lightmap coordinate. Sector light
// levels are quantized to 16 steps; each step becomes one grayscale layer of
// a texture array.
package lightmap

import (
	"image"
	"image/color"
)

// Layers is the number of light levels, matching the 4-bit quantization of
// sector light (light_level >> 4).
const Layers = 16

// LayerSize is the pixel width and height of each layer. A single texel per
// layer is enough: the lightmap coordinate only selects a layer, the UV part
// stays at the origin.
const LayerSize = 1

// Build returns the light-level layers, darkest first. Layer i is a uniform
// gray of value i*16.
func Build() []*image.RGBA {
	layers := make([]*image.RGBA, Layers)
	for i := range layers {
		img := image.NewRGBA(image.Rect(0, 0, LayerSize, LayerSize))
		v := uint8(i * 16)
		for y := 0; y < LayerSize; y++ {
			for x := 0; x < LayerSize; x++ {
				img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
			}
		}
		layers[i] = img
	}
	return layers
}

// Pack concatenates the layers' pixels into one buffer, in layer order,
// ready for a single texture-array upload.
func Pack(layers []*image.RGBA) []byte {
	if len(layers) == 0 {
		return nil
	}
	size := len(layers[0].Pix)
	buf := make([]byte, 0, size*len(layers))
	for _, layer := range layers {
		buf = append(buf, layer.Pix...)
	}
	return buf
}
