package mapgeom

import (
	"hash/fnv"
	"image"
	"image/color"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"

	"wadview/internal/mapmesh"
)

// Placeholder texture dimensions. Real wall and flat images come from the
// asset pipeline; the viewer stands in procedural ones so the UV math stays
// observable.
const (
	texWidth  = 64
	texHeight = 64
)

// buildPlaceholderTextures creates one checkered layer per texture name in a
// 2D array texture and returns the per-name mesh info. Names are sorted so
// layer assignment is deterministic.
func buildPlaceholderTextures(names []string) (uint32, map[string]mapmesh.TextureInfo) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	pixels := make([]byte, 0, len(sorted)*texWidth*texHeight*4)
	info := make(map[string]mapmesh.TextureInfo, len(sorted))
	for layer, name := range sorted {
		pixels = append(pixels, checkerLayer(name)...)
		info[name] = mapmesh.TextureInfo{
			Width:  texWidth,
			Height: texHeight,
			Layer:  float32(layer),
		}
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, texture)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, texWidth, texHeight, int32(len(sorted)),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	return texture, info
}

// checkerLayer renders a two-tone checkerboard whose colors derive from the
// texture name, so adjacent surfaces stay distinguishable.
func checkerLayer(name string) []byte {
	h := fnv.New32a()
	h.Write([]byte(name))
	seed := h.Sum32()

	base := color.RGBA{
		R: 64 + uint8(seed)%128,
		G: 64 + uint8(seed>>8)%128,
		B: 64 + uint8(seed>>16)%128,
		A: 255,
	}
	alt := color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, texWidth, texHeight))
	for y := 0; y < texHeight; y++ {
		for x := 0; x < texWidth; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetRGBA(x, y, base)
			} else {
				img.SetRGBA(x, y, alt)
			}
		}
	}
	return img.Pix
}
