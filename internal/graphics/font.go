package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes one character's placement in the atlas and its metrics,
// all in pixels.
type Glyph struct {
	AtlasX   float32
	AtlasY   float32
	Width    float32
	Height   float32
	BearingX float32
	BearingY float32
	Advance  float32
}

// FontAtlas is a baked ASCII glyph set in a single-channel GL texture.
type FontAtlas struct {
	TextureID uint32
	Width     int
	Height    int
	Glyphs    map[rune]Glyph
}

const atlasWidth = 512

// BuildFontAtlas loads a TrueType font and bakes the printable ASCII range
// into a texture atlas at the given pixel size.
func BuildFontAtlas(fontPath string, fontPixels int) (*FontAtlas, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(fontPixels),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	rowH := fontPixels + fontPixels/2
	pad := 1

	// First pass: count rows for the atlas height.
	x, rows := 0, 1
	for r := rune(32); r <= 126; r++ {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		w := dr.Dx()
		if x+w+pad > atlasWidth {
			rows++
			x = 0
		}
		x += w + pad
	}
	atlasH := rows*(rowH+pad) + pad

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	glyphs := make(map[rune]Glyph)

	// Second pass: render into the atlas.
	x, y := 0, 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		adv := float32(math.Round(float64(advance) / 64.0))
		gw, gh := dr.Dx(), dr.Dy()
		if mask == nil || gw == 0 || gh == 0 {
			glyphs[r] = Glyph{Advance: adv}
			continue
		}
		if x+gw+pad > atlasWidth {
			x = 0
			y += rowH + pad
		}
		draw.Draw(img, image.Rect(x, y, x+gw, y+gh), mask, maskp, draw.Src)
		glyphs[r] = Glyph{
			AtlasX:   float32(x),
			AtlasY:   float32(y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  adv,
		}
		x += gw + pad
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlasWidth), int32(atlasH), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &FontAtlas{TextureID: texture, Width: atlasWidth, Height: atlasH, Glyphs: glyphs}, nil
}

// FontRenderer draws text strings from a prebuilt atlas in pixel
// coordinates.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer wires up the text shader and a dynamic quad buffer.
func NewFontRenderer(atlas *FontAtlas) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("empty font atlas")
	}
	shader, err := NewShader(
		filepath.Join(ShadersDir, "font.vert"),
		filepath.Join(ShadersDir, "font.frag"),
	)
	if err != nil {
		return nil, err
	}

	fr := &FontRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: mgl32.Ortho(0, WinWidth, WinHeight, 0, 0, 1),
	}

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return fr, nil
}

// SetViewport updates the pixel-space projection after a window resize.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// RenderLines draws lines of text starting at (x, yStart), stepping lineStep
// pixels down per line, in one draw call.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	y := yStart
	for _, line := range lines {
		verts = fr.appendLine(verts, line, x, y, scale)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("glyphs", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// Orphan the buffer each frame to avoid stalling on the previous draw.
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose frees the text shader, the quad buffers and the atlas texture.
func (fr *FontRenderer) Dispose() {
	fr.shader.Delete()
	gl.DeleteBuffers(1, &fr.vbo)
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteTextures(1, &fr.atlas.TextureID)
}

// Render draws a single string.
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.RenderLines([]string{text}, x, y, 0, scale, color)
}

func (fr *FontRenderer) appendLine(verts []float32, text string, x, y, scale float32) []float32 {
	for _, r := range text {
		g, ok := fr.atlas.Glyphs[r]
		if !ok {
			g = fr.atlas.Glyphs[' ']
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			w := g.Width * scale
			h := g.Height * scale

			u0 := g.AtlasX / float32(fr.atlas.Width)
			v0 := g.AtlasY / float32(fr.atlas.Height)
			u1 := u0 + g.Width/float32(fr.atlas.Width)
			v1 := v0 + g.Height/float32(fr.atlas.Height)

			verts = append(verts,
				x0, y0+h, u0, v1,
				x0, y0, u0, v0,
				x0+w, y0, u1, v0,
				x0, y0+h, u0, v1,
				x0+w, y0, u1, v0,
				x0+w, y0+h, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return verts
}
