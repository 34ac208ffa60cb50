package lightmap

import "testing"

func TestBuildLayers(t *testing.T) {
	layers := Build()
	if len(layers) != Layers {
		t.Fatalf("got %d layers, want %d", len(layers), Layers)
	}
	for i, layer := range layers {
		c := layer.RGBAAt(0, 0)
		want := uint8(i * 16)
		if c.R != want || c.G != want || c.B != want {
			t.Fatalf("layer %d: got %v, want gray %d", i, c, want)
		}
		if c.A != 255 {
			t.Fatalf("layer %d: alpha %d, want 255", i, c.A)
		}
	}
}

func TestPackConcatenatesInOrder(t *testing.T) {
	layers := Build()
	buf := Pack(layers)
	perLayer := LayerSize * LayerSize * 4
	if len(buf) != perLayer*Layers {
		t.Fatalf("got %d bytes, want %d", len(buf), perLayer*Layers)
	}
	// Brightest layer last.
	if buf[len(buf)-4] != 240 {
		t.Fatalf("last layer red: got %d, want 240", buf[len(buf)-4])
	}
}
