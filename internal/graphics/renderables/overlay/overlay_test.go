package overlay

import "testing"

// A missing font file leaves the overlay without a renderer; disposing it
// must still be safe.
func TestDisposeWithoutFont(t *testing.T) {
	o := New(nil)
	o.Dispose()
	o.SetViewport(800, 600)
}
