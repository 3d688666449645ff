// Package ascii is the conversion service: it decodes an animated GIF
// source and turns its frames into newline-terminated ASCII glyph payloads.
//
// [Service.LoadSource] decodes and composites the GIF once, keeping
// full-resolution grayscale planes. Per-render-width downsamples are built
// lazily and cached, so dragging the width slider only pays the downsample
// cost once per width. [Service.Convert] maps gray values to glyphs through
// a 256-entry lookup table built from brightness and contrast; each output
// row is newline-terminated, so a w x h frame occupies exactly w*h+h bytes.
//
// The coordinator calls the service from completion goroutines, so unlike
// the coordinator state the service guards its caches with a lock.
package ascii
