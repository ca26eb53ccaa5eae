// Package render rasterizes particle draw calls into a software framebuffer
// and blits it to a tcell screen using half-block cells.
package render
