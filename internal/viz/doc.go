// Package viz renders the falling-ball scene onto a braille-cell terminal
// canvas. Each character cell packs 2x4 sub-pixels, so a cols x rows canvas
// exposes a (cols*2) x (rows*4) drawable surface. The scene projects the
// 320x480 logical world of the simulator onto that surface and keeps a
// bounded trail of recent ball positions for the fade-out effect.
package viz
