// Package ttf adapts golang.org/x/image/font/sfnt and golang.org/x/image/vector
// into the small font engine surface the atlas builder needs: parse a font,
// map codepoints to glyphs, read glyph headers at a point size and density,
// convert a header into an outline held in caller scratch memory, and
// rasterize that outline into an RGBA region.
//
// Failures are reported as *Error values carrying a Result code. A Result is
// either fatal (the dependent step must abort) or not (log and continue with
// degraded output); use IsFatal to classify any error returned here.
//
// A Font and a Scratch are not safe for concurrent use.
package ttf
