/*
Package hellotext renders a short string with a TrueType font through a
layered texture atlas.

# Overview

The package owns the part of a text demo that sits between the font engine
(package ttf) and the graphics backend (package backend/opengl):

  - resolving the unique glyphs a string needs, with a reserved
    missing-glyph slot at index 0 (ResolveCharacters)
  - rasterizing every drawable glyph into its own layer of one 2D-array
    texture, all layers sharing a single cell size (BuildAtlas)
  - laying out one quad per visible character occurrence and re-centering
    the quads whenever the window size changes (LayoutText, Text.Recenter)

A Scene threads these stages together and owns their results for the
lifetime of the program.

# Quick Start

	face, err := ttf.Open("fonts/font.ttf")
	if err != nil {
	    return err
	}

	scene, err := hellotext.NewScene(face, "Hello, world.",
	    hellotext.WithPointSize(48), hellotext.WithDPI(96))
	if err != nil {
	    return err
	}
	defer scene.Close()

	renderer, _ := opengl.NewRenderer(800, 600)
	if err := scene.Attach(renderer); err != nil {
	    return err
	}

	for !window.ShouldClose() {
	    w, h := window.FramebufferSize()
	    if err := scene.Frame(w, h); err != nil {
	        return err
	    }
	    window.EndFrame()
	}

# Glyph table

Index 0 of the character table is always the fallback glyph, resolved from
Config.FallbackRune (U+FFFD by default) or glyph 0 when the font lacks it.
Codepoints that map to the fallback glyph are not recorded; their occurrences
are drawn with the fallback slot. Codepoints that map to a glyph already
recorded under another codepoint share that character.

Empty glyphs (no contours, e.g. the space) are recorded so they can advance
the pen, but they never receive an atlas layer.

# Coordinates

Quads are in pixels with the origin at the top-left corner of the window and
the y axis pointing down, matching an orthographic projection of
(0, width, height, 0).
*/
package hellotext
