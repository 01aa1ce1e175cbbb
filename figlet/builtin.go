package figlet

import "sync"

// BlockHeight is the height of the builtin font.
const BlockHeight = 5

// Default returns the builtin block font: five rows of full-block pixels
// per glyph with a three column blank. The font is assembled from a
// Go table rather than parsed, and is shared, so callers must not modify
// it.
var Default = sync.OnceValue(func() *Font {
	f := &Font{
		Name:      "block",
		Height:    BlockHeight,
		Baseline:  BlockHeight,
		Hardblank: '$',
		Comment:   "builtin block font",
	}
	for i, rows := range blockRows {
		f.glyphs[i] = newGlyph(rune(FirstCode+i), rows[:])
		f.MaxLength = max(f.MaxLength, f.glyphs[i].Width+2)
	}
	return f
})
