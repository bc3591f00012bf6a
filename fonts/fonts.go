package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in bitmap face for every font slot.
// The repo ships no TTF assets, so all slots share the basicfont face.
func LoadDefaults() {
	fonts[Body] = basicfont.Face7x13
	fonts[Title] = basicfont.Face7x13
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
