package components

import (
	"github.com/automoto/snowcatcher/shared/figure"
	"github.com/yohamta/donburi"
)

type FigureData struct {
	Body *figure.Body
}

var Figure = donburi.NewComponentType[FigureData]()
