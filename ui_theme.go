package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

var (
	panelColor     = color.RGBA{40, 40, 40, 255}
	labelTextColor = color.RGBA{230, 230, 230, 255}

	controlIdle    = color.RGBA{180, 180, 180, 255}
	controlHover   = color.RGBA{200, 200, 200, 255}
	controlPressed = color.RGBA{160, 160, 160, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func controlImage(idle, hover, pressed color.Color) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(idle),
		Hover:   solidNineSlice(hover),
		Pressed: solidNineSlice(pressed),
	}
}

// newPlannerTheme is a flat grey theme: light controls on a dark side panel.
func newPlannerTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		DefaultFace:      fontFace,
		DefaultTextColor: labelTextColor,
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image:    controlImage(controlIdle, controlHover, controlPressed),
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Disabled: colornames.Gray,
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(controlIdle),
				Hover: solidNineSlice(controlHover),
			},
			HandleImage: controlImage(colornames.Dimgray, colornames.Gray, colornames.Darkslategray),
		},
	}
}
