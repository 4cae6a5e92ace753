// internal/defs/types.go
package defs

import "image/color"

// Идентификаторы моделей, которые запрашивает ядро
const (
	ModelVessel = "vessel"
	ModelChest  = "chest"
	ModelEnemy  = "enemy"
)

// Shape — форма запасного меша, если файл модели отсутствует
type Shape string

const (
	ShapeCube     Shape = "cube"
	ShapeCylinder Shape = "cylinder"
	ShapeSphere   Shape = "sphere"
)

// Visuals — параметры отрисовки
type Visuals struct {
	Color  [4]uint8 `json:"color" yaml:"color"`
	Radius float32  `json:"radius" yaml:"radius"` // радиус метки на радаре, в единицах мира
}

// RGBA возвращает цвет в формате image/color
func (v Visuals) RGBA() color.RGBA {
	return color.RGBA{R: v.Color[0], G: v.Color[1], B: v.Color[2], A: v.Color[3]}
}
