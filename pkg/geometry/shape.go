// Package geometry 提供基本平面圖形的面積與周長計算
package geometry

import "math"

// Shape 可計算面積與周長的圖形
type Shape interface {
	Area() float64
	Perimeter() float64
}

// Rectangle 矩形
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle 建立矩形
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area 面積 = 寬 x 高
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter 周長 = 2 x (寬 + 高)
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// Circle 圓形
type Circle struct {
	Radius float64
}

// NewCircle 建立圓形
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius}
}

// Area 面積 = π x r²
func (c Circle) Area() float64 {
	return math.Pi * math.Pow(c.Radius, 2)
}

// Perimeter 周長 = 2 x π x r
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.Radius
}

var (
	_ Shape = Rectangle{}
	_ Shape = Circle{}
)
