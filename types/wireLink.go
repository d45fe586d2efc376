package types

import (
	"fmt"
	"math"
)

// Point 场景坐标
type Point struct {
	X, Y float64
}

// Pt 创建坐标
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Manhattan 曼哈顿距离,与编辑器吸附判定一致
func (p Point) Manhattan(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// WireSegment 导线,仅包含两端坐标
type WireSegment struct {
	From Point
	To   Point
}

// Wire 创建导线
func Wire(from, to Point) WireSegment {
	return WireSegment{From: from, To: to}
}
