package types

// NodeID 节点编号, 0 固定为地
type NodeID = int

// PinID 引脚
type PinID = int

// ElementID 元件在输入列表中的索引
type ElementID = int

// Component 元件快照
// 由交互层给出: 类型, 显示名称, 参数值与各引脚的场景坐标(已计入摆放与旋转)
type Component struct {
	Type  ElementType // 元件类型
	Label string      // 显示名称,结果报告使用,要求唯一
	Value float64     // 电阻(欧姆) / 电动势(伏特) / 地线不使用
	Pins  []Point     // 引脚坐标
}

// NewResistor 创建电阻
func NewResistor(label string, ohms float64, p0, p1 Point) Component {
	return Component{Type: TypeResistor, Label: label, Value: ohms, Pins: []Point{p0, p1}}
}

// NewVoltageSource 创建电压源, plus 为正极(引脚0), minus 为负极(引脚1)
func NewVoltageSource(label string, volts float64, plus, minus Point) Component {
	return Component{Type: TypeVoltageSource, Label: label, Value: volts, Pins: []Point{plus, minus}}
}

// NewGround 创建地线标记
func NewGround(label string, at Point) Component {
	return Component{Type: TypeGround, Label: label, Pins: []Point{at}}
}

// IsTwoTerminal 是否为参与求解的双端元件
func (c Component) IsTwoTerminal() bool {
	return c.Type == TypeResistor || c.Type == TypeVoltageSource
}

// Terminals 得到元件全部引脚
func (c Component) Terminals(id ElementID) []Terminal {
	list := make([]Terminal, len(c.Pins))
	for pin, pos := range c.Pins {
		list[pin] = Terminal{Component: id, Pin: pin, Pos: pos}
	}
	return list
}

// Terminal 元件引脚
type Terminal struct {
	Component ElementID // 所属元件索引
	Pin       PinID     // 元件内引脚序号
	Pos       Point     // 场景坐标
}
