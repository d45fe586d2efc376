package types

import "strings"

// ElementType 元件类型
type ElementType uint

// 电路元件类型常量定义
const (
	TypeUnknown       ElementType = iota // 未知类型
	TypeResistor                         // 电阻
	TypeVoltageSource                    // 独立电压源
	TypeGround                           // 地线标记
)

// slementTypeString 元件映射
var slementTypeString = map[ElementType]struct {
	Name      string
	PostCount int
}{
	TypeUnknown:       {Name: "Unknown", PostCount: 0},
	TypeResistor:      {Name: "R", PostCount: 2},
	TypeVoltageSource: {Name: "V", PostCount: 2},
	TypeGround:        {Name: "GND", PostCount: 1},
}

// String 返回元件类型的字符串表示
func (t ElementType) String() string {
	if et, ok := slementTypeString[t]; ok {
		return et.Name
	}
	return "Unknown"
}

// GetPostCount 获取引脚数量
func (t ElementType) GetPostCount() int {
	if et, ok := slementTypeString[t]; ok {
		return et.PostCount
	}
	return 0
}

// Valid 是否为已知类型
func (t ElementType) Valid() bool {
	return t != TypeUnknown && t.GetPostCount() > 0
}

var mapName = map[string]ElementType{
	"unknown":        TypeUnknown,
	"r":              TypeResistor,
	"resistor":       TypeResistor,
	"v":              TypeVoltageSource,
	"vs":             TypeVoltageSource,
	"voltage":        TypeVoltageSource,
	"voltage_source": TypeVoltageSource,
	"gnd":            TypeGround,
	"g":              TypeGround,
	"ground":         TypeGround,
}

// GetNameType 通过名称获取类型,不区分大小写
func GetNameType(name string) ElementType {
	return mapName[strings.ToLower(strings.TrimSpace(name))]
}

// MarshalText 文本编码
func (t ElementType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText 文本解码
func (t *ElementType) UnmarshalText(b []byte) error {
	*t = GetNameType(string(b))
	return nil
}
