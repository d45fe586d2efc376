package types

// 默认参数常量定义
var (
	DefaultSnapTolerance = 5.0   // 默认吸附距离(曼哈顿)
	ConditionTolerance   = 1e14  // 条件数上限,超过视为奇异
	CurrentTolerance     = 1e-12 // 电流显示归零阈值(安)
	VoltageTolerance     = 1e-9  // 电压显示归零阈值(伏)
	PowerTolerance       = 1e-15 // 功率显示归零阈值(瓦)
)
