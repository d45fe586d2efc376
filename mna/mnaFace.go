package mna

// NodeID 定义了MNA矩阵中的节点行号,拓扑节点k对应行k-1。
type NodeID int

// VoltageID 定义了电压源的唯一标识符,
// 用于在MNA方程中定位其对应的电流未知量。
type VoltageID int

// Gnd 表示电路的接地节点,其电位为零,不占用矩阵行。
const Gnd NodeID = -1

// MNA (Modified Nodal Analysis) 接口定义了构建和求解电路方程(Ax=Z)所需的核心功能。
// 它通过一系列"加盖"(Stamp)操作来构建MNA矩阵,并最终求解得到节点电压和支路电流。
type MNA interface {
	// String 返回MNA求解器的内部状态的字符串表示,包括矩阵A、向量Z和解向量X,主要用于调试。
	String() string

	// GetNodeVoltage 从解向量X中获取并返回指定节点的电压。如果节点为地(Gnd),则返回0。
	GetNodeVoltage(i NodeID) float64

	// GetVoltageSourceCurrent 从解向量X中获取并返回流经指定电压源的电流。如果ID无效,则返回0。
	GetVoltageSourceCurrent(i VoltageID) float64

	// GetNodeNum 获取电路中独立节点的数量(不包括地节点)。
	GetNodeNum() int

	// GetVoltageSourcesNum 获取电路中电压源的总数,这决定了MNA矩阵的扩展维度。
	GetVoltageSourcesNum() int

	// StampMatrix 将一个值加到矩阵A的(i,j)元素上。地节点相关的操作将被忽略。
	StampMatrix(i, j NodeID, value float64)

	// StampRightSideSet 直接设置向量Z的第i个元素的值,覆盖原有值。地节点相关的操作将被忽略。
	StampRightSideSet(i NodeID, v float64)

	// StampImpedance 为电阻添加MNA加盖。
	// 数学模型: G=1/r,在矩阵A的对角元(n1,n1)和(n2,n2)加上G,非对角元(n1,n2)和(n2,n1)减去G。
	//   n1: 元件的第一个节点ID。
	//   n2: 元件的第二个节点ID。
	//   r:  阻值(欧姆),必须大于0。
	StampImpedance(n1, n2 NodeID, r float64)

	// StampAdmittance 为电导元件添加MNA加盖,直接将其电导值g贡献到MNA矩阵A中。
	StampAdmittance(n1, n2 NodeID, g float64)

	// StampVoltageSource 为独立电压源添加MNA加盖。
	// 数学模型: 引入电流I(vs)作为新变量,建立约束 V(n1)-V(n2)=v。
	//   n1: 电压源的正极节点ID。
	//   n2: 电压源的负极节点ID。
	//   vs: 电压源的唯一ID。
	//   v:  电压值(伏特)。
	// I(vs) 为源内部由正极流向负极的电流。
	StampVoltageSource(n1, n2 NodeID, vs VoltageID, v float64)

	// Solve 求解 Ax=Z,矩阵奇异时返回 ErrSingularNetwork。
	Solve() error
}
