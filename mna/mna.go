package mna

import (
	"circuitsketch/types"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MnaType 结构体是 MNA 接口的基础实现,包含了求解电路所需的核心矩阵和向量。
// 存储只在一次求解内有效,不跨调用保留。
type MnaType struct {
	A                 *mat.Dense    // 求解矩阵A
	Z                 *mat.VecDense // 已知向量Z
	X                 *mat.VecDense // 未知向量X (解)
	NodesNum          int           // 电路节点数量(不含地节点)
	VoltageSourcesNum int           // 独立电压源的总数量
}

// NewMna 创建一个MNA求解器实例。
//
//	nodesNum: 电路节点数量(不含地节点)。
//	vsNum: 独立电压源的总数量。
//	返回: 一个新的 MNA 实例,方程数量为0时返回错误。
func NewMna(nodesNum, vsNum int) (*MnaType, error) {
	n := nodesNum + vsNum // 总方程数量
	if nodesNum < 0 || vsNum < 0 || n < 1 {
		return nil, fmt.Errorf("mna dimension must be positive: nodes=%d sources=%d", nodesNum, vsNum)
	}
	return &MnaType{
		A:                 mat.NewDense(n, n, nil),
		Z:                 mat.NewVecDense(n, nil),
		X:                 mat.NewVecDense(n, nil),
		NodesNum:          nodesNum,
		VoltageSourcesNum: vsNum,
	}, nil
}

// ------------------------------ 系统信息查询 ------------------------------

func (m *MnaType) GetNodeNum() int           { return m.NodesNum }
func (m *MnaType) GetVoltageSourcesNum() int { return m.VoltageSourcesNum }

// GetNodeVoltage 从解向量X中获取指定节点的电压。
func (m *MnaType) GetNodeVoltage(i NodeID) float64 {
	if i > Gnd && int(i) < m.NodesNum {
		return m.X.AtVec(int(i))
	}
	return 0 // 地节点或无效节点返回0
}

// GetVoltageSourceCurrent 从解向量X中获取流经指定电压源的电流。
func (m *MnaType) GetVoltageSourceCurrent(i VoltageID) float64 {
	if int(i) > -1 && int(i) < m.VoltageSourcesNum {
		return m.X.AtVec(m.NodesNum + int(i))
	}
	return 0 // 无效ID返回0
}

// ------------------------------ MNA矩阵操作 ------------------------------

// StampMatrix 将一个值加到矩阵A的(i,j)元素上。地节点索引将被忽略。
func (m *MnaType) StampMatrix(i, j NodeID, value float64) {
	if i > Gnd && j > Gnd {
		m.A.Set(int(i), int(j), m.A.At(int(i), int(j))+value)
	}
}

// StampRightSideSet 直接设置向量Z的第i个元素的值。地节点索引将被忽略。
func (m *MnaType) StampRightSideSet(i NodeID, v float64) {
	if i > Gnd {
		m.Z.SetVec(int(i), v)
	}
}

// ------------------------------ 无源元件加盖 ------------------------------

// StampImpedance 为电阻添加MNA加盖。阻值的合法性由调用方保证。
func (m *MnaType) StampImpedance(n1, n2 NodeID, r float64) {
	m.StampAdmittance(n1, n2, 1/r)
}

// StampAdmittance 为导纳元件添加MNA加盖,通过修改矩阵A的四个相关元素来反映其对电路的贡献。
// 两端为同一节点时四项相互抵消。
func (m *MnaType) StampAdmittance(n1, n2 NodeID, y float64) {
	m.StampMatrix(n1, n1, y)
	m.StampMatrix(n2, n2, y)
	m.StampMatrix(n1, n2, -y)
	m.StampMatrix(n2, n1, -y)
}

// ------------------------------ 独立源加盖 ------------------------------

// StampVoltageSource 为独立电压源添加MNA加盖。该操作会引入一个新的电流未知量,并修改矩阵A和向量Z以建立电压约束方程。
func (m *MnaType) StampVoltageSource(n1, n2 NodeID, vs VoltageID, v float64) {
	if vs < 0 || int(vs) >= m.VoltageSourcesNum {
		return
	}
	vsRow := NodeID(vs) + NodeID(m.NodesNum)
	// KCL方程: I(vs) 对 n1/n2 节点的贡献
	m.StampMatrix(n1, vsRow, 1)
	m.StampMatrix(n2, vsRow, -1)
	// 电压源约束方程: V(n1) - V(n2) = v
	m.StampMatrix(vsRow, n1, 1)
	m.StampMatrix(vsRow, n2, -1)
	m.StampRightSideSet(vsRow, v)
}

// ------------------------------ 求解 ------------------------------

// Solve 使用带部分主元的LU分解求解 Ax=Z。
// 矩阵奇异或条件数超过 types.ConditionTolerance 时返回 ErrSingularNetwork。
func (m *MnaType) Solve() error {
	var lu mat.LU
	lu.Factorize(m.A)
	if cond := lu.Cond(); cond > types.ConditionTolerance {
		return fmt.Errorf("%w: condition number %.3g", ErrSingularNetwork, cond)
	}
	if err := lu.SolveVecTo(m.X, false, m.Z); err != nil {
		var cond mat.Condition
		if errors.Is(err, mat.ErrSingular) || errors.As(err, &cond) {
			return fmt.Errorf("%w: %v", ErrSingularNetwork, err)
		}
		return err
	}
	return nil
}

// String 返回MNA求解器内部状态(矩阵A, 向量Z, X)的字符串表示。
func (m *MnaType) String() string {
	r, c := m.A.Dims()
	return fmt.Sprintf("MNA Matrix (rows=%d, cols=%d):\n%v\nZ vector:\n%v\nX vector:\n%v",
		r, c, mat.Formatted(m.A), mat.Formatted(m.Z), mat.Formatted(m.X))
}
