package mna

import (
	"circuitsketch/graph"
	"circuitsketch/types"
	"errors"
	"fmt"
	"math"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

var (
	// ErrInvalidComponentValue 电阻值小于等于0或参数不是有限数
	ErrInvalidComponentValue = errors.New("invalid component value")
	// ErrUnsupportedTopology 电压源两端落在同一节点
	ErrUnsupportedTopology = errors.New("unsupported topology")
	// ErrSingularNetwork 方程组奇异: 悬浮节点、矛盾的电压源回路等
	ErrSingularNetwork = errors.New("singular network")
)

// row 拓扑节点编号转换为矩阵行号,地节点0对应 Gnd
func row(id types.NodeID) NodeID { return NodeID(id) - 1 }

// Solve 对拓扑结果进行直流MNA求解
//
//	components: 与 graph.Build 相同的元件列表
//	set:        graph.Build 的结果
//
// 全部成功才返回结果,不返回部分解。
func Solve(components []types.Component, set *graph.NodeSet) (*Solution, error) {
	if set == nil || set.Len() == 0 || len(set.Pins) != len(components) {
		return nil, fmt.Errorf("%w: node set does not match components", ErrUnsupportedTopology)
	}
	sources, err := check(components, set)
	if err != nil {
		return nil, err
	}
	if err := floating(components, set); err != nil {
		return nil, err
	}
	sol := newSolution(components, set.Len())
	nodesNum := set.Len() - 1
	if nodesNum+len(sources) == 0 {
		// 只有地节点,所有电阻两端同电位
		for _, c := range components {
			if c.IsTwoTerminal() {
				sol.Currents[c.Label] = 0
			}
		}
		return sol, nil
	}
	m, err := NewMna(nodesNum, len(sources))
	if err != nil {
		return nil, err
	}
	for eid, c := range components {
		stamp(m, c, eid, set, sources)
	}
	if err := m.Solve(); err != nil {
		return nil, err
	}
	for id := 1; id < set.Len(); id++ {
		sol.Voltages[id] = m.GetNodeVoltage(row(id))
	}
	for eid, c := range components {
		switch c.Type {
		case types.TypeResistor:
			v0 := sol.Voltages[set.NodeOf(eid, 0)]
			v1 := sol.Voltages[set.NodeOf(eid, 1)]
			sol.Currents[c.Label] = (v0 - v1) / c.Value
		case types.TypeVoltageSource:
			sol.Currents[c.Label] = m.GetVoltageSourceCurrent(sources[eid])
		}
	}
	return sol, nil
}

// stamp 按元件类型加盖
func stamp(m MNA, c types.Component, eid types.ElementID, set *graph.NodeSet, sources map[types.ElementID]VoltageID) {
	switch c.Type {
	case types.TypeResistor:
		m.StampImpedance(row(set.NodeOf(eid, 0)), row(set.NodeOf(eid, 1)), c.Value)
	case types.TypeVoltageSource:
		m.StampVoltageSource(row(set.NodeOf(eid, 0)), row(set.NodeOf(eid, 1)), sources[eid], c.Value)
	}
}

// check 检查元件参数,并为电压源分配电流未知量
func check(components []types.Component, set *graph.NodeSet) (map[types.ElementID]VoltageID, error) {
	sources := map[types.ElementID]VoltageID{}
	for eid, c := range components {
		if c.IsTwoTerminal() && len(set.Pins[eid]) != 2 {
			return nil, fmt.Errorf("%w: %s has %d resolved terminals", ErrUnsupportedTopology, c.Label, len(set.Pins[eid]))
		}
		switch c.Type {
		case types.TypeResistor:
			if !(c.Value > 0) || math.IsInf(c.Value, 0) {
				return nil, fmt.Errorf("%w: %s resistance %v", ErrInvalidComponentValue, c.Label, c.Value)
			}
		case types.TypeVoltageSource:
			if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
				return nil, fmt.Errorf("%w: %s voltage %v", ErrInvalidComponentValue, c.Label, c.Value)
			}
			if set.NodeOf(eid, 0) == set.NodeOf(eid, 1) {
				return nil, fmt.Errorf("%w: %s terminals share node %d", ErrUnsupportedTopology, c.Label, set.NodeOf(eid, 0))
			}
			sources[eid] = VoltageID(len(sources))
		}
	}
	return sources, nil
}

// floating 检查悬浮节点
// 只连着一个电阻引脚的非地节点(悬空引脚),或没有经元件到达地的节点,都视为方程奇异。
// 只连着电压源的节点由电压源确定,不算悬空。
func floating(components []types.Component, set *graph.NodeSet) error {
	resistorPins := make([]int, set.Len())
	sourcePins := make([]int, set.Len())
	g := simple.NewUndirectedGraph()
	for id := 0; id < set.Len(); id++ {
		g.AddNode(simple.Node(id))
	}
	for eid, c := range components {
		if !c.IsTwoTerminal() {
			continue
		}
		a, b := set.NodeOf(eid, 0), set.NodeOf(eid, 1)
		pins := resistorPins
		if c.Type == types.TypeVoltageSource {
			pins = sourcePins
		}
		pins[a]++
		pins[b]++
		if a != b {
			g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
		}
	}
	for id := 1; id < set.Len(); id++ {
		if resistorPins[id] == 1 && sourcePins[id] == 0 {
			return fmt.Errorf("%w: node %d has a dangling terminal", ErrSingularNetwork, id)
		}
	}
	for _, cc := range topo.ConnectedComponents(g) {
		grounded := false
		for _, n := range cc {
			if n.ID() == int64(graph.GroundID) {
				grounded = true
				break
			}
		}
		if !grounded {
			return fmt.Errorf("%w: node %d has no path to ground", ErrSingularNetwork, minID(cc))
		}
	}
	return nil
}

// minID 分量中最小的节点编号
func minID(cc []gonum.Node) int64 {
	id := cc[0].ID()
	for _, n := range cc[1:] {
		id = min(id, n.ID())
	}
	return id
}
