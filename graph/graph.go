package graph

import (
	"circuitsketch/types"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoGroundNode 没有任何地线标记落入节点
	ErrNoGroundNode = errors.New("no ground node")
	// ErrInvalidComponent 元件定义不合法(类型未知/引脚数量不符/名称重复)
	ErrInvalidComponent = errors.New("invalid component")
)

// GroundID 地节点编号
const GroundID types.NodeID = 0

// Node 电气节点
type Node struct {
	ID        types.NodeID     // 节点编号,地为0
	IsGround  bool             // 是否为地
	Terminals []types.Terminal // 节点包含的引脚,按发现顺序
}

// NodeSet 拓扑结果
// Nodes 的下标即节点编号; Pins[元件][引脚] 为该引脚所在节点编号
type NodeSet struct {
	Nodes []Node
	Pins  [][]types.NodeID
}

// Len 节点数量(含地)
func (set *NodeSet) Len() int { return len(set.Nodes) }

// Ground 地节点
func (set *NodeSet) Ground() Node { return set.Nodes[GroundID] }

// NodeOf 得到元件引脚所在节点
func (set *NodeSet) NodeOf(eid types.ElementID, pin types.PinID) types.NodeID {
	return set.Pins[eid][pin]
}

// Build 由元件引脚与导线坐标构建节点
//
//	components: 元件快照,列表下标即元件ID
//	wires:      导线快照
//	snap:       吸附距离,曼哈顿距离小于等于该值的两点视为连接
//
// 返回的 NodeSet 在相同输入下完全一致: 地节点编号为0,其余节点按首个引脚的出现顺序编号。
func Build(components []types.Component, wires []types.WireSegment, snap float64) (*NodeSet, error) {
	if snap < 0 || math.IsNaN(snap) {
		return nil, fmt.Errorf("%w: snap tolerance %v", ErrInvalidComponent, snap)
	}
	if err := validate(components); err != nil {
		return nil, err
	}
	// 收集所有点: 先引脚,后导线端点
	var terminals []types.Terminal
	for eid, c := range components {
		terminals = append(terminals, c.Terminals(eid)...)
	}
	points := make([]types.Point, 0, len(terminals)+2*len(wires))
	for _, t := range terminals {
		points = append(points, t.Pos)
	}
	for _, w := range wires {
		points = append(points, w.From, w.To)
	}
	cl := newCluster(len(points))
	// 导线两端相连
	base := len(terminals)
	for i := range wires {
		cl.link(base+2*i, base+2*i+1)
	}
	// 位置重合(吸附)相连
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Manhattan(points[j]) <= snap {
				cl.link(i, j)
			}
		}
	}
	// 所有含地线的簇预先合并
	groundPin := -1
	for i, t := range terminals {
		if components[t.Component].Type != types.TypeGround {
			continue
		}
		if groundPin < 0 {
			groundPin = i
			continue
		}
		cl.link(groundPin, i)
	}
	if groundPin < 0 {
		return nil, ErrNoGroundNode
	}
	of := cl.components()
	// 编号
	set := &NodeSet{
		Nodes: []Node{{ID: GroundID, IsGround: true}},
		Pins:  make([][]types.NodeID, len(components)),
	}
	for eid, c := range components {
		set.Pins[eid] = make([]types.NodeID, len(c.Pins))
	}
	clusterID := map[int]types.NodeID{of[groundPin]: GroundID}
	for i, t := range terminals {
		id, ok := clusterID[of[i]]
		if !ok {
			id = types.NodeID(len(set.Nodes))
			clusterID[of[i]] = id
			set.Nodes = append(set.Nodes, Node{ID: id})
		}
		set.Nodes[id].Terminals = append(set.Nodes[id].Terminals, t)
		set.Pins[t.Component][t.Pin] = id
	}
	return set, nil
}

// validate 检查元件定义
func validate(components []types.Component) error {
	labels := make(map[string]types.ElementID, len(components))
	for eid, c := range components {
		if !c.Type.Valid() {
			return fmt.Errorf("%w: %q has unknown type", ErrInvalidComponent, c.Label)
		}
		if len(c.Pins) != c.Type.GetPostCount() {
			return fmt.Errorf("%w: %q needs %d terminals, got %d", ErrInvalidComponent, c.Label, c.Type.GetPostCount(), len(c.Pins))
		}
		if prev, ok := labels[c.Label]; ok {
			return fmt.Errorf("%w: label %q used by components %d and %d", ErrInvalidComponent, c.Label, prev, eid)
		}
		labels[c.Label] = eid
	}
	return nil
}
