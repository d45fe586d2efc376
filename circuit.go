// Package circuit 由草图快照得到直流工作点
//
//	cir, _ := circuit.Load("divider.yaml")
//	set, sol, err := cir.Solve(ctx)
package circuit

import (
	"circuitsketch/ctxlog"
	"circuitsketch/graph"
	"circuitsketch/load"
	"circuitsketch/mna"
	"circuitsketch/types"
	"context"
)

// Circuit 电路快照
type Circuit struct {
	Components    []types.Component
	Wires         []types.WireSegment
	SnapTolerance *float64 // 吸附距离,nil 使用默认值;0 表示只连接重合的点
}

// NewCircuit 初始化
func NewCircuit(components []types.Component, wires []types.WireSegment) *Circuit {
	return &Circuit{Components: components, Wires: wires}
}

// Load 加载快照文件(yaml/hcl/sketch)
func Load(filename string) (*Circuit, error) {
	snap, err := load.File(filename)
	if err != nil {
		return nil, err
	}
	cir := &Circuit{Components: snap.Components, Wires: snap.Wires}
	if snap.Snap != 0 {
		cir.SetSnap(snap.Snap)
	}
	return cir, nil
}

// Export 导出 YAML 快照
func (cir *Circuit) Export(filename string) error {
	snap := &load.Snapshot{Components: cir.Components, Wires: cir.Wires}
	if cir.SnapTolerance != nil {
		snap.Snap = *cir.SnapTolerance
	}
	return load.Export(filename, snap)
}

// SetSnap 指定吸附距离
func (cir *Circuit) SetSnap(v float64) { cir.SnapTolerance = &v }

// Snap 实际使用的吸附距离
func (cir *Circuit) Snap() float64 {
	if cir.SnapTolerance == nil {
		return types.DefaultSnapTolerance
	}
	return *cir.SnapTolerance
}

// Topology 构建节点
func (cir *Circuit) Topology() (*graph.NodeSet, error) {
	return graph.Build(cir.Components, cir.Wires, cir.Snap())
}

// Solve 构建节点并求解
func (cir *Circuit) Solve(ctx context.Context) (*graph.NodeSet, *mna.Solution, error) {
	log := ctxlog.FromContext(ctx)
	set, err := cir.Topology()
	if err != nil {
		log.Warn("topology failed", "components", len(cir.Components), "wires", len(cir.Wires), "err", err)
		return nil, nil, err
	}
	var sources int
	for _, c := range cir.Components {
		if c.Type == types.TypeVoltageSource {
			sources++
		}
	}
	log.Debug("topology built", "nodes", set.Len(), "sources", sources, "snap", cir.Snap())
	sol, err := mna.Solve(cir.Components, set)
	if err != nil {
		log.Warn("solve failed", "nodes", set.Len(), "err", err)
		return set, nil, err
	}
	log.Debug("solved", "nodes", set.Len(), "currents", len(sol.Currents))
	return set, sol, nil
}
