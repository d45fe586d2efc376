package mna

import "circuitsketch/types"

// Solution 求解结果,每次求解新建
type Solution struct {
	Voltages []float64          // 节点电压(伏特),下标为节点编号,Voltages[0] 恒为0
	Currents map[string]float64 // 支路电流(安培),元件内部由引脚0流向引脚1为正
	Labels   []string           // 双端元件名称,按输入顺序
}

func newSolution(components []types.Component, nodes int) *Solution {
	sol := &Solution{
		Voltages: make([]float64, nodes),
		Currents: make(map[string]float64, len(components)),
	}
	for _, c := range components {
		if c.IsTwoTerminal() {
			sol.Labels = append(sol.Labels, c.Label)
		}
	}
	return sol
}

// Voltage 节点电压,无效编号返回0
func (sol *Solution) Voltage(id types.NodeID) float64 {
	if id >= 0 && id < len(sol.Voltages) {
		return sol.Voltages[id]
	}
	return 0
}

// Current 元件电流
func (sol *Solution) Current(label string) (float64, bool) {
	i, ok := sol.Currents[label]
	return i, ok
}
