// Package report 将求解结果输出为文本与图表
package report

import (
	"circuitsketch/mna"
	"circuitsketch/types"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Text 输出文本报告
//
//	Node 1: 5.000 V
//	R1: 0.050 A
func Text(w io.Writer, sol *mna.Solution) error {
	for id, v := range sol.Voltages {
		if _, err := fmt.Fprintf(w, "Node %d: %.3f V\n", id, clean(v, types.VoltageTolerance)); err != nil {
			return err
		}
	}
	for _, label := range sol.Labels {
		i, _ := sol.Current(label)
		if _, err := fmt.Fprintf(w, "%s: %.3f A\n", label, clean(i, types.CurrentTolerance)); err != nil {
			return err
		}
	}
	return nil
}

// clean 绝对值小于 tol 的数值噪声归零,避免输出 -0.000
func clean(v, tol float64) float64 {
	if math.Abs(v) < tol {
		return 0
	}
	return v
}

// Plot 节点电压柱状图
func Plot(sol *mna.Solution) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Node voltages"
	p.Y.Label.Text = "V"
	values := make(plotter.Values, len(sol.Voltages))
	names := make([]string, len(sol.Voltages))
	for id, v := range sol.Voltages {
		values[id] = v
		names[id] = fmt.Sprintf("N%d", id)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// WritePlot 按格式(png/svg/pdf)写出节点电压图
func WritePlot(w io.Writer, sol *mna.Solution, format string) error {
	p, err := Plot(sol)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("plot writer: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePlot 保存节点电压图,格式由扩展名决定
func SavePlot(path string, sol *mna.Solution) error {
	p, err := Plot(sol)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

// Stat 汇总信息
type Stat struct {
	Nodes   int     // 节点数量(含地)
	Sources int     // 电压源数量
	Power   float64 // 电阻消耗总功率(瓦)
}

// Summary 计算汇总信息
func Summary(components []types.Component, sol *mna.Solution) Stat {
	st := Stat{Nodes: len(sol.Voltages)}
	for _, c := range components {
		switch c.Type {
		case types.TypeVoltageSource:
			st.Sources++
		case types.TypeResistor:
			i, _ := sol.Current(c.Label)
			st.Power += i * i * c.Value
		}
	}
	return st
}

// Fprint 输出文本报告与汇总
func Fprint(w io.Writer, components []types.Component, sol *mna.Solution) error {
	if err := Text(w, sol); err != nil {
		return err
	}
	st := Summary(components, sol)
	_, err := fmt.Fprintf(w, "%d nodes, %d sources, %.3f W dissipated\n", st.Nodes, st.Sources, clean(st.Power, types.PowerTolerance))
	return err
}
