package debug

import (
	"circuitsketch/graph"
	"circuitsketch/mna"
	ctypes "circuitsketch/types"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 求解结果的网页视图
type Charts struct {
	Components []ctypes.Component
	Set        *graph.NodeSet
	Solution   *mna.Solution
}

// NodeName 节点显示名称
func NodeName(id ctypes.NodeID) string {
	if id == graph.GroundID {
		return "Gnd"
	}
	return fmt.Sprintf("Node(%d)", id)
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 初始化界面
	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "电路节点信息",
			Subtitle: "电路连接节点网络图",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
	)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "节点电压",
			Subtitle: "直流工作点",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "V",
			Scale: opts.Bool(true),
		}),
	)
	// 电路节点
	nodes := make([]opts.GraphNode, 0, c.Set.Len()+len(c.Components))
	links := make([]opts.GraphLink, 0)
	for id := 0; id < c.Set.Len(); id++ {
		name := NodeName(id)
		if c.Solution != nil {
			name = fmt.Sprintf("%s %.3fV", name, c.Solution.Voltage(id))
		}
		nodes = append(nodes, opts.GraphNode{
			Name:     name,
			Category: 1,
			Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
		})
	}
	nodes[graph.GroundID].ItemStyle = &opts.ItemStyle{Color: "#000000de"}
	// 元件
	for eid, e := range c.Components {
		name := e.Label
		if c.Solution != nil {
			if i, ok := c.Solution.Current(e.Label); ok {
				name = fmt.Sprintf("%s %.3fA", e.Label, i)
			}
		}
		nodes = append(nodes, opts.GraphNode{
			Name:     name,
			Category: 0,
			Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
		})
		for pin := range e.Pins {
			links = append(links, opts.GraphLink{
				Source: name,
				Target: nodes[c.Set.NodeOf(eid, pin)].Name,
				Value:  float32(pin),
			})
		}
	}
	g.AddSeries("电路列表", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Categories: []*opts.GraphCategory{
				{Name: "元件", ItemStyle: &opts.ItemStyle{Color: "#c71979b7"}},
				{Name: "节点", ItemStyle: &opts.ItemStyle{Color: "#1987c7b7"}},
			},
			Roam:               opts.Bool(true),
			Force:              &opts.GraphForce{Repulsion: 80},
			EdgeLabel:          &opts.EdgeLabel{Show: opts.Bool(true)},
			FocusNodeAdjacency: opts.Bool(true),
		}))
	// 电压信息
	if c.Solution != nil {
		names := make([]string, len(c.Solution.Voltages))
		items := make([]opts.BarData, len(c.Solution.Voltages))
		for id, v := range c.Solution.Voltages {
			names[id] = NodeName(id)
			items[id] = opts.BarData{Value: v}
		}
		bar.SetXAxis(names).AddSeries("电压", items)
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(g)
	if c.Solution != nil {
		page.AddCharts(bar)
	}
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { slog.Error("render charts", "err", err) }
