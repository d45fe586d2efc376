package load

import (
	"circuitsketch/load/ast"
	"circuitsketch/types"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// hclSnapshot 快照文件的顶层结构
//
//	snap = 5
//	component "R" "R1" {
//	  value = si("4.7k")
//	  pins  = [[0, 0], [60, 0]]
//	}
//	wire {
//	  from = [60, 0]
//	  to   = [60, 100]
//	}
type hclSnapshot struct {
	Snap       *float64        `hcl:"snap,optional"`
	Components []*hclComponent `hcl:"component,block"`
	Wires      []*hclWire      `hcl:"wire,block"`
}

type hclComponent struct {
	Type  string      `hcl:"type,label"`
	Label string      `hcl:"label,label"`
	Value *float64    `hcl:"value,optional"`
	Pins  [][]float64 `hcl:"pins"`
}

type hclWire struct {
	From []float64 `hcl:"from"`
	To   []float64 `hcl:"to"`
}

// siFunc HCL 中的 si("4.7k") 函数
var siFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "value", Type: cty.String}},
	Type:   function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		v, err := ast.ParseSI(args[0].AsString())
		if err != nil {
			return cty.NilVal, err
		}
		return cty.NumberFloatVal(v), nil
	},
})

// evalContext 解码使用的求值上下文
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_snap": cty.NumberFloatVal(types.DefaultSnapTolerance),
		},
		Functions: map[string]function.Function{
			"si": siFunc,
		},
	}
}

// ParseHCL 解析 HCL 快照
func ParseHCL(src []byte, filename string) (*Snapshot, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	var hs hclSnapshot
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &hs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	snap := &Snapshot{}
	if hs.Snap != nil {
		snap.Snap = *hs.Snap
	}
	for _, hc := range hs.Components {
		var value float64
		if hc.Value != nil {
			value = *hc.Value
		}
		c, err := component(hc.Type, hc.Label, value, hc.Pins)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		snap.Components = append(snap.Components, c)
	}
	for i, hw := range hs.Wires {
		from, err := point(hw.From)
		if err != nil {
			return nil, fmt.Errorf("%s: wire %d: %w", filename, i, err)
		}
		to, err := point(hw.To)
		if err != nil {
			return nil, fmt.Errorf("%s: wire %d: %w", filename, i, err)
		}
		snap.Wires = append(snap.Wires, types.Wire(from, to))
	}
	return snap, nil
}
