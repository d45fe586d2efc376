package graph

import (
	"circuitsketch/types"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// divider 电压源 + 两个串联电阻 + 地
//
//	V1+ (0,0) ── R1 ── (100,0) ── R2 ── (200,0)
//	V1- (0,100)                          │
//	GND (0,100) ──────── wire ────────── (200,100)
func divider() ([]types.Component, []types.WireSegment) {
	comps := []types.Component{
		types.NewVoltageSource("V1", 5, types.Pt(0, 0), types.Pt(0, 100)),
		types.NewResistor("R1", 100, types.Pt(0, 0), types.Pt(100, 0)),
		types.NewResistor("R2", 100, types.Pt(100, 0), types.Pt(200, 0)),
		types.NewGround("GND", types.Pt(0, 100)),
	}
	wires := []types.WireSegment{
		types.Wire(types.Pt(200, 0), types.Pt(200, 100)),
		types.Wire(types.Pt(200, 100), types.Pt(0, 100)),
	}
	return comps, wires
}

func TestBuildDivider(t *testing.T) {
	comps, wires := divider()
	set, err := Build(comps, wires, types.DefaultSnapTolerance)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	// V1+ 与 R1 左端同点,按发现顺序编号为1
	require.Equal(t, 1, set.NodeOf(0, 0))
	require.Equal(t, 1, set.NodeOf(1, 0))
	// 中点
	require.Equal(t, 2, set.NodeOf(1, 1))
	require.Equal(t, 2, set.NodeOf(2, 0))
	// 经导线回到地
	require.Equal(t, GroundID, set.NodeOf(0, 1))
	require.Equal(t, GroundID, set.NodeOf(2, 1))
	require.Equal(t, GroundID, set.NodeOf(3, 0))
	require.Len(t, set.Ground().Terminals, 3)
}

func TestBuildGroundUnique(t *testing.T) {
	// 两个地线标记在不同位置,必须合并为同一个节点0
	comps := []types.Component{
		types.NewVoltageSource("V1", 5, types.Pt(0, 0), types.Pt(0, 100)),
		types.NewResistor("R1", 100, types.Pt(0, 0), types.Pt(300, 0)),
		types.NewGround("G1", types.Pt(0, 100)),
		types.NewGround("G2", types.Pt(300, 0)),
	}
	set, err := Build(comps, nil, types.DefaultSnapTolerance)
	require.NoError(t, err)

	grounds := 0
	for _, n := range set.Nodes {
		if n.IsGround {
			grounds++
			require.Equal(t, GroundID, n.ID)
		}
	}
	require.Equal(t, 1, grounds)
	require.Equal(t, GroundID, set.NodeOf(2, 0))
	require.Equal(t, GroundID, set.NodeOf(3, 0))
	require.Equal(t, GroundID, set.NodeOf(1, 1))
	require.Equal(t, 2, set.Len())
}

func TestBuildNoGround(t *testing.T) {
	comps := []types.Component{
		types.NewVoltageSource("V1", 5, types.Pt(0, 0), types.Pt(0, 100)),
		types.NewResistor("R1", 100, types.Pt(0, 0), types.Pt(0, 100)),
	}
	_, err := Build(comps, nil, types.DefaultSnapTolerance)
	require.ErrorIs(t, err, ErrNoGroundNode)

	_, err = Build(nil, nil, types.DefaultSnapTolerance)
	require.ErrorIs(t, err, ErrNoGroundNode)
}

func TestBuildSnapTolerance(t *testing.T) {
	// 端点偏离 3+1=4 仍在吸附范围内,偏离 6 则不连接
	comps := []types.Component{
		types.NewResistor("R1", 100, types.Pt(0, 0), types.Pt(60, 0)),
		types.NewResistor("R2", 100, types.Pt(63, 1), types.Pt(120, 0)),
		types.NewResistor("R3", 100, types.Pt(126, 0), types.Pt(200, 0)),
		types.NewGround("GND", types.Pt(0, 0)),
	}
	set, err := Build(comps, nil, 5)
	require.NoError(t, err)
	require.Equal(t, set.NodeOf(0, 1), set.NodeOf(1, 0))
	require.NotEqual(t, set.NodeOf(1, 1), set.NodeOf(2, 0))

	set, err = Build(comps, nil, 6)
	require.NoError(t, err)
	require.Equal(t, set.NodeOf(1, 1), set.NodeOf(2, 0))
}

func TestBuildDanglingTerminal(t *testing.T) {
	comps := []types.Component{
		types.NewResistor("R1", 100, types.Pt(0, 0), types.Pt(60, 0)),
		types.NewGround("GND", types.Pt(0, 0)),
	}
	set, err := Build(comps, nil, types.DefaultSnapTolerance)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	far := set.Nodes[set.NodeOf(0, 1)]
	require.False(t, far.IsGround)
	require.Len(t, far.Terminals, 1)
}

func TestBuildStrayWireDropped(t *testing.T) {
	comps := []types.Component{
		types.NewResistor("R1", 100, types.Pt(0, 0), types.Pt(60, 0)),
		types.NewGround("GND", types.Pt(0, 0)),
	}
	wires := []types.WireSegment{types.Wire(types.Pt(500, 500), types.Pt(600, 500))}
	set, err := Build(comps, wires, types.DefaultSnapTolerance)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
}

func TestBuildWireChain(t *testing.T) {
	// 多段导线串联,端点靠吸附互连
	comps := []types.Component{
		types.NewResistor("R1", 100, types.Pt(0, 0), types.Pt(60, 0)),
		types.NewGround("GND", types.Pt(400, 400)),
	}
	wires := []types.WireSegment{
		types.Wire(types.Pt(60, 0), types.Pt(60, 200)),
		types.Wire(types.Pt(62, 201), types.Pt(400, 200)),
		types.Wire(types.Pt(400, 200), types.Pt(400, 398)),
	}
	set, err := Build(comps, wires, types.DefaultSnapTolerance)
	require.NoError(t, err)
	require.Equal(t, GroundID, set.NodeOf(0, 1))
	require.Equal(t, 1, set.NodeOf(0, 0))
}

func TestBuildInvalid(t *testing.T) {
	cases := map[string][]types.Component{
		"unknown type": {
			{Type: types.TypeUnknown, Label: "X1", Pins: []types.Point{{}}},
			types.NewGround("GND", types.Pt(0, 0)),
		},
		"pin count": {
			{Type: types.TypeResistor, Label: "R1", Value: 1, Pins: []types.Point{{}}},
			types.NewGround("GND", types.Pt(0, 0)),
		},
		"duplicate label": {
			types.NewResistor("R1", 1, types.Pt(0, 0), types.Pt(1, 0)),
			types.NewResistor("R1", 1, types.Pt(0, 0), types.Pt(1, 0)),
			types.NewGround("GND", types.Pt(0, 0)),
		},
	}
	for name, comps := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Build(comps, nil, types.DefaultSnapTolerance)
			require.ErrorIs(t, err, ErrInvalidComponent)
		})
	}
	_, err := Build(nil, nil, -1)
	require.ErrorIs(t, err, ErrInvalidComponent)
}

func TestBuildDeterministic(t *testing.T) {
	comps, wires := divider()
	a, err := Build(comps, wires, types.DefaultSnapTolerance)
	require.NoError(t, err)
	b, err := Build(comps, wires, types.DefaultSnapTolerance)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("两次构建结果不一致 (-first +second):\n%s", diff)
	}
}
