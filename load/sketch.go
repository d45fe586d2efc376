package load

import (
	"circuitsketch/load/ast"
	"circuitsketch/types"
	"fmt"
	"io"
	"strings"
)

// ReadSketch 读取草图文本
func ReadSketch(r io.Reader, filename string) (*Snapshot, error) {
	parser, err := ast.NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return fromSketch(file)
}

// ParseSketch 从字符串读取草图文本
func ParseSketch(s string) (*Snapshot, error) {
	return ReadSketch(strings.NewReader(s), "")
}

func fromSketch(file *ast.File) (*Snapshot, error) {
	vars, err := file.Values()
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{}
	for _, l := range file.Lines {
		switch {
		case l.Snap != nil:
			if snap.Snap, err = ast.ParseSI(l.Snap.Value); err != nil {
				return nil, fmt.Errorf("%s: .snap: %w", l.Pos, err)
			}
		case l.Wire != nil:
			snap.Wires = append(snap.Wires, types.Wire(
				types.Pt(l.Wire.From.X, l.Wire.From.Y),
				types.Pt(l.Wire.To.X, l.Wire.To.Y),
			))
		case l.Element != nil:
			e := l.Element
			value, err := e.Value.Float(vars)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", e.Pos, e.Label, err)
			}
			pins := make([][]float64, len(e.Pins))
			for i, p := range e.Pins {
				pins[i] = []float64{p.X, p.Y}
			}
			c, err := component(e.Type, e.Label, value, pins)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Pos, err)
			}
			snap.Components = append(snap.Components, c)
		}
	}
	return snap, nil
}
