package load

import (
	"circuitsketch/types"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlSnapshot YAML 结构
type yamlSnapshot struct {
	Snap       float64         `yaml:"snap,omitempty"`
	Components []yamlComponent `yaml:"components"`
	Wires      [][][]float64   `yaml:"wires,omitempty"`
}

type yamlComponent struct {
	Type  string      `yaml:"type"`
	Label string      `yaml:"label"`
	Value float64     `yaml:"value,omitempty"`
	Pins  [][]float64 `yaml:"pins,flow"`
}

// ReadYAML 读取 YAML 快照
func ReadYAML(r io.Reader) (*Snapshot, error) {
	var ys yamlSnapshot
	if err := yaml.NewDecoder(r).Decode(&ys); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	snap := &Snapshot{Snap: ys.Snap}
	for _, yc := range ys.Components {
		c, err := component(yc.Type, yc.Label, yc.Value, yc.Pins)
		if err != nil {
			return nil, err
		}
		snap.Components = append(snap.Components, c)
	}
	for i, yw := range ys.Wires {
		if len(yw) != 2 {
			return nil, fmt.Errorf("wire %d needs 2 endpoints, got %d", i, len(yw))
		}
		from, err := point(yw[0])
		if err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
		to, err := point(yw[1])
		if err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
		snap.Wires = append(snap.Wires, types.Wire(from, to))
	}
	return snap, nil
}

// WriteYAML 写出 YAML 快照
func WriteYAML(w io.Writer, snap *Snapshot) error {
	ys := yamlSnapshot{Snap: snap.Snap}
	for _, c := range snap.Components {
		yc := yamlComponent{Type: c.Type.String(), Label: c.Label, Value: c.Value}
		for _, p := range c.Pins {
			yc.Pins = append(yc.Pins, []float64{p.X, p.Y})
		}
		ys.Components = append(ys.Components, yc)
	}
	for _, wire := range snap.Wires {
		ys.Wires = append(ys.Wires, [][]float64{{wire.From.X, wire.From.Y}, {wire.To.X, wire.To.Y}})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&ys); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}
