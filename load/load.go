// Package load 读写电路快照(元件与导线的几何信息)。
// 支持 YAML、HCL 与草图文本三种格式,按扩展名区分。
package load

import (
	"circuitsketch/types"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat 无法识别的文件格式
var ErrUnknownFormat = errors.New("unknown snapshot format")

// Snapshot 电路快照
type Snapshot struct {
	Components []types.Component
	Wires      []types.WireSegment
	Snap       float64 // 吸附距离,0 表示未指定
}

// Format 快照格式
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatHCL    Format = "hcl"
	FormatSketch Format = "sketch"
)

// FormatOf 通过扩展名判断格式
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	case ".cir", ".sketch", ".txt":
		return FormatSketch, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// File 读取快照文件
func File(path string) (*Snapshot, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path, format)
}

// Read 按格式读取
func Read(r io.Reader, filename string, format Format) (*Snapshot, error) {
	switch format {
	case FormatYAML:
		return ReadYAML(r)
	case FormatHCL:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return ParseHCL(src, filename)
	case FormatSketch:
		return ReadSketch(r, filename)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Export 按扩展名写出快照,目前只支持 YAML
func Export(path string, snap *Snapshot) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if format != FormatYAML {
		return fmt.Errorf("%w: export to %s", ErrUnknownFormat, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteYAML(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// point 将坐标数组转为点
func point(xy []float64) (types.Point, error) {
	if len(xy) != 2 {
		return types.Point{}, fmt.Errorf("point needs 2 coordinates, got %d", len(xy))
	}
	return types.Pt(xy[0], xy[1]), nil
}

// component 校验类型名并创建元件
func component(kind, label string, value float64, pins [][]float64) (types.Component, error) {
	t := types.GetNameType(kind)
	if !t.Valid() {
		return types.Component{}, fmt.Errorf("component %q: unknown type %q", label, kind)
	}
	c := types.Component{Type: t, Label: label, Value: value}
	for i, xy := range pins {
		p, err := point(xy)
		if err != nil {
			return types.Component{}, fmt.Errorf("component %q pin %d: %w", label, i, err)
		}
		c.Pins = append(c.Pins, p)
	}
	return c, nil
}
