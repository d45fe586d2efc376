// Package ast 提供电路草图文本的语法树。
// 每行一个元件、导线或指令:
//
//	# 注释
//	.snap 5
//	.value VCC 5
//	V V1 VCC (0,0) (0,100)
//	R R1 4.7k (0,0) (100,0)
//	GND G1 (0,100)
//	WIRE (100,0) (100,100)
package ast

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SketchLexer 草图文本词法
var SketchLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?(?:meg|MEG|[TGMkmunpf])?`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[(),]`},
})

// File 草图文件
type File struct {
	Lines []*Line `@@*`
}

// Line 一行定义
type Line struct {
	Pos lexer.Position

	Snap    *SnapNode    `  @@`
	Value   *ValueNode   `| @@`
	Wire    *WireNode    `| @@`
	Element *ElementNode `| @@`
}

// SnapNode 吸附距离指令
type SnapNode struct {
	Value string `".snap" @Number`
}

// ValueNode 变量定义
type ValueNode struct {
	Name  string `".value" @Ident`
	Value string `@Number`
}

// WireNode 导线
type WireNode struct {
	From *Point `("WIRE" | "wire" | "W") @@`
	To   *Point `@@`
}

// ElementNode 元件定义
type ElementNode struct {
	Pos lexer.Position

	Type  string   `@Ident`
	Label string   `@Ident`
	Value *Value   `@@?`
	Pins  []*Point `@@+`
}

// Value 数值或变量名
type Value struct {
	Number *string `  @Number`
	Var    *string `| @Ident`
}

// Point 坐标
type Point struct {
	X float64 `"(" @Number ","`
	Y float64 `@Number ")"`
}

// Parser 草图解析器
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser 创建解析器
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(SketchLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse 从 reader 解析
func (p *Parser) Parse(filename string, r io.Reader) (*File, error) {
	file, err := p.parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString 从字符串解析
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// Values 收集全部变量定义
func (f *File) Values() (map[string]float64, error) {
	vars := map[string]float64{}
	for _, l := range f.Lines {
		if l.Value == nil {
			continue
		}
		v, err := ParseSI(l.Value.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: .value %s: %w", l.Pos, l.Value.Name, err)
		}
		vars[l.Value.Name] = v
	}
	return vars, nil
}

// Float 解析数值,变量从 vars 中查找
func (v *Value) Float(vars map[string]float64) (float64, error) {
	switch {
	case v == nil:
		return 0, nil
	case v.Number != nil:
		return ParseSI(*v.Number)
	case v.Var != nil:
		if f, ok := vars[*v.Var]; ok {
			return f, nil
		}
		return 0, fmt.Errorf("undefined value %q", *v.Var)
	}
	return 0, nil
}
