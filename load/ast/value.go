package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// siSuffix 工程单位后缀,区分大小写: M 为兆, m 为毫
var siSuffix = []struct {
	Suffix string
	Scale  float64
}{
	{"meg", 1e6},
	{"MEG", 1e6},
	{"T", 1e12},
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
	{"m", 1e-3},
	{"u", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
}

// ParseSI 解析带工程单位后缀的数值,如 4.7k、10u、2meg
func ParseSI(s string) (float64, error) {
	s = strings.TrimSpace(s)
	scale := 1.0
	for _, x := range siSuffix {
		if strings.HasSuffix(s, x.Suffix) {
			s, scale = strings.TrimSuffix(s, x.Suffix), x.Scale
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v * scale, nil
}
