package main

import (
	"circuitsketch"
	"circuitsketch/config"
	"circuitsketch/ctxlog"
	"circuitsketch/graph"
	"circuitsketch/mna"
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// options 全局参数
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	snap       float64
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "circuit",
		Short: "Solve sketched DC circuits",
		Long: `circuit 读取电路草图快照(yaml/hcl/cir),将引脚与导线聚合为节点,
然后用 MNA 求出各节点电压与各元件电流。

Examples:
  circuit solve divider.yaml
  circuit solve --snap 2 divider.cir
  circuit plot divider.hcl -o voltages.png
  circuit graph divider.yaml -o divider.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "config file (default $CIRCUIT_CONFIG or ./circuit.yaml)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&o.logFormat, "log-format", "", "log format (text, json)")
	flags.Float64Var(&o.snap, "snap", 0, "snap tolerance, 0 joins only coincident points; overrides config and file")

	root.AddCommand(newSolveCmd(o), newPlotCmd(o), newGraphCmd(o))
	return root
}

// setup 读取配置并创建 logger,命令行参数优先
func (o *options) setup(cmd *cobra.Command) (context.Context, *config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	if cmd.Flags().Changed("snap") {
		cfg.SnapTolerance = o.snap
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return ctxlog.WithLogger(cmd.Context(), logger), cfg, nil
}

// solve 加载并求解快照
//
// 吸附距离: --snap > 快照文件 > 配置文件
func (o *options) solve(cmd *cobra.Command, filename string) (*circuit.Circuit, *graph.NodeSet, *mna.Solution, error) {
	ctx, cfg, err := o.setup(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	cir, err := circuit.Load(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	if cmd.Flags().Changed("snap") || cir.SnapTolerance == nil {
		cir.SetSnap(cfg.SnapTolerance)
	}
	set, sol, err := cir.Solve(ctx)
	if err != nil {
		return nil, nil, nil, describe(err)
	}
	return cir, set, sol, nil
}

// describe 给出错误的提示
func describe(err error) error {
	switch {
	case errors.Is(err, graph.ErrNoGroundNode):
		return errors.Join(err, errors.New("hint: place a GND marker on the circuit"))
	case errors.Is(err, mna.ErrSingularNetwork):
		return errors.Join(err, errors.New("hint: check for unconnected pins or parallel voltage sources"))
	}
	return err
}
