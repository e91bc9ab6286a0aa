// Package cli textradar 命令行入口
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/text_radar/pkg/charts"
	"github.com/iWorld-y/text_radar/pkg/client"
	"github.com/iWorld-y/text_radar/pkg/config"
	"github.com/iWorld-y/text_radar/pkg/controller"
	"github.com/iWorld-y/text_radar/pkg/logger"
)

var (
	cfgFile   string
	serverURL string
	timeout   int
	verbose   bool
)

// NewRootCommand 创建根命令，不带子命令时启动终端面板
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textradar",
		Short: "Word frequency dashboard for the text analysis service",
		Long: `textradar sends text to the analysis service and shows the word
frequencies as stat cards, a bar chart, a doughnut chart and a ranked table.

Running 'textradar' without arguments launches the interactive dashboard.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "analysis service base URL (overrides config)")
	rootCmd.PersistentFlags().IntVar(&timeout, "timeout", 0, "request timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "development"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "textradar %s\n", version)
		},
	}
}

// loadConfig 读取配置文件并应用命令行覆盖
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.LoadConfig(cfgFile); err != nil {
			return nil, err
		}
	}
	if serverURL != "" {
		cfg.Service.BaseURL = serverURL
	}
	if timeout > 0 {
		cfg.Service.Timeout = timeout
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// setup 加载配置并初始化日志。console 为 false 时日志只写文件
func setup(console bool) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File, console); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

func newController(cfg *config.Config, lib charts.Library) *controller.Controller {
	c := client.NewClient(cfg.Service.BaseURL, cfg.RequestTimeout())
	return controller.New(c, lib,
		controller.WithTimeout(cfg.RequestTimeout()),
		controller.WithLogger(logger.Log),
		controller.WithSurfaces(config.DefaultBarSurface, config.DefaultDonutSurface),
	)
}
