package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/text_radar/app/dashboard/internal/tui"
	"github.com/iWorld-y/text_radar/pkg/charts"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"ui"},
		Short:   "Launch the interactive dashboard",
		Long: `Launch the interactive terminal dashboard.

Keys:
  ctrl+s / alt+enter  analyze the text
  tab                 switch focus between the input and the table
  esc / ctrl+c        quit`,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	// 终端界面占用标准输出，日志只写文件
	cfg, err := setup(false)
	if err != nil {
		return err
	}

	ctrl := newController(cfg, charts.NewText(40))
	defer ctrl.Close()

	p := tea.NewProgram(tui.New(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
