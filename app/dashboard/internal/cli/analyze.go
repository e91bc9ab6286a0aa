package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/text_radar/pkg/charts"
	"github.com/iWorld-y/text_radar/pkg/controller"
)

func newAnalyzeCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a file (or stdin) once and print the results",
		Long: `Send the content of a file, or standard input when no file is given, to the
analysis service and print the counters and the ranked table.

With --out the bar and doughnut charts are written as bar.svg and doughnut.svg.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write bar.svg and doughnut.svg")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, outDir string) error {
	cfg, err := setup(verbose)
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var lib charts.Library = charts.NewText(40)
	if outDir != "" {
		lib = charts.NewSVG(cfg.Charts.Width, cfg.Charts.Height)
	}
	ctrl := newController(cfg, lib)
	defer ctrl.Close()

	if err := ctrl.Submit(cmd.Context(), text); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := ctrl.State()
	printResults(out, st.Results)

	if outDir == "" {
		if st.Results.Dataset.Len() > 0 {
			fmt.Fprintln(out)
			if err := ctrl.RenderChart(charts.Bar, out); err != nil {
				return err
			}
			fmt.Fprintln(out)
			if err := ctrl.RenderChart(charts.Doughnut, out); err != nil {
				return err
			}
		}
		return nil
	}
	return writeCharts(ctrl, outDir, out)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func printResults(w io.Writer, r *controller.Results) {
	fmt.Fprintf(w, "Total words:     %d\n", r.Stats.TotalWords)
	fmt.Fprintf(w, "Unique words:    %d\n", r.Stats.UniqueWords)
	fmt.Fprintf(w, "Top words shown: %d\n\n", r.Stats.TopShown)

	fmt.Fprintf(w, "%-6s %s %8s %11s\n", "Rank", runewidth.FillRight("Word", 20), "Count", "Percentage")
	for _, row := range r.Table {
		word := runewidth.FillRight(runewidth.Truncate(row.Word, 20, "…"), 20)
		fmt.Fprintf(w, "%-6d %s %8d %11s\n", row.Rank, word, row.Count, row.Percent())
	}
}

// writeCharts 把两个图表写成 SVG 文件。没有图表数据时不写文件
func writeCharts(ctrl *controller.Controller, dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, c := range []struct {
		kind charts.Kind
		name string
	}{
		{charts.Bar, "bar.svg"},
		{charts.Doughnut, "doughnut.svg"},
	} {
		path := filepath.Join(dir, c.name)
		if err := writeChart(ctrl, c.kind, path); err != nil {
			if errors.Is(err, controller.ErrNoChart) {
				return nil
			}
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	return nil
}

func writeChart(ctrl *controller.Controller, kind charts.Kind, path string) error {
	var buf bytes.Buffer
	if err := ctrl.RenderChart(kind, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
