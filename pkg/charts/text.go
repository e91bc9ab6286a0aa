package charts

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iWorld-y/text_radar/pkg/view"
)

const labelWidth = 14

// Text 终端字符图表库
type Text struct {
	surfaces
	Width int // 柱子的最大宽度（字符数）
}

// NewText 创建终端字符图表库
func NewText(width int) *Text {
	if width <= 0 {
		width = 40
	}
	return &Text{Width: width}
}

// New 在 surface 上创建图表实例
func (t *Text) New(surface string, kind Kind, ds view.ChartDataset) (Chart, error) {
	h, err := newHandle(&t.surfaces, surface, kind, ds)
	if err != nil {
		return nil, err
	}
	return &textChart{handle: h, width: t.Width}, nil
}

var _ Library = (*Text)(nil)

type textChart struct {
	*handle
	width int
}

func (c *textChart) Render(w io.Writer) error {
	return c.live(func() error {
		var out string
		if c.kind == Bar {
			out = c.bars()
		} else {
			out = c.legend()
		}
		_, err := io.WriteString(w, out)
		return err
	})
}

// bars 每个单词一行：标签、色块、计数
func (c *textChart) bars() string {
	var sb strings.Builder
	max := c.ds.Max()
	if max <= 0 {
		max = 1
	}
	for i, label := range c.ds.Labels {
		n := c.ds.Values[i] * c.width / max
		if n < 1 && c.ds.Values[i] > 0 {
			n = 1
		}
		if n < 0 {
			n = 0
		}
		block := lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.ds.Colors[i].Hex())).
			Render(strings.Repeat("█", n))
		fmt.Fprintf(&sb, "%s %s %d\n", fitLabel(label), block, c.ds.Values[i])
	}
	return sb.String()
}

// legend 环形图的图例，附带占比
func (c *textChart) legend() string {
	var sb strings.Builder
	for i, label := range c.ds.Labels {
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.ds.Colors[i].Hex())).
			Render("●")
		fmt.Fprintf(&sb, "%s %s %d (%s)\n", dot, fitLabel(label), c.ds.Values[i], c.ds.PercentLabel(i))
	}
	return sb.String()
}

func fitLabel(s string) string {
	s = runewidth.Truncate(s, labelWidth, "…")
	return runewidth.FillRight(s, labelWidth)
}
