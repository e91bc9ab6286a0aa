// Package view 把分析服务的响应投影成界面需要的三种视图：统计摘要、图表数据集、排名表格。
// 所有函数都是纯函数，不修改输入。
package view

import (
	"fmt"
	"math"
	"sort"

	"github.com/iWorld-y/text_radar/pkg/model"
)

// StatSummary 统计摘要
type StatSummary struct {
	TotalWords  int
	UniqueWords int
	TopShown    int // chart_data 的条目数，N 由分析服务决定
}

// Stats 计算统计摘要
func Stats(resp *model.AnalysisResponse) StatSummary {
	return StatSummary{
		TotalWords:  resp.TotalWords,
		UniqueWords: resp.UniqueWords,
		TopShown:    len(resp.ChartData),
	}
}

// Color RGBA 颜色，A 取值 0~1
type Color struct {
	R, G, B uint8
	A       float64
}

// String 返回 rgba(...) 形式
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Hex 返回 #rrggbb 形式（忽略透明度）
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opaque 返回不透明版本，用作边框色
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Palette 固定调色板
var Palette = []Color{
	{102, 126, 234, 0.8}, // blue
	{118, 75, 162, 0.8},  // purple
	{255, 99, 132, 0.8},  // pink
	{54, 162, 235, 0.8},  // light blue
	{255, 159, 64, 0.8},  // orange
	{75, 192, 192, 0.8},  // teal
	{255, 205, 86, 0.8},  // yellow
	{153, 102, 255, 0.8}, // violet
	{255, 99, 132, 0.8},  // pink
	{201, 203, 207, 0.8}, // gray
}

// Colors 为 n 个条目分配颜色，超出调色板长度时循环使用
func Colors(n int) []Color {
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Palette[i%len(Palette)]
	}
	return colors
}

// ChartDataset 柱状图和环形图共用的数据集
type ChartDataset struct {
	Labels []string
	Values []int
	Colors []Color
}

// NewChartDataset 按原有顺序投影 chart_data，不重新排序
func NewChartDataset(data []model.WordCount) ChartDataset {
	ds := ChartDataset{
		Labels: make([]string, len(data)),
		Values: make([]int, len(data)),
		Colors: Colors(len(data)),
	}
	for i, wc := range data {
		ds.Labels[i] = wc.Word
		ds.Values[i] = wc.Count
	}
	return ds
}

// Len 条目数
func (d ChartDataset) Len() int {
	return len(d.Values)
}

// Total 当前数据集的计数总和
func (d ChartDataset) Total() int {
	total := 0
	for _, v := range d.Values {
		total += v
	}
	return total
}

// Max 最大计数，空数据集返回 0
func (d ChartDataset) Max() int {
	max := 0
	for _, v := range d.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// Percentage 第 i 项占当前数据集总和的百分比，保留一位小数。
// 分母是数据集自身的总和，而不是响应里的 total_words。
func (d ChartDataset) Percentage(i int) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return round(float64(d.Values[i])/float64(total)*100, 1)
}

// PercentLabel 形如 "33.3%"
func (d ChartDataset) PercentLabel(i int) string {
	return fmt.Sprintf("%.1f%%", d.Percentage(i))
}

// TableRow 排名表格的一行
type TableRow struct {
	Rank       int
	Word       string
	Count      int
	Percentage float64
}

// Percent 形如 "33.33%"
func (r TableRow) Percent() string {
	return fmt.Sprintf("%.2f%%", r.Percentage)
}

// RankedTable 按计数降序排列 words_data 的副本；计数相同时保持输入顺序
func RankedTable(words []model.WordCount) []TableRow {
	sorted := SortByCount(words)

	total := 0
	for _, wc := range sorted {
		total += wc.Count
	}

	rows := make([]TableRow, len(sorted))
	for i, wc := range sorted {
		var pct float64
		if total > 0 {
			pct = round(float64(wc.Count)/float64(total)*100, 2)
		}
		rows[i] = TableRow{
			Rank:       i + 1,
			Word:       wc.Word,
			Count:      wc.Count,
			Percentage: pct,
		}
	}
	return rows
}

// SortByCount 返回按计数降序稳定排序的副本
func SortByCount(words []model.WordCount) []model.WordCount {
	sorted := make([]model.WordCount, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	return sorted
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
