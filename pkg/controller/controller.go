// Package controller 实现分析控制器：负责一次文本分析往返的生命周期，
// 并把结果投影成统计摘要、两个图表实例和排名表格。
package controller

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/text_radar/pkg/charts"
	"github.com/iWorld-y/text_radar/pkg/model"
	"github.com/iWorld-y/text_radar/pkg/view"
)

// AnalysisService 分析服务。只有没有收到响应时才返回 error。
type AnalysisService interface {
	Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.Reply, error)
}

// Results 结果面板
type Results struct {
	Stats    view.StatSummary
	Dataset  view.ChartDataset
	Table    []view.TableRow
	Response *model.AnalysisResponse
}

// State 视图状态快照。Error 与 Results 至多一个非空。
type State struct {
	Loading bool
	Error   string
	Results *Results
}

// Option 控制器选项
type Option func(*Controller)

// WithSurfaces 指定两个图表的渲染表面
func WithSurfaces(bar, doughnut string) Option {
	return func(c *Controller) {
		c.barSurface = bar
		c.doughnutSurface = doughnut
	}
}

// WithTimeout 单次请求超时，<= 0 表示不设置
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// WithLogger 指定日志
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller 分析控制器
type Controller struct {
	svc     AnalysisService
	lib     charts.Library
	timeout time.Duration
	log     logrus.FieldLogger

	barSurface      string
	doughnutSurface string

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	loading  bool
	lastErr  string
	last     *model.AnalysisResponse
	results  *Results
	bar      charts.Chart
	doughnut charts.Chart
}

// New 创建控制器，由宿主在启动时调用一次
func New(svc AnalysisService, lib charts.Library, opts ...Option) *Controller {
	c := &Controller{
		svc:             svc,
		lib:             lib,
		timeout:         30 * time.Second,
		log:             logrus.StandardLogger(),
		barSurface:      "barChart",
		doughnutSurface: "pieChart",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit 提交一次分析。
// 每次提交都会取代之前仍在进行中的提交：旧请求被取消，其结果不会再影响视图。
func (c *Controller) Submit(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	c.supersede()
	if trimmed == "" {
		err := &ValidationError{Message: MsgEmptyInput}
		c.showError(err.Message)
		c.mu.Unlock()
		return err
	}

	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	seq := c.seq
	c.cancel = cancel
	c.lastErr = ""
	c.results = nil
	c.loading = true
	c.mu.Unlock()

	start := time.Now()
	reply, err := c.svc.Analyze(ctx, &model.AnalysisRequest{Text: trimmed})

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		c.log.Debugf("discarding superseded submission #%d", seq)
		return ErrSuperseded
	}
	c.cancel = nil
	c.loading = false

	if err != nil {
		c.log.WithField("error", err).Warnf("analysis request #%d failed", seq)
		nerr := &NetworkError{Err: err}
		c.showError(nerr.Error())
		return nerr
	}

	if reply == nil {
		serr := &ServiceError{Message: MsgServiceFallback}
		c.log.Warnf("analysis request #%d returned no reply", seq)
		c.showError(serr.Message)
		return serr
	}
	if !reply.OK() || reply.Body == nil || !reply.Body.Success {
		serr := &ServiceError{StatusCode: reply.StatusCode, Message: MsgServiceFallback}
		if reply.Body != nil && reply.Body.Error != "" {
			serr.Message = reply.Body.Error
		}
		c.log.Warnf("analysis request #%d rejected (status %d): %s", seq, reply.StatusCode, serr.Message)
		c.showError(serr.Message)
		return serr
	}
	if !validCounts(reply.Body.ChartData) || !validCounts(reply.Body.WordsData) {
		serr := &ServiceError{StatusCode: reply.StatusCode, Message: MsgServiceFallback}
		c.log.Warnf("analysis request #%d returned a non-positive word count", seq)
		c.showError(serr.Message)
		return serr
	}

	if err := c.showResults(reply.Body); err != nil {
		c.showError(err.Error())
		return err
	}
	c.log.Debugf("analysis request #%d rendered in %s", seq, time.Since(start))
	return nil
}

// ShowError 用 message 替换当前的错误提示，并隐藏结果面板
func (c *Controller) ShowError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showError(message)
}

// State 返回当前视图状态
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Loading: c.loading,
		Error:   c.lastErr,
		Results: c.results,
	}
}

// LastResponse 最近一次成功的响应
func (c *Controller) LastResponse() *model.AnalysisResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// RenderChart 渲染当前的柱状图或环形图。持锁渲染，避免并发提交在渲染途中销毁实例。
func (c *Controller) RenderChart(kind charts.Kind, w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.results == nil {
		return ErrNoChart
	}
	var ch charts.Chart
	switch kind {
	case charts.Bar:
		ch = c.bar
	case charts.Doughnut:
		ch = c.doughnut
	}
	if ch == nil {
		return ErrNoChart
	}
	return ch.Render(w)
}

// Close 释放两个图表实例并取消进行中的请求
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersede()
	c.releaseCharts()
	c.results = nil
}

// supersede 让之前的提交失效。调用方持有 c.mu。
func (c *Controller) supersede() {
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.loading = false
}

// validCounts 每个单词至少出现一次
func validCounts(counts []model.WordCount) bool {
	for _, wc := range counts {
		if wc.Count < 1 {
			return false
		}
	}
	return true
}

func (c *Controller) showError(message string) {
	c.lastErr = message
	c.results = nil
}

func (c *Controller) showResults(resp *model.AnalysisResponse) error {
	ds := view.NewChartDataset(resp.ChartData)
	if err := c.renderCharts(ds); err != nil {
		return err
	}
	c.last = resp
	c.lastErr = ""
	c.results = &Results{
		Stats:    view.Stats(resp),
		Dataset:  ds,
		Table:    view.RankedTable(resp.WordsData),
		Response: resp,
	}
	return nil
}

// renderCharts 先销毁旧实例再创建新实例，同一表面不会同时绑定两个图表
func (c *Controller) renderCharts(ds view.ChartDataset) error {
	c.releaseCharts()
	if ds.Len() == 0 {
		return nil
	}

	bar, err := c.lib.New(c.barSurface, charts.Bar, ds)
	if err != nil {
		return &RenderError{Err: err}
	}
	doughnut, err := c.lib.New(c.doughnutSurface, charts.Doughnut, ds)
	if err != nil {
		bar.Destroy()
		return &RenderError{Err: err}
	}
	c.bar, c.doughnut = bar, doughnut
	return nil
}

func (c *Controller) releaseCharts() {
	if c.bar != nil {
		c.bar.Destroy()
		c.bar = nil
	}
	if c.doughnut != nil {
		c.doughnut.Destroy()
		c.doughnut = nil
	}
}
