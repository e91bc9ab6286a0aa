// Package charts 定义图表库抽象：一个图表实例绑定在一个渲染表面上，
// 同一表面同时只能绑定一个实例，替换前必须先 Destroy 旧实例。
package charts

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/iWorld-y/text_radar/pkg/view"
)

// Kind 图表类型
type Kind string

const (
	Bar      Kind = "bar"
	Doughnut Kind = "doughnut"
)

var (
	// ErrSurfaceInUse 表面已被其他图表实例占用
	ErrSurfaceInUse = errors.New("surface already bound to a chart")
	// ErrDestroyed 图表实例已销毁
	ErrDestroyed = errors.New("chart destroyed")
	// ErrEmptyDataset 数据集为空
	ErrEmptyDataset = errors.New("chart dataset is empty")
	// ErrNoValues 数据集中没有正数值
	ErrNoValues = errors.New("chart dataset has no positive values")
)

// Chart 一个已绑定到表面的图表实例
type Chart interface {
	Kind() Kind
	Surface() string
	Dataset() view.ChartDataset
	Render(w io.Writer) error
	// Destroy 释放表面，可重复调用
	Destroy()
}

// Library 图表库
type Library interface {
	New(surface string, kind Kind, ds view.ChartDataset) (Chart, error)
}

// surfaces 记录已绑定的表面
type surfaces struct {
	mu    sync.Mutex
	bound map[string]struct{}
}

func (s *surfaces) bind(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound == nil {
		s.bound = make(map[string]struct{})
	}
	if _, ok := s.bound[name]; ok {
		return fmt.Errorf("%w: %s", ErrSurfaceInUse, name)
	}
	s.bound[name] = struct{}{}
	return nil
}

func (s *surfaces) release(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bound, name)
}

// Bound 表面当前是否已被绑定，只用于检查状态
func (s *surfaces) Bound(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bound[name]
	return ok
}

// handle 两种图表库共用的实例状态
type handle struct {
	mu        sync.Mutex
	kind      Kind
	surface   string
	ds        view.ChartDataset
	destroyed bool
	owner     *surfaces
}

func (h *handle) Kind() Kind                 { return h.kind }
func (h *handle) Surface() string            { return h.surface }
func (h *handle) Dataset() view.ChartDataset { return h.ds }

func (h *handle) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return
	}
	h.destroyed = true
	h.owner.release(h.surface)
}

// live 在持锁状态下执行 fn，实例已销毁时返回 ErrDestroyed
func (h *handle) live(fn func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return ErrDestroyed
	}
	return fn()
}

func newHandle(owner *surfaces, surface string, kind Kind, ds view.ChartDataset) (*handle, error) {
	if kind != Bar && kind != Doughnut {
		return nil, fmt.Errorf("unknown chart kind: %s", kind)
	}
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if ds.Max() <= 0 {
		return nil, ErrNoValues
	}
	if err := owner.bind(surface); err != nil {
		return nil, err
	}
	return &handle{kind: kind, surface: surface, ds: ds, owner: owner}, nil
}
