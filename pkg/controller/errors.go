package controller

import (
	"errors"
	"fmt"
)

// 界面上展示的固定提示
const (
	MsgEmptyInput      = "Please enter some text to analyze."
	MsgNetworkError    = "Network error. Please check your connection and try again."
	MsgServiceFallback = "An error occurred while analyzing the text."
)

// ErrSuperseded 本次提交已被更新的提交取代，其结果被丢弃
var ErrSuperseded = errors.New("submission superseded by a newer one")

// ErrNoChart 当前没有可渲染的图表
var ErrNoChart = errors.New("no chart rendered")

// ValidationError 输入去除空白后为空，不会发起请求
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NetworkError 没有收到任何响应（DNS、连接、超时）
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return MsgNetworkError }

func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError 收到了响应，但状态码非 2xx 或 success 为 false
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// RenderError 图表实例创建失败
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("Unable to render charts: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
