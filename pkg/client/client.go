package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iWorld-y/text_radar/pkg/model"
)

// Client 分析服务 API 客户端
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的分析服务客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Analyze 发送 POST /analyze。
// 只有在没有收到任何响应时才返回 error；收到响应后无论状态码如何都返回 Reply，
// 响应体无法解析时 Reply.Body 为 nil。
func (c *Client) Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.Reply, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}
	return c.post(ctx, "/analyze", payload)
}

// AnalyzeURL 发送 POST /analyze/url
func (c *Client) AnalyzeURL(ctx context.Context, req *model.URLAnalysisRequest) (*model.Reply, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}
	return c.post(ctx, "/analyze/url", payload)
}

func (c *Client) post(ctx context.Context, path string, payload []byte) (*model.Reply, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + path

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}

	reply := &model.Reply{StatusCode: res.StatusCode}
	var resp model.AnalysisResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		reply.Body = &resp
	}
	return reply, nil
}
