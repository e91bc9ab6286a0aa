package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/conf"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/repo"
)

const defaultFetchTimeout = 15 * time.Second

type readabilityFetcher struct {
	timeout time.Duration
}

// NewFetcher 创建基于 readability 的正文抓取器
func NewFetcher(c *conf.Analysis) repo.Fetcher {
	timeout := defaultFetchTimeout
	if c != nil && c.FetchTimeout != "" {
		if d, err := time.ParseDuration(c.FetchTimeout); err == nil && d > 0 {
			timeout = d
		}
	}
	return &readabilityFetcher{timeout: timeout}
}

func (f *readabilityFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return "", context.DeadlineExceeded
	}

	article, err := readability.FromURL(pageURL, timeout)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no readable content at %s", pageURL)
	}
	return text, nil
}
