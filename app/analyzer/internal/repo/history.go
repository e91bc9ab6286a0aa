package repo

import (
	"context"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/domain"
)

// HistoryRepo 分析历史仓库接口
type HistoryRepo interface {
	// SaveAnalysis 保存一次分析的摘要
	SaveAnalysis(ctx context.Context, a *domain.Analysis) error
	// ListRecent 按时间倒序返回最近的 limit 条记录
	ListRecent(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
}

// Fetcher 抓取网页并提取正文
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}
