package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/conf"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/domain"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/repo"
)

const defaultTopN = 10

// 错误原因
const (
	ReasonEmptyText   = "EMPTY_TEXT"
	ReasonTextTooLong = "TEXT_TOO_LONG"
	ReasonNoWords     = "NO_WORDS"
	ReasonInvalidURL  = "INVALID_URL"
	ReasonFetchFailed = "FETCH_FAILED"
)

// AnalysisUseCase 词频分析业务逻辑
type AnalysisUseCase struct {
	repo     repo.HistoryRepo
	fetcher  repo.Fetcher
	topN     int
	maxBytes int
	log      *log.Helper
}

// NewAnalysisUseCase 创建词频分析业务逻辑实例
func NewAnalysisUseCase(repo repo.HistoryRepo, fetcher repo.Fetcher, c *conf.Analysis, logger log.Logger) *AnalysisUseCase {
	uc := &AnalysisUseCase{
		repo:    repo,
		fetcher: fetcher,
		topN:    defaultTopN,
		log:     log.NewHelper(logger),
	}
	if c != nil {
		if c.TopN > 0 {
			uc.topN = int(c.TopN)
		}
		uc.maxBytes = int(c.MaxTextBytes)
	}
	return uc
}

// Analyze 统计文本词频
func (uc *AnalysisUseCase) Analyze(ctx context.Context, text string) (*domain.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.BadRequest(ReasonEmptyText, "Please enter some text to analyze")
	}
	if uc.maxBytes > 0 && len(text) > uc.maxBytes {
		return nil, errors.BadRequest(ReasonTextTooLong, "text too long")
	}

	words := Tokenize(text)
	if len(words) == 0 {
		return nil, errors.BadRequest(ReasonNoWords, "No valid words found in the text")
	}

	counts := CountWords(words)
	a := &domain.Analysis{
		ID:          uuid.NewString(),
		TotalWords:  len(words),
		UniqueWords: len(counts),
		Words:       counts,
		Top:         TopN(counts, uc.topN),
		CreatedAt:   time.Now(),
	}

	// 历史记录失败不影响本次分析
	if uc.repo != nil {
		if err := uc.repo.SaveAnalysis(ctx, a); err != nil {
			uc.log.Warnf("save analysis %s failed: %v", a.ID, err)
		}
	}
	uc.log.Debugf("analysis %s: %d words, %d unique", a.ID, a.TotalWords, a.UniqueWords)
	return a, nil
}

// AnalyzeURL 抓取网页正文后统计词频
func (uc *AnalysisUseCase) AnalyzeURL(ctx context.Context, pageURL string) (*domain.Analysis, error) {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.BadRequest(ReasonInvalidURL, "Please enter a valid http(s) URL")
	}
	if uc.fetcher == nil {
		return nil, errors.ServiceUnavailable(ReasonFetchFailed, "URL analysis is not available")
	}

	text, err := uc.fetcher.Fetch(ctx, u.String())
	if err != nil {
		uc.log.Errorf("fetch %s failed: %v", u, err)
		return nil, errors.New(502, ReasonFetchFailed, "Could not fetch the page")
	}
	return uc.Analyze(ctx, text)
}

// Recent 最近的分析记录
func (uc *AnalysisUseCase) Recent(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if uc.repo == nil {
		return nil, nil
	}
	if limit < 1 {
		limit = 20
	}
	return uc.repo.ListRecent(ctx, limit)
}
