package data

import (
	"context"
	"sync"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/domain"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/repo"
)

// memoryHistorySize 内存模式下保留的记录数
const memoryHistorySize = 100

type historyRepo struct {
	data *Data
	log  *log.Helper

	mu     sync.Mutex
	recent []*domain.HistoryEntry // 新记录在前
}

// NewHistoryRepo 创建历史仓库
func NewHistoryRepo(data *Data, logger log.Logger) repo.HistoryRepo {
	return &historyRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *historyRepo) SaveAnalysis(ctx context.Context, a *domain.Analysis) error {
	entry := &domain.HistoryEntry{
		ID:          a.ID,
		TotalWords:  a.TotalWords,
		UniqueWords: a.UniqueWords,
		TopWord:     a.TopWord(),
		CreatedAt:   a.CreatedAt,
	}

	if r.data == nil || r.data.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.recent = append([]*domain.HistoryEntry{entry}, r.recent...)
		if len(r.recent) > memoryHistorySize {
			r.recent = r.recent[:memoryHistorySize]
		}
		return nil
	}

	_, err := r.data.db.ExecContext(ctx,
		`INSERT INTO analyses (id, total_words, unique_words, top_word, created_at) VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.TotalWords, entry.UniqueWords, entry.TopWord, entry.CreatedAt,
	)
	return err
}

func (r *historyRepo) ListRecent(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if r.data == nil || r.data.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if limit > len(r.recent) {
			limit = len(r.recent)
		}
		out := make([]*domain.HistoryEntry, limit)
		copy(out, r.recent[:limit])
		return out, nil
	}

	rows, err := r.data.db.QueryContext(ctx,
		`SELECT id, total_words, unique_words, top_word, created_at FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		e := &domain.HistoryEntry{}
		if err := rows.Scan(&e.ID, &e.TotalWords, &e.UniqueWords, &e.TopWord, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
