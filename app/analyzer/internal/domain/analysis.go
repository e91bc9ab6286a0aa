package domain

import "time"

// WordCount 单词计数
type WordCount struct {
	Word  string
	Count int
}

// Analysis 一次词频分析的结果
type Analysis struct {
	ID          string
	TotalWords  int
	UniqueWords int
	Words       []WordCount // 全部单词，按首次出现顺序
	Top         []WordCount // 出现次数最多的前 N 个
	CreatedAt   time.Time
}

// TopWord 出现次数最多的单词，没有单词时为空
func (a *Analysis) TopWord() string {
	if len(a.Top) == 0 {
		return ""
	}
	return a.Top[0].Word
}

// HistoryEntry 历史分析记录摘要
type HistoryEntry struct {
	ID          string
	TotalWords  int
	UniqueWords int
	TopWord     string
	CreatedAt   time.Time
}
