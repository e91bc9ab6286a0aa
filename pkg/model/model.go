package model

// WordCount 单词及其出现次数
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalysisRequest 分析请求
type AnalysisRequest struct {
	Text string `json:"text"`
}

// URLAnalysisRequest 按网页地址分析的请求
type URLAnalysisRequest struct {
	URL string `json:"url"`
}

// AnalysisResponse 分析服务的响应
type AnalysisResponse struct {
	Success     bool        `json:"success"`
	Error       string      `json:"error,omitempty"`
	TotalWords  int         `json:"total_words"`
	UniqueWords int         `json:"unique_words"`
	ChartData   []WordCount `json:"chart_data"`
	WordsData   []WordCount `json:"words_data"`
}

// Reply 收到的一次 HTTP 响应，Body 解析失败时为 nil
type Reply struct {
	StatusCode int
	Body       *AnalysisResponse
}

// OK 判断 HTTP 状态码是否为 2xx
func (r *Reply) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// HistoryEntry 历史分析记录
type HistoryEntry struct {
	ID          string `json:"id"`
	TotalWords  int    `json:"total_words"`
	UniqueWords int    `json:"unique_words"`
	TopWord     string `json:"top_word"`
	CreatedAt   string `json:"created_at"`
}

// HistoryResponse 历史记录响应
type HistoryResponse struct {
	Success bool            `json:"success"`
	History []*HistoryEntry `json:"history"`
}
