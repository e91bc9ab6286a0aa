package conf

type Bootstrap struct {
	Server    *Server    `json:"server"`
	Data      *Data      `json:"data"`
	Analysis  *Analysis  `json:"analysis"`
	Dashboard *Dashboard `json:"dashboard"`
	Log       *Log       `json:"log"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Data struct {
	Database *Database `json:"database"`
}

type Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Analysis struct {
	TopN         int32      `json:"top_n"`
	MaxTextBytes int32      `json:"max_text_bytes"`
	FetchTimeout string     `json:"fetch_timeout"`
	RateLimit    *RateLimit `json:"rate_limit"`
}

type RateLimit struct {
	Qps   float64 `json:"qps"`
	Burst int32   `json:"burst"`
}

type Dashboard struct {
	ChartWidth     int32  `json:"chart_width"`
	ChartHeight    int32  `json:"chart_height"`
	RequestTimeout string `json:"request_timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}
