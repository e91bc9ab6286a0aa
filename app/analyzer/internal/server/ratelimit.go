package server

import (
	"encoding/json"
	nethttp "net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/conf"
	"github.com/iWorld-y/text_radar/pkg/model"
)

const msgTooManyRequests = "Too many requests, please slow down."

// NewRateLimitFilter 对会触发分析的请求做令牌桶限流，未配置 qps 时不限流
func NewRateLimitFilter(c *conf.RateLimit) func(nethttp.Handler) nethttp.Handler {
	if c == nil || c.Qps <= 0 {
		return func(next nethttp.Handler) nethttp.Handler { return next }
	}
	burst := int(c.Burst)
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(c.Qps), burst)

	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if runsAnalysis(r) && !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(nethttp.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(&model.AnalysisResponse{Success: false, Error: msgTooManyRequests})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// runsAnalysis POST /analyze*，以及提交分析表单的 POST /
func runsAnalysis(r *nethttp.Request) bool {
	if r.Method != nethttp.MethodPost {
		return false
	}
	return r.URL.Path == "/" || strings.HasPrefix(r.URL.Path, "/analyze")
}
