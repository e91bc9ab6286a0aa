package server

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/conf"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/service"
)

func NewHTTPServer(c *conf.Server, a *conf.Analysis, s *service.AnalyzerService, d *service.DashboardService, logger log.Logger) *http.Server {
	var rl *conf.RateLimit
	if a != nil {
		rl = a.RateLimit
	}
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		http.Filter(NewRateLimitFilter(rl)),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)

	r := srv.Route("/")
	r.POST("/analyze", s.Analyze)
	r.POST("/analyze/url", s.AnalyzeURL)
	r.GET("/history", s.History)

	// 服务端渲染的分析页面
	r.GET("/", d.Page)
	r.POST("/", d.Page)

	return srv
}
