package service

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/conf"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/usecase"
	"github.com/iWorld-y/text_radar/pkg/charts"
	"github.com/iWorld-y/text_radar/pkg/controller"
	"github.com/iWorld-y/text_radar/pkg/logger"
	"github.com/iWorld-y/text_radar/pkg/model"
)

//go:embed assets/*
var assets embed.FS

var pageTmpl = template.Must(template.ParseFS(assets, "assets/dashboard.html"))

// localAnalyzer 在进程内调用用例，把结果包装成与 HTTP 接口一致的响应
type localAnalyzer struct {
	uc *usecase.AnalysisUseCase
}

func (l *localAnalyzer) Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.Reply, error) {
	a, err := l.uc.Analyze(ctx, req.Text)
	if err != nil {
		// 调用方已取消时按网络失败处理
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		code, body := ErrorResponse(err)
		return &model.Reply{StatusCode: code, Body: body}, nil
	}
	return &model.Reply{StatusCode: nethttp.StatusOK, Body: ToResponse(a)}, nil
}

// DashboardService 服务端渲染的分析页面
type DashboardService struct {
	svc     controller.AnalysisService
	width   int
	height  int
	timeout time.Duration
	log     *log.Helper
}

func NewDashboardService(uc *usecase.AnalysisUseCase, c *conf.Dashboard, logger log.Logger) *DashboardService {
	s := &DashboardService{
		svc:     &localAnalyzer{uc: uc},
		timeout: 30 * time.Second,
		log:     log.NewHelper(logger),
	}
	if c != nil {
		s.width = int(c.ChartWidth)
		s.height = int(c.ChartHeight)
		if d, err := time.ParseDuration(c.RequestTimeout); err == nil && d > 0 {
			s.timeout = d
		}
	}
	return s
}

type pageData struct {
	Text     string
	Loading  bool
	Error    string
	Results  *controller.Results
	Bar      template.HTML
	Doughnut template.HTML
}

// Page GET / 显示空白页面，POST / 分析表单中的文本
func (s *DashboardService) Page(ctx http.Context) error {
	req := ctx.Request()
	data := &pageData{}

	if req.Method == nethttp.MethodPost {
		if err := req.ParseForm(); err != nil {
			return errors.BadRequest("INVALID_FORM", "Invalid form")
		}
		data.Text = req.PostForm.Get("text")
		s.analyze(ctx, data)
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	w := ctx.Response()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}

func (s *DashboardService) analyze(ctx context.Context, data *pageData) {
	ctrl := controller.New(s.svc, charts.NewSVG(s.width, s.height),
		controller.WithTimeout(s.timeout),
		controller.WithLogger(logger.Log),
	)
	defer ctrl.Close()

	if err := ctrl.Submit(ctx, data.Text); err != nil {
		s.log.Debugf("dashboard analysis: %v", err)
	}

	state := ctrl.State()
	data.Loading = state.Loading
	data.Error = state.Error
	data.Results = state.Results
	if state.Results == nil {
		return
	}

	var bar, doughnut bytes.Buffer
	if err := ctrl.RenderChart(charts.Bar, &bar); err == nil {
		data.Bar = template.HTML(bar.String())
	}
	if err := ctrl.RenderChart(charts.Doughnut, &doughnut); err == nil {
		data.Doughnut = template.HTML(doughnut.String())
	}
}
