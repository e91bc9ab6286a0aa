package service

import (
	"context"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/domain"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/usecase"
	"github.com/iWorld-y/text_radar/pkg/model"

	_ "github.com/go-kratos/kratos/v2/encoding/json"
)

// AnalyzerService 词频分析 HTTP 接口
type AnalyzerService struct {
	uc  *usecase.AnalysisUseCase
	log *log.Helper
}

func NewAnalyzerService(uc *usecase.AnalysisUseCase, logger log.Logger) *AnalyzerService {
	return &AnalyzerService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

// Analyze POST /analyze
func (s *AnalyzerService) Analyze(ctx http.Context) error {
	var req model.AnalysisRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, errors.BadRequest("INVALID_BODY", "Invalid request body"))
	}

	h := ctx.Middleware(func(c context.Context, in interface{}) (interface{}, error) {
		return s.uc.Analyze(c, in.(*model.AnalysisRequest).Text)
	})
	out, err := h(ctx, &req)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(nethttp.StatusOK, ToResponse(out.(*domain.Analysis)))
}

// AnalyzeURL POST /analyze/url
func (s *AnalyzerService) AnalyzeURL(ctx http.Context) error {
	var req model.URLAnalysisRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, errors.BadRequest("INVALID_BODY", "Invalid request body"))
	}

	h := ctx.Middleware(func(c context.Context, in interface{}) (interface{}, error) {
		return s.uc.AnalyzeURL(c, in.(*model.URLAnalysisRequest).URL)
	})
	out, err := h(ctx, &req)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(nethttp.StatusOK, ToResponse(out.(*domain.Analysis)))
}

// History GET /history?limit=N
func (s *AnalyzerService) History(ctx http.Context) error {
	limit, _ := strconv.Atoi(ctx.Query().Get("limit"))
	entries, err := s.uc.Recent(ctx, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := &model.HistoryResponse{Success: true, History: make([]*model.HistoryEntry, 0, len(entries))}
	for _, e := range entries {
		resp.History = append(resp.History, &model.HistoryEntry{
			ID:          e.ID,
			TotalWords:  e.TotalWords,
			UniqueWords: e.UniqueWords,
			TopWord:     e.TopWord,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}
	return ctx.JSON(nethttp.StatusOK, resp)
}

// fail 以 {"success":false,"error":...} 的形式返回错误
func (s *AnalyzerService) fail(ctx http.Context, err error) error {
	code, body := ErrorResponse(err)
	if code >= nethttp.StatusInternalServerError {
		s.log.Errorf("%s %s: %v", ctx.Request().Method, ctx.Request().URL.Path, err)
	}
	return ctx.JSON(code, body)
}

// ErrorResponse 把错误转换为状态码和响应体。未预期的错误统一为 500
func ErrorResponse(err error) (int, *model.AnalysisResponse) {
	se := errors.FromError(err)
	code := int(se.Code)
	msg := se.Message
	if code == nethttp.StatusInternalServerError {
		msg = "An error occurred: " + msg
	}
	return code, &model.AnalysisResponse{Success: false, Error: msg}
}

// ToResponse 把分析结果转换为响应体
func ToResponse(a *domain.Analysis) *model.AnalysisResponse {
	return &model.AnalysisResponse{
		Success:     true,
		TotalWords:  a.TotalWords,
		UniqueWords: a.UniqueWords,
		ChartData:   toWordCounts(a.Top),
		WordsData:   toWordCounts(a.Words),
	}
}

func toWordCounts(in []domain.WordCount) []model.WordCount {
	out := make([]model.WordCount, 0, len(in))
	for _, wc := range in {
		out = append(out, model.WordCount{Word: wc.Word, Count: wc.Count})
	}
	return out
}
