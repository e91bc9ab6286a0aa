package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/text_radar/app/analyzer/internal/data"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/service"
	"github.com/iWorld-y/text_radar/app/analyzer/internal/usecase"
)

// ProviderSet 是分析服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewHistoryRepo,
	data.NewFetcher,

	// UseCase providers
	usecase.NewAnalysisUseCase,

	// Service providers
	service.NewAnalyzerService,
	service.NewDashboardService,
)
