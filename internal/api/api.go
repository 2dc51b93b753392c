package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"gorm.io/gorm"

	"skinvision-backend/internal/core"
	"skinvision-backend/internal/engine"
	"skinvision-backend/internal/imaging"
	"skinvision-backend/internal/messaging"
	"skinvision-backend/internal/storage"
	"skinvision-backend/pkg/api"
)

const (
	ServiceName    = "SkinVision AI Backend"
	ServiceVersion = "1.0.0"
)

type BackendService struct {
	db        *gorm.DB
	store     storage.ObjectStore
	publisher messaging.Publisher

	processor *imaging.Processor
	analyzer  *core.Analyzer
	engine    *engine.Engine

	maxFileSize int64
	http        *resty.Client
}

func NewBackendService(db *gorm.DB, store storage.ObjectStore, publisher messaging.Publisher, processor *imaging.Processor, analyzer *core.Analyzer, eng *engine.Engine, maxFileSize int64) *BackendService {
	return &BackendService{
		db:          db,
		store:       store,
		publisher:   publisher,
		processor:   processor,
		analyzer:    analyzer,
		engine:      eng,
		maxFileSize: maxFileSize,
		http:        resty.New().SetTimeout(30 * time.Second),
	}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(s.Health))
	r.Get("/health/detailed", RestHandler(s.DetailedHealth))

	r.Post("/upload-image", RestHandler(s.UploadImage))
	r.Post("/analyze", RestHandler(s.Analyze))
	r.Post("/analyze-url", RestHandler(s.AnalyzeURL))
	r.Get("/analysis/{analysis_id}", RestHandler(s.GetAnalysis))
	r.Get("/supported-conditions", RestHandler(s.SupportedConditions))

	r.Post("/recommend", RestHandler(s.Recommend))
	r.Get("/recommend/{analysis_id}", RestHandler(s.GetRecommendationsByAnalysis))
	r.Get("/products/categories", RestHandler(s.ProductCategories))
	r.Get("/products/ingredients", RestHandler(s.Ingredients))
	r.Get("/routines/templates", RestHandler(s.RoutineTemplates))
	r.Get("/advice/general", RestHandler(s.GeneralAdvice))
}

func (s *BackendService) Health(r *http.Request) (any, error) {
	return api.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   ServiceName,
		Version:   ServiceVersion,
	}, nil
}

func (s *BackendService) DetailedHealth(r *http.Request) (any, error) {
	base := api.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   ServiceName,
		Version:   ServiceVersion,
	}

	system, err := collectSystemInfo()
	if err != nil {
		// The service is still healthy even when system probes fail.
		return api.DetailedHealthResponse{
			HealthResponse: base,
			Note:           "Basic health check only",
			Error:          err.Error(),
		}, nil
	}

	return api.DetailedHealthResponse{
		HealthResponse: base,
		System:         system,
	}, nil
}

func collectSystemInfo() (*api.SystemInfo, error) {
	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	diskUsage, err := disk.Usage("/")
	if err != nil {
		return nil, err
	}

	platform := runtime.GOOS
	if info, err := host.Info(); err == nil {
		platform = info.Platform
	}

	return &api.SystemInfo{
		Platform:  platform,
		GoVersion: runtime.Version(),
		CpuCount:  runtime.NumCPU(),
		Memory: api.MemoryInfo{
			Total:     memory.Total,
			Available: memory.Available,
			Percent:   memory.UsedPercent,
		},
		Disk: api.DiskInfo{
			Total:   diskUsage.Total,
			Free:    diskUsage.Free,
			Percent: diskUsage.UsedPercent,
		},
	}, nil
}
