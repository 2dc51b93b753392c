package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	backend "skinvision-backend/internal/api"
	"skinvision-backend/internal/core"
	"skinvision-backend/internal/database"
	"skinvision-backend/internal/engine"
	"skinvision-backend/internal/imaging"
	"skinvision-backend/internal/messaging"
	"skinvision-backend/internal/storage"
	"skinvision-backend/pkg/api"
)

func createDB(t *testing.T, create ...any) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.GetMigrator(db).Migrate())

	for _, c := range create {
		require.NoError(t, db.Create(c).Error)
	}

	return db
}

func setupService(t *testing.T, db *gorm.DB, maxFileSize int64) (*chi.Mux, *messaging.InMemoryQueue) {
	t.Helper()

	store, err := storage.NewLocalObjectStore(t.TempDir())
	require.NoError(t, err)

	queue := messaging.NewInMemoryQueue()

	service := backend.NewBackendService(
		db,
		store,
		queue,
		imaging.NewProcessor(0.5),
		core.NewAnalyzer(0.7),
		engine.NewEngine(),
		maxFileSize,
	)
	router := chi.NewRouter()
	service.AddRoutes(router)
	return router, queue
}

func encodePNG(t *testing.T, c color.NRGBA, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// skinTone satisfies the skin pixel rule so face detection succeeds.
var skinTone = color.NRGBA{R: 205, G: 140, B: 110, A: 255}

func multipartImage(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func uploadImage(t *testing.T, router *chi.Mux, data []byte) api.UploadImageResponse {
	t.Helper()

	body, contentType := multipartImage(t, "face.png", "image/png", data)
	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "recieved response: "+rec.Body.String())
	var response api.UploadImageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestUploadImage(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	data := encodePNG(t, skinTone, 64, 64)
	response := uploadImage(t, router, data)

	assert.NotEqual(t, uuid.Nil, response.UploadId)
	assert.Equal(t, int64(len(data)), response.FileSize)
	assert.True(t, strings.HasSuffix(response.Filename, ".png"))
	assert.Equal(t, "/uploads/"+response.Filename, response.ImageUrl)

	var record database.Upload
	require.NoError(t, db.First(&record, "id = ?", response.UploadId).Error)
	assert.Equal(t, "image/png", record.ContentType)
}

func TestUploadImage_InvalidType(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	body, contentType := multipartImage(t, "notes.txt", "text/plain", []byte("not an image"))
	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid file type")
}

func TestUploadImage_TooLarge(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 16)

	body, contentType := multipartImage(t, "face.png", "image/png", encodePNG(t, skinTone, 64, 64))
	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file too large")
}

func postForm(router *chi.Mux, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeFlow(t *testing.T) {
	db := createDB(t)
	router, queue := setupService(t, db, 10*1024*1024)

	upload := uploadImage(t, router, encodePNG(t, skinTone, 256, 256))

	rec := postForm(router, "/analyze", url.Values{
		"upload_id":     {upload.UploadId.String()},
		"analyze_zones": {"forehead,cheeks"},
	})
	require.Equal(t, http.StatusOK, rec.Code, "recieved response: "+rec.Body.String())

	var result api.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, upload.UploadId, result.UploadId)
	assert.Equal(t, database.AnalysisCompleted, result.Status)
	assert.True(t, result.FaceDetection.FaceDetected)
	assert.Equal(t, 1, result.FaceDetection.FaceCount)
	assert.GreaterOrEqual(t, result.SkinHealthScore, 0.0)
	assert.LessOrEqual(t, result.SkinHealthScore, 100.0)
	require.NotNil(t, result.ImageQuality)
	assert.Equal(t, "256x256", result.ImageQuality.Resolution)

	for _, condition := range result.DetectedConditions {
		assert.Contains(t, api.SupportedConditions(), condition.ConditionType)
		assert.Greater(t, condition.Confidence, 0.7)
	}

	// A recommendation precompute task is queued for the analysis.
	select {
	case task := <-queue.Tasks():
		assert.Equal(t, messaging.RecommendationQueue, task.Type())
		var payload messaging.RecommendationTaskPayload
		require.NoError(t, json.Unmarshal(task.Payload(), &payload))
		assert.Equal(t, result.AnalysisId, payload.AnalysisId)
	case <-time.After(time.Second):
		t.Fatal("expected recommendation task to be published")
	}

	t.Run("GetAnalysis", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/analysis/"+result.AnalysisId.String(), nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var stored api.AnalysisResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
		assert.Equal(t, result.AnalysisId, stored.AnalysisId)
		assert.Equal(t, database.AnalysisCompleted, stored.Status)
		assert.Equal(t, result.SkinHealthScore, stored.SkinHealthScore)
		assert.ElementsMatch(t, result.DetectedConditions, stored.DetectedConditions)
	})

	t.Run("Deterministic", func(t *testing.T) {
		// Re-running analysis on the same upload gives a new analysis id, so
		// condition confidences may differ, but both runs must be internally
		// consistent and complete.
		rec := postForm(router, "/analyze", url.Values{"upload_id": {upload.UploadId.String()}})
		require.Equal(t, http.StatusOK, rec.Code)

		var second api.AnalysisResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
		assert.NotEqual(t, result.AnalysisId, second.AnalysisId)
		assert.Equal(t, database.AnalysisCompleted, second.Status)
	})
}

func TestAnalyze_NoFace(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	upload := uploadImage(t, router, encodePNG(t, color.NRGBA{R: 30, G: 60, B: 200, A: 255}, 128, 128))

	rec := postForm(router, "/analyze", url.Values{"upload_id": {upload.UploadId.String()}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no face detected")

	var record database.Analysis
	require.NoError(t, db.First(&record, "upload_id = ?", upload.UploadId).Error)
	assert.Equal(t, database.AnalysisFailed, record.Status)
}

func TestAnalyze_UploadNotFound(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	rec := postForm(router, "/analyze", url.Values{"upload_id": {uuid.NewString()}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyze_MissingUploadId(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	rec := postForm(router, "/analyze", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func postAnalyzeURL(router *chi.Mux, imageURL string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"image_url": imageURL})
	req := httptest.NewRequest(http.MethodPost, "/analyze-url", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeURL(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	data := encodePNG(t, skinTone, 128, 128)
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer origin.Close()

	rec := postAnalyzeURL(router, origin.URL+"/face.png")
	require.Equal(t, http.StatusOK, rec.Code, "recieved response: "+rec.Body.String())

	var result api.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, database.AnalysisCompleted, result.Status)
	assert.True(t, result.FaceDetection.FaceDetected)

	var upload database.Upload
	require.NoError(t, db.First(&upload, "id = ?", result.UploadId).Error)
	assert.Equal(t, "image/png", upload.ContentType)
	assert.Equal(t, int64(len(data)), upload.FileSize)
}

func TestAnalyzeURL_InvalidType(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>not an image</body></html>"))
	}))
	defer origin.Close()

	rec := postAnalyzeURL(router, origin.URL+"/page")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid file type")

	// Rejected fetches must leave no trace behind.
	var uploads, analyses int64
	require.NoError(t, db.Model(&database.Upload{}).Count(&uploads).Error)
	require.NoError(t, db.Model(&database.Analysis{}).Count(&analyses).Error)
	assert.Equal(t, int64(0), uploads)
	assert.Equal(t, int64(0), analyses)
}

func TestAnalyzeURL_TooLarge(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 16)

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(encodePNG(t, skinTone, 64, 64))
	}))
	defer origin.Close()

	rec := postAnalyzeURL(router, origin.URL+"/face.png")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file too large")
}

func TestAnalyzeURL_BadURL(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	rec := postAnalyzeURL(router, "ftp://example.com/face.png")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postAnalyzeURL(router, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	req := httptest.NewRequest(http.MethodGet, "/analysis/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func completedAnalysis(t *testing.T, conditions []api.DetectedCondition) database.Analysis {
	t.Helper()

	conditionsJson, err := json.Marshal(conditions)
	require.NoError(t, err)

	return database.Analysis{
		Id:              uuid.New(),
		UploadId:        uuid.New(),
		Status:          database.AnalysisCompleted,
		Detailed:        true,
		SkinHealthScore: 72.5,
		Conditions:      datatypes.JSON(conditionsJson),
		CreationTime:    time.Now(),
	}
}

func TestRecommend(t *testing.T) {
	analysis := completedAnalysis(t, []api.DetectedCondition{
		{ConditionType: api.ConditionAcne, Severity: api.SeveritySevere, Confidence: 0.92, AffectedZones: []string{api.ZoneForehead}},
		{ConditionType: api.ConditionDryness, Severity: api.SeverityMild, Confidence: 0.75, AffectedZones: []string{api.ZoneCheeks}},
	})
	upload := database.Upload{Id: analysis.UploadId, Filename: "face.png", ContentType: "image/png", StorageKey: "face.png", CreationTime: time.Now()}
	db := createDB(t, &upload, &analysis)
	router, _ := setupService(t, db, 10*1024*1024)

	payload := api.RecommendRequest{
		AnalysisId:        analysis.Id.String(),
		UserProfile:       &api.UserProfile{UserId: "user-1", Age: 28, SkinType: "oily"},
		RoutineComplexity: api.ComplexityAdvanced,
		BudgetPreference:  api.BudgetLow,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "recieved response: "+rec.Body.String())
	var response api.RecommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, analysis.Id, response.AnalysisId)
	assert.True(t, response.Personalized)
	assert.Equal(t, api.ComplexityAdvanced, response.SkincareRoutine.DifficultyLevel)
	assert.GreaterOrEqual(t, response.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, response.ConfidenceScore, 1.0)
	assert.NotEmpty(t, response.SkincareRoutine.MorningRoutine)
	assert.NotEmpty(t, response.SkincareRoutine.EveningRoutine)
	assert.NotEmpty(t, response.PriorityConditions)
	assert.Equal(t, api.ConditionAcne, response.PriorityConditions[0].Condition)
	assert.Equal(t, "high", response.PriorityConditions[0].TreatmentPriority)

	// The generated set is stored for later lookups.
	var record database.Recommendation
	require.NoError(t, db.First(&record, "analysis_id = ?", analysis.Id).Error)
	assert.Equal(t, response.RecommendationId, record.Id)
	assert.True(t, record.Personalized)
}

func TestRecommend_AnalysisNotFound(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	body, err := json.Marshal(api.RecommendRequest{AnalysisId: uuid.NewString()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecommend_IncompleteAnalysis(t *testing.T) {
	analysis := database.Analysis{
		Id:           uuid.New(),
		UploadId:     uuid.New(),
		Status:       database.AnalysisFailed,
		CreationTime: time.Now(),
	}
	upload := database.Upload{Id: analysis.UploadId, Filename: "face.png", ContentType: "image/png", StorageKey: "face.png", CreationTime: time.Now()}
	db := createDB(t, &upload, &analysis)
	router, _ := setupService(t, db, 10*1024*1024)

	body, err := json.Marshal(api.RecommendRequest{AnalysisId: analysis.Id.String()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetRecommendationsByAnalysis(t *testing.T) {
	analysis := completedAnalysis(t, []api.DetectedCondition{
		{ConditionType: api.ConditionOiliness, Severity: api.SeverityModerate, Confidence: 0.85, AffectedZones: []string{api.ZoneTZone}},
	})
	upload := database.Upload{Id: analysis.UploadId, Filename: "face.png", ContentType: "image/png", StorageKey: "face.png", CreationTime: time.Now()}
	db := createDB(t, &upload, &analysis)
	router, _ := setupService(t, db, 10*1024*1024)

	t.Run("GeneratesWhenMissing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/recommend/"+analysis.Id.String()+"?complexity=intermediate&budget=low", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "recieved response: "+rec.Body.String())
		var response api.RecommendResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, api.ComplexityIntermediate, response.SkincareRoutine.DifficultyLevel)
		assert.False(t, response.Personalized)
	})

	t.Run("ReturnsPrecomputed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/recommend/"+analysis.Id.String()+"?complexity=intermediate&budget=low", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var first api.RecommendResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

		// The same stored recommendation is returned on repeat lookups.
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommend/"+analysis.Id.String()+"?complexity=intermediate&budget=low", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var second api.RecommendResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
		assert.Equal(t, first.RecommendationId, second.RecommendationId)
	})
}

func TestSupportedConditions(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	req := httptest.NewRequest(http.MethodGet, "/supported-conditions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response api.SupportedConditionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Conditions, 7)
	assert.Contains(t, response.Conditions, api.ConditionAcne)
}

func TestStaticCatalogEndpoints(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	t.Run("ProductCategories", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/categories", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var response api.ProductCategoriesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response.Categories, 9)
		assert.Contains(t, response.Categories, api.CategoryCleanser)
	})

	t.Run("Ingredients", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/ingredients", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var response api.IngredientsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, len(response.Ingredients), response.TotalIngredients)
		assert.Contains(t, response.Ingredients, api.IngredientRetinol)
	})

	t.Run("RoutineTemplates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/routines/templates", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var response api.RoutineTemplatesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 4, response.TotalTemplates)
		assert.Contains(t, response.Templates, "oily_acne_prone")
	})

	t.Run("GeneralAdvice", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/advice/general", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var response api.GeneralAdviceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotEmpty(t, response.LifestyleTips)
		assert.NotEmpty(t, response.DietarySuggestions)
		assert.NotEmpty(t, response.HabitsToAvoid)
		assert.NotEmpty(t, response.WhenToSeeDermatologist)
	})
}

func TestHealth(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var response api.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, backend.ServiceName, response.Service)
	assert.Equal(t, backend.ServiceVersion, response.Version)
}

func TestDetailedHealth(t *testing.T) {
	db := createDB(t)
	router, _ := setupService(t, db, 10*1024*1024)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var response api.DetailedHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	if response.System != nil {
		assert.Greater(t, response.System.CpuCount, 0)
		assert.Greater(t, response.System.Memory.Total, uint64(0))
	} else {
		assert.Equal(t, "Basic health check only", response.Note)
	}
}
