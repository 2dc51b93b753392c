package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skinvision-backend/internal/core"
	"skinvision-backend/internal/database"
	"skinvision-backend/internal/messaging"
	"skinvision-backend/pkg/api"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

func (s *BackendService) UploadImage(r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(s.maxFileSize); err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "unable to parse multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "missing 'file' form field")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, CodedErrorf(http.StatusBadRequest, "invalid file type '%s', allowed types: image/jpeg, image/png", contentType)
	}

	contents, err := io.ReadAll(io.LimitReader(file, s.maxFileSize+1))
	if err != nil {
		slog.Error("error reading uploaded file", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error reading uploaded file")
	}
	if int64(len(contents)) > s.maxFileSize {
		return nil, CodedErrorf(http.StatusBadRequest, "file too large, maximum size: %d bytes", s.maxFileSize)
	}

	uploadId := uuid.New()
	filename := uploadId.String() + uploadExtension(header.Filename)

	ctx := r.Context()

	if err := s.store.PutObject(ctx, filename, bytes.NewReader(contents)); err != nil {
		slog.Error("error storing uploaded file", "upload_id", uploadId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to store uploaded file")
	}

	upload := database.Upload{
		Id:           uploadId,
		Filename:     filename,
		ContentType:  contentType,
		FileSize:     int64(len(contents)),
		StorageKey:   filename,
		CreationTime: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&upload).Error; err != nil {
		slog.Error("error creating upload record", "upload_id", uploadId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create upload record")
	}

	slog.Info("stored upload", "upload_id", uploadId, "filename", filename, "size", upload.FileSize)

	return api.UploadImageResponse{
		UploadId:  uploadId,
		Filename:  filename,
		FileSize:  upload.FileSize,
		ImageUrl:  "/uploads/" + filename,
		Timestamp: upload.CreationTime,
	}, nil
}

func uploadExtension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return ext
	default:
		return ".jpg"
	}
}

func (s *BackendService) Analyze(r *http.Request) (any, error) {
	req, err := ParseRequestFormData[api.AnalyzeRequest](r, s.maxFileSize)
	if err != nil {
		return nil, err
	}

	if req.UploadId == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "upload_id is required")
	}
	uploadId, err := uuid.Parse(req.UploadId)
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "invalid upload_id '%s'", req.UploadId)
	}

	ctx := r.Context()

	var upload database.Upload
	if err := s.db.WithContext(ctx).First(&upload, "id = ?", uploadId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "upload not found")
		}
		slog.Error("error getting upload", "upload_id", uploadId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving upload record")
	}

	return s.runAnalysis(ctx, upload, req)
}

func (s *BackendService) AnalyzeURL(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AnalyzeRequest](r)
	if err != nil {
		return nil, err
	}

	if req.ImageUrl == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "image_url is required")
	}
	if !strings.HasPrefix(req.ImageUrl, "http://") && !strings.HasPrefix(req.ImageUrl, "https://") {
		return nil, CodedErrorf(http.StatusBadRequest, "image_url must be an http(s) url")
	}

	ctx := r.Context()

	res, err := s.http.R().SetContext(ctx).SetDoNotParseResponse(true).Get(req.ImageUrl)
	if err != nil {
		slog.Error("error fetching image url", "url", req.ImageUrl, "error", err)
		return nil, CodedErrorf(http.StatusBadRequest, "failed to fetch image from url")
	}
	defer res.RawBody().Close()

	if res.StatusCode() != http.StatusOK {
		return nil, CodedErrorf(http.StatusBadRequest, "failed to fetch image from url: status %d", res.StatusCode())
	}

	contentType := res.Header().Get("Content-Type")
	if mediaType, _, found := strings.Cut(contentType, ";"); found {
		contentType = mediaType
	}
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if !allowedImageTypes[contentType] {
		return nil, CodedErrorf(http.StatusBadRequest, "invalid file type '%s', allowed types: image/jpeg, image/png", contentType)
	}

	// Cap the download the same way direct uploads are capped.
	contents, err := io.ReadAll(io.LimitReader(res.RawBody(), s.maxFileSize+1))
	if err != nil {
		slog.Error("error reading fetched image", "url", req.ImageUrl, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error reading fetched image")
	}
	if int64(len(contents)) > s.maxFileSize {
		return nil, CodedErrorf(http.StatusBadRequest, "file too large, maximum size: %d bytes", s.maxFileSize)
	}

	uploadId := uuid.New()
	filename := uploadId.String() + uploadExtension(req.ImageUrl)

	if err := s.store.PutObject(ctx, filename, bytes.NewReader(contents)); err != nil {
		slog.Error("error storing fetched image", "upload_id", uploadId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to store fetched image")
	}

	upload := database.Upload{
		Id:           uploadId,
		Filename:     filename,
		ContentType:  contentType,
		FileSize:     int64(len(contents)),
		StorageKey:   filename,
		CreationTime: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&upload).Error; err != nil {
		slog.Error("error creating upload record", "upload_id", uploadId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create upload record")
	}

	return s.runAnalysis(ctx, upload, req)
}

func (s *BackendService) runAnalysis(ctx context.Context, upload database.Upload, req api.AnalyzeRequest) (any, error) {
	start := time.Now()
	analysisId := uuid.New()

	detailed := true
	if req.DetailedAnalysis != nil {
		detailed = *req.DetailedAnalysis
	}

	record := database.Analysis{
		Id:           analysisId,
		UploadId:     upload.Id,
		Status:       database.AnalysisRunning,
		Detailed:     detailed,
		CreationTime: start.UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		slog.Error("error creating analysis record", "analysis_id", analysisId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create analysis record")
	}

	reader, err := s.store.GetObject(ctx, upload.StorageKey)
	if err != nil {
		s.failAnalysis(ctx, analysisId)
		slog.Error("error reading stored upload", "upload_id", upload.Id, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to read uploaded image")
	}
	defer reader.Close()

	contents, err := io.ReadAll(reader)
	if err != nil {
		s.failAnalysis(ctx, analysisId)
		slog.Error("error reading stored upload", "upload_id", upload.Id, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to read uploaded image")
	}

	img, err := s.processor.Decode(contents)
	if err != nil {
		s.failAnalysis(ctx, analysisId)
		return nil, CodedErrorf(http.StatusBadRequest, "could not decode image: %v", err)
	}

	processed := s.processor.Preprocess(img)
	quality := s.processor.Quality(processed)
	face := s.processor.DetectFace(processed)

	if !face.FaceDetected {
		s.failAnalysis(ctx, analysisId)
		return nil, CodedErrorf(http.StatusBadRequest, "no face detected in image")
	}

	zones := parseAnalyzeZones(req.AnalyzeZones)
	region := faceRegion(processed, face)

	output := s.analyzer.Analyze(core.Seed(analysisId), region, zones, detailed)

	processingTime := time.Since(start)

	result := api.AnalysisResult{
		AnalysisId:         analysisId,
		UploadId:           upload.Id,
		Status:             database.AnalysisCompleted,
		Timestamp:          start.UTC(),
		FaceDetection:      face,
		DetectedConditions: output.Conditions,
		SkinHealthScore:    output.HealthScore,
		ProcessingTime:     processingTime.Seconds(),
		ImageQuality:       &quality,
	}

	if err := s.storeAnalysisResult(ctx, analysisId, result, processingTime); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to store analysis result")
	}

	// Precompute default recommendations so the follow-up lookup is a read.
	payload := messaging.RecommendationTaskPayload{AnalysisId: analysisId}
	if err := s.publisher.PublishRecommendationTask(ctx, payload); err != nil {
		slog.Error("error publishing recommendation task", "analysis_id", analysisId, "error", err)
	}

	slog.Info("analysis complete", "analysis_id", analysisId, "upload_id", upload.Id,
		"conditions", len(output.Conditions), "health_score", output.HealthScore)

	return result, nil
}

func (s *BackendService) failAnalysis(ctx context.Context, analysisId uuid.UUID) {
	if err := database.UpdateAnalysisStatus(ctx, s.db, analysisId, database.AnalysisFailed); err != nil {
		slog.Error("error marking analysis as failed", "analysis_id", analysisId, "error", err)
	}
}

func (s *BackendService) storeAnalysisResult(ctx context.Context, analysisId uuid.UUID, result api.AnalysisResult, elapsed time.Duration) error {
	faceJson, err := marshalJSON(result.FaceDetection)
	if err != nil {
		return err
	}
	conditionsJson, err := marshalJSON(result.DetectedConditions)
	if err != nil {
		return err
	}
	qualityJson, err := marshalJSON(result.ImageQuality)
	if err != nil {
		return err
	}

	updates := map[string]any{
		"status":            database.AnalysisCompleted,
		"skin_health_score": result.SkinHealthScore,
		"processing_ms":     elapsed.Milliseconds(),
		"face_detection":    faceJson,
		"conditions":        conditionsJson,
		"image_quality":     qualityJson,
		"completion_time":   time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Model(&database.Analysis{Id: analysisId}).Updates(updates).Error; err != nil {
		slog.Error("error storing analysis result", "analysis_id", analysisId, "error", err)
		return fmt.Errorf("error storing analysis result: %w", err)
	}
	return nil
}

func parseAnalyzeZones(zones string) []string {
	if zones == "" {
		return []string{api.ZoneOverall}
	}
	var parsed []string
	for _, z := range strings.Split(zones, ",") {
		if z = strings.TrimSpace(z); z != "" {
			parsed = append(parsed, z)
		}
	}
	if len(parsed) == 0 {
		return []string{api.ZoneOverall}
	}
	return parsed
}

func faceRegion(img image.Image, face api.FaceDetection) image.Rectangle {
	if face.FaceBbox == nil {
		return img.Bounds()
	}
	bbox := face.FaceBbox
	return image.Rect(int(bbox.X), int(bbox.Y), int(bbox.X+bbox.Width), int(bbox.Y+bbox.Height))
}

func (s *BackendService) GetAnalysis(r *http.Request) (any, error) {
	analysisId, err := URLParamUUID(r, "analysis_id")
	if err != nil {
		return nil, err
	}

	ctx := r.Context()

	var record database.Analysis
	if err := s.db.WithContext(ctx).First(&record, "id = ?", analysisId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "analysis not found")
		}
		slog.Error("error getting analysis", "analysis_id", analysisId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving analysis record")
	}

	result, err := toAnalysisResult(record)
	if err != nil {
		slog.Error("error converting analysis record", "analysis_id", analysisId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error reading analysis record")
	}
	return result, nil
}

func (s *BackendService) SupportedConditions(r *http.Request) (any, error) {
	return api.SupportedConditionsResponse{
		Conditions:  api.SupportedConditions(),
		Description: "List of skin conditions that can be detected by the system",
	}, nil
}
