package api

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"skinvision-backend/internal/database"
	"skinvision-backend/pkg/api"
)

func marshalJSON(value any) (datatypes.JSON, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("error serializing value: %w", err)
	}
	return datatypes.JSON(data), nil
}

func toAnalysisResult(record database.Analysis) (api.AnalysisResult, error) {
	result := api.AnalysisResult{
		AnalysisId:      record.Id,
		UploadId:        record.UploadId,
		Status:          record.Status,
		Timestamp:       record.CreationTime,
		SkinHealthScore: record.SkinHealthScore,
		ProcessingTime:  float64(record.ProcessingMs) / 1000,
	}

	if len(record.FaceDetection) > 0 {
		if err := json.Unmarshal(record.FaceDetection, &result.FaceDetection); err != nil {
			return api.AnalysisResult{}, fmt.Errorf("error parsing face detection: %w", err)
		}
	}
	if len(record.Conditions) > 0 {
		if err := json.Unmarshal(record.Conditions, &result.DetectedConditions); err != nil {
			return api.AnalysisResult{}, fmt.Errorf("error parsing conditions: %w", err)
		}
	}
	if len(record.ImageQuality) > 0 {
		var quality api.ImageQuality
		if err := json.Unmarshal(record.ImageQuality, &quality); err != nil {
			return api.AnalysisResult{}, fmt.Errorf("error parsing image quality: %w", err)
		}
		result.ImageQuality = &quality
	}

	return result, nil
}

func toRecommendResponse(record database.Recommendation) (api.RecommendResponse, error) {
	var response api.RecommendResponse
	if err := json.Unmarshal(record.Payload, &response); err != nil {
		return api.RecommendResponse{}, fmt.Errorf("error parsing recommendation payload: %w", err)
	}
	return response, nil
}
