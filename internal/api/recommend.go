package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skinvision-backend/internal/database"
	"skinvision-backend/internal/engine"
	"skinvision-backend/pkg/api"
)

func (s *BackendService) Recommend(r *http.Request) (any, error) {
	req, err := ParseRequest[api.RecommendRequest](r)
	if err != nil {
		return nil, err
	}

	if req.AnalysisId == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "analysis_id is required")
	}
	analysisId, err := uuid.Parse(req.AnalysisId)
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "invalid analysis_id '%s'", req.AnalysisId)
	}

	return s.generateRecommendations(r.Context(), analysisId, engine.Request{
		AnalysisId:        analysisId,
		UserProfile:       req.UserProfile,
		BudgetPreference:  req.BudgetPreference,
		RoutineComplexity: req.RoutineComplexity,
		FocusAreas:        req.FocusAreas,
	})
}

func (s *BackendService) GetRecommendationsByAnalysis(r *http.Request) (any, error) {
	analysisId, err := URLParamUUID(r, "analysis_id")
	if err != nil {
		return nil, err
	}

	params, err := ParseRequestQueryParams[api.RecommendQueryParams](r)
	if err != nil {
		return nil, err
	}
	if params.Complexity == "" {
		params.Complexity = api.ComplexityBeginner
	}

	ctx := r.Context()

	// The default set is precomputed in the background after each analysis.
	var precomputed database.Recommendation
	err = s.db.WithContext(ctx).
		Where("analysis_id = ? AND routine_complexity = ? AND budget_preference = ?", analysisId, params.Complexity, params.Budget).
		Order("creation_time DESC").
		First(&precomputed).Error
	if err == nil {
		response, convErr := toRecommendResponse(precomputed)
		if convErr == nil {
			return response, nil
		}
		slog.Error("error reading stored recommendation, regenerating", "analysis_id", analysisId, "error", convErr)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("error looking up stored recommendation", "analysis_id", analysisId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving recommendations")
	}

	return s.generateRecommendations(ctx, analysisId, engine.Request{
		AnalysisId:        analysisId,
		BudgetPreference:  params.Budget,
		RoutineComplexity: params.Complexity,
	})
}

func (s *BackendService) generateRecommendations(ctx context.Context, analysisId uuid.UUID, req engine.Request) (any, error) {
	var analysis database.Analysis
	if err := s.db.WithContext(ctx).First(&analysis, "id = ?", analysisId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "analysis not found")
		}
		slog.Error("error getting analysis", "analysis_id", analysisId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving analysis record")
	}

	if analysis.Status != database.AnalysisCompleted {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "analysis is not complete: analysis has status: %s", analysis.Status)
	}

	if len(analysis.Conditions) > 0 {
		if err := json.Unmarshal(analysis.Conditions, &req.Conditions); err != nil {
			slog.Error("error parsing analysis conditions", "analysis_id", analysisId, "error", err)
			return nil, CodedErrorf(http.StatusInternalServerError, "error reading analysis record")
		}
	}

	response := s.engine.Generate(req)

	responseBytes, err := json.Marshal(response)
	if err != nil {
		slog.Error("error serializing recommendations", "analysis_id", analysisId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error serializing recommendations")
	}

	record := database.Recommendation{
		Id:                response.RecommendationId,
		AnalysisId:        analysisId,
		BudgetPreference:  req.BudgetPreference,
		RoutineComplexity: response.SkincareRoutine.DifficultyLevel,
		Personalized:      response.Personalized,
		Payload:           responseBytes,
		CreationTime:      time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// The response is still valid; losing the stored copy only costs a
		// recompute on the next lookup.
		slog.Error("error storing recommendation", "analysis_id", analysisId, "error", err)
	}

	return response, nil
}

func (s *BackendService) ProductCategories(r *http.Request) (any, error) {
	return api.ProductCategoriesResponse{
		Categories:  api.ProductCategories(),
		Description: "Available skincare product categories",
	}, nil
}

func (s *BackendService) Ingredients(r *http.Request) (any, error) {
	ingredients := engine.IngredientCatalog()
	return api.IngredientsResponse{
		Ingredients:      ingredients,
		TotalIngredients: len(ingredients),
	}, nil
}

func (s *BackendService) RoutineTemplates(r *http.Request) (any, error) {
	templates := engine.RoutineTemplateCatalog()
	return api.RoutineTemplatesResponse{
		Templates:      templates,
		TotalTemplates: len(templates),
	}, nil
}

func (s *BackendService) GeneralAdvice(r *http.Request) (any, error) {
	return engine.GeneralAdviceCatalog(), nil
}
