package api

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryCleanser    = "cleanser"
	CategoryToner       = "toner"
	CategorySerum       = "serum"
	CategoryMoisturizer = "moisturizer"
	CategorySunscreen   = "sunscreen"
	CategoryTreatment   = "treatment"
	CategoryExfoliant   = "exfoliant"
	CategoryMask        = "mask"
	CategoryEyeCream    = "eye_cream"
)

func ProductCategories() []string {
	return []string{
		CategoryCleanser,
		CategoryToner,
		CategorySerum,
		CategoryMoisturizer,
		CategorySunscreen,
		CategoryTreatment,
		CategoryExfoliant,
		CategoryMask,
		CategoryEyeCream,
	}
}

const (
	IngredientRetinol         = "retinol"
	IngredientVitaminC        = "vitamin_c"
	IngredientPeptides        = "peptides"
	IngredientSalicylicAcid   = "salicylic_acid"
	IngredientBenzoylPeroxide = "benzoyl_peroxide"
	IngredientNiacinamide     = "niacinamide"
	IngredientHyaluronicAcid  = "hyaluronic_acid"
	IngredientGlycerin        = "glycerin"
	IngredientCeramides       = "ceramides"
	IngredientAlphaArbutin    = "alpha_arbutin"
	IngredientKojicAcid       = "kojic_acid"
	IngredientAzelaicAcid     = "azelaic_acid"
	IngredientAHA             = "aha"
	IngredientBHA             = "bha"
	IngredientLacticAcid      = "lactic_acid"
)

const (
	TimeMorning = "morning"
	TimeEvening = "evening"
	TimeBoth    = "both"
)

const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)

const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

type UserProfile struct {
	UserId         string   `json:"user_id"`
	Age            int      `json:"age,omitempty"`
	SkinType       string   `json:"skin_type,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	CurrentRoutine []string `json:"current_skincare_routine,omitempty"`
	SkinConcerns   []string `json:"skin_concerns,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`
}

type RecommendRequest struct {
	AnalysisId        string       `json:"analysis_id"`
	UserProfile       *UserProfile `json:"user_profile,omitempty"`
	BudgetPreference  string       `json:"budget_preference,omitempty"`
	RoutineComplexity string       `json:"routine_complexity,omitempty"`
	FocusAreas        []string     `json:"focus_areas,omitempty"`
}

// RecommendQueryParams are the optional query parameters accepted by
// GET /recommend/{analysis_id}.
type RecommendQueryParams struct {
	Budget     string `schema:"budget"`
	Complexity string `schema:"complexity"`
}

type RecommendedProduct struct {
	ProductId                string   `json:"product_id"`
	Name                     string   `json:"name"`
	Category                 string   `json:"category"`
	Brand                    string   `json:"brand,omitempty"`
	KeyIngredients           []string `json:"key_ingredients"`
	UsageFrequency           string   `json:"usage_frequency"`
	TimeOfDay                string   `json:"time_of_day"`
	ApplicationOrder         int      `json:"application_order"`
	TargetConditions         []string `json:"target_conditions"`
	Benefits                 []string `json:"benefits"`
	PriceRange               string   `json:"price_range,omitempty"`
	RecommendationConfidence float64  `json:"recommendation_confidence"`
	PersonalizationScore     float64  `json:"personalization_score"`
}

type SkincareRoutine struct {
	RoutineId        uuid.UUID            `json:"routine_id"`
	MorningRoutine   []RecommendedProduct `json:"morning_routine"`
	EveningRoutine   []RecommendedProduct `json:"evening_routine"`
	WeeklyTreatments []RecommendedProduct `json:"weekly_treatments"`
	DifficultyLevel  string               `json:"difficulty_level"`
	EstimatedCost    string               `json:"estimated_cost,omitempty"`
	TimeCommitment   string               `json:"time_commitment"`
}

type GeneralAdvice struct {
	LifestyleTips          []string `json:"lifestyle_tips"`
	DietarySuggestions     []string `json:"dietary_suggestions"`
	HabitsToAvoid          []string `json:"habits_to_avoid"`
	WhenToSeeDermatologist string   `json:"when_to_see_dermatologist,omitempty"`
}

type PriorityCondition struct {
	Condition         string  `json:"condition"`
	Severity          string  `json:"severity"`
	Confidence        float64 `json:"confidence"`
	TreatmentPriority string  `json:"treatment_priority"`
}

type RecommendResponse struct {
	RecommendationId    uuid.UUID           `json:"recommendation_id"`
	AnalysisId          uuid.UUID           `json:"analysis_id"`
	Timestamp           time.Time           `json:"timestamp"`
	SkincareRoutine     SkincareRoutine     `json:"skincare_routine"`
	GeneralAdvice       GeneralAdvice       `json:"general_advice"`
	PriorityConditions  []PriorityCondition `json:"priority_conditions"`
	ImprovementTimeline string              `json:"expected_improvement_timeline,omitempty"`
	FollowUpRecommended string              `json:"follow_up_recommended,omitempty"`
	Personalized        bool                `json:"personalized"`
	ConfidenceScore     float64             `json:"confidence_score"`
}

type ProductCategoriesResponse struct {
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
}

type IngredientInfo struct {
	Name        string   `json:"name"`
	Benefits    []string `json:"benefits"`
	BestFor     []string `json:"best_for"`
	Usage       string   `json:"usage"`
	Precautions []string `json:"precautions"`
}

type IngredientsResponse struct {
	Ingredients      map[string]IngredientInfo `json:"ingredients"`
	TotalIngredients int                       `json:"total_ingredients"`
}

type RoutineTemplate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Morning     []string `json:"morning"`
	Evening     []string `json:"evening"`
	Weekly      []string `json:"weekly"`
}

type RoutineTemplatesResponse struct {
	Templates      map[string]RoutineTemplate `json:"templates"`
	TotalTemplates int                        `json:"total_templates"`
}

type GeneralAdviceResponse struct {
	LifestyleTips          []string `json:"lifestyle_tips"`
	DietarySuggestions     []string `json:"dietary_suggestions"`
	HabitsToAvoid          []string `json:"habits_to_avoid"`
	WhenToSeeDermatologist []string `json:"when_to_see_dermatologist"`
}
