package engine

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skinvision-backend/pkg/api"
)

func condition(conditionType, severity string, confidence float64) api.DetectedCondition {
	return api.DetectedCondition{
		ConditionType: conditionType,
		Severity:      severity,
		Confidence:    confidence,
		AffectedZones: []string{api.ZoneOverall},
	}
}

func TestGenerate_BeginnerDefaults(t *testing.T) {
	eng := NewEngine()

	response := eng.Generate(Request{
		AnalysisId: uuid.New(),
		Conditions: []api.DetectedCondition{
			condition(api.ConditionAcne, api.SeverityModerate, 0.85),
		},
	})

	assert.Equal(t, api.ComplexityBeginner, response.SkincareRoutine.DifficultyLevel)
	assert.False(t, response.Personalized)

	total := map[string]bool{}
	for _, p := range append(response.SkincareRoutine.MorningRoutine, response.SkincareRoutine.EveningRoutine...) {
		total[p.ProductId] = true
	}
	assert.LessOrEqual(t, len(total), 4)

	// Beginner routines always carry the basics.
	categories := map[string]bool{}
	for _, p := range response.SkincareRoutine.MorningRoutine {
		categories[p.Category] = true
	}
	assert.True(t, categories[api.CategoryCleanser])
	assert.True(t, categories[api.CategorySunscreen])

	assert.Equal(t, "3-5 minutes", response.SkincareRoutine.TimeCommitment)
	assert.Equal(t, "4-6 weeks", response.FollowUpRecommended)
}

func TestGenerate_InvalidComplexityFallsBack(t *testing.T) {
	eng := NewEngine()

	response := eng.Generate(Request{
		AnalysisId:        uuid.New(),
		RoutineComplexity: "expert",
	})

	assert.Equal(t, api.ComplexityBeginner, response.SkincareRoutine.DifficultyLevel)
}

func TestGenerate_AdvancedProductCap(t *testing.T) {
	eng := NewEngine()

	response := eng.Generate(Request{
		AnalysisId:        uuid.New(),
		RoutineComplexity: api.ComplexityAdvanced,
		Conditions: []api.DetectedCondition{
			condition(api.ConditionAcne, api.SeveritySevere, 0.95),
			condition(api.ConditionWrinkles, api.SeverityModerate, 0.88),
			condition(api.ConditionDryness, api.SeverityMild, 0.82),
			condition(api.ConditionOiliness, api.SeverityMild, 0.78),
		},
	})

	unique := map[string]bool{}
	for _, p := range response.SkincareRoutine.MorningRoutine {
		unique[p.ProductId] = true
	}
	for _, p := range response.SkincareRoutine.EveningRoutine {
		unique[p.ProductId] = true
	}
	assert.LessOrEqual(t, len(unique), 8)
	assert.Equal(t, "8-12 minutes", response.SkincareRoutine.TimeCommitment)
}

func TestPriorityConditions(t *testing.T) {
	conditions := []api.DetectedCondition{
		condition(api.ConditionPores, api.SeverityNone, 0.99),
		condition(api.ConditionAcne, api.SeverityMild, 0.8),
		condition(api.ConditionWrinkles, api.SeveritySevere, 0.9),
		condition(api.ConditionDryness, api.SeverityModerate, 0.85),
	}

	priority := priorityConditions(conditions, nil)

	require.Len(t, priority, 3)
	// Real findings outrank high-confidence "none" results.
	assert.Equal(t, api.ConditionWrinkles, priority[0].ConditionType)
	assert.Equal(t, api.ConditionDryness, priority[1].ConditionType)
	assert.Equal(t, api.ConditionAcne, priority[2].ConditionType)
}

func TestPriorityConditions_FocusAreas(t *testing.T) {
	conditions := []api.DetectedCondition{
		condition(api.ConditionWrinkles, api.SeveritySevere, 0.95),
		condition(api.ConditionAcne, api.SeverityMild, 0.72),
	}

	priority := priorityConditions(conditions, []string{api.ConditionAcne})

	require.NotEmpty(t, priority)
	assert.Equal(t, api.ConditionAcne, priority[0].ConditionType)
}

func TestBudgetScore(t *testing.T) {
	cheap := api.RecommendedProduct{PriceRange: "$6-12"}
	pricey := api.RecommendedProduct{PriceRange: "$30-45"}

	assert.Equal(t, 1.0, budgetScore(cheap, api.BudgetLow))
	assert.Equal(t, 0.5, budgetScore(pricey, api.BudgetLow))
	assert.Equal(t, 1.0, budgetScore(pricey, api.BudgetHigh))
	assert.Equal(t, 0.9, budgetScore(cheap, api.BudgetMedium))
}

func TestBuildRoutine_Splits(t *testing.T) {
	products := []api.RecommendedProduct{
		{ProductId: "a", TimeOfDay: api.TimeBoth, ApplicationOrder: 1, UsageFrequency: "twice daily"},
		{ProductId: "b", TimeOfDay: api.TimeMorning, ApplicationOrder: 6, UsageFrequency: "daily"},
		{ProductId: "c", TimeOfDay: api.TimeEvening, ApplicationOrder: 4, UsageFrequency: "3 times per week"},
	}

	routine := buildRoutine(products, api.ComplexityIntermediate)

	require.Len(t, routine.MorningRoutine, 2)
	assert.Equal(t, "a", routine.MorningRoutine[0].ProductId)
	assert.Equal(t, "b", routine.MorningRoutine[1].ProductId)

	require.Len(t, routine.EveningRoutine, 2)
	assert.Equal(t, "a", routine.EveningRoutine[0].ProductId)
	assert.Equal(t, "c", routine.EveningRoutine[1].ProductId)

	require.Len(t, routine.WeeklyTreatments, 1)
	assert.Equal(t, "c", routine.WeeklyTreatments[0].ProductId)

	assert.Equal(t, "$30-60/month", routine.EstimatedCost)
}

func TestImprovementTimeline(t *testing.T) {
	timeline := improvementTimeline([]api.DetectedCondition{
		condition(api.ConditionAcne, api.SeverityModerate, 0.9),
		condition(api.ConditionDryness, api.SeverityMild, 0.8),
	})

	assert.True(t, strings.Contains(timeline, "6-8 weeks"))
	assert.True(t, strings.Contains(timeline, "1-2 weeks"))

	assert.Equal(t, "4-8 weeks for general skin improvement", improvementTimeline(nil))
}

func TestConfidenceScore_Bounds(t *testing.T) {
	high := confidenceScore([]api.DetectedCondition{
		condition(api.ConditionAcne, api.SeveritySevere, 0.95),
	}, true, api.ComplexityBeginner)
	assert.LessOrEqual(t, high, 1.0)

	low := confidenceScore(nil, false, api.ComplexityAdvanced)
	assert.GreaterOrEqual(t, low, 0.0)
	assert.LessOrEqual(t, low, 1.0)
}

func TestAdviceFor_ConditionSpecific(t *testing.T) {
	advice := adviceFor([]api.DetectedCondition{
		condition(api.ConditionAcne, api.SeverityModerate, 0.9),
		condition(api.ConditionDryness, api.SeverityMild, 0.8),
	})

	assert.Contains(t, advice.HabitsToAvoid, "Avoid heavy, pore-clogging products")
	assert.Contains(t, advice.LifestyleTips, "Use a humidifier in dry environments")
	assert.Equal(t, "If conditions worsen or don't improve after 8-12 weeks", advice.WhenToSeeDermatologist)
}
