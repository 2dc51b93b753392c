package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"skinvision-backend/pkg/api"
)

// Engine derives skincare recommendations from detected conditions using the
// static product catalog and per-complexity routine templates.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

type Request struct {
	AnalysisId        uuid.UUID
	Conditions        []api.DetectedCondition
	UserProfile       *api.UserProfile
	BudgetPreference  string
	RoutineComplexity string
	FocusAreas        []string
}

func (e *Engine) Generate(req Request) api.RecommendResponse {
	complexity := req.RoutineComplexity
	if _, ok := routineTemplates[complexity]; !ok {
		complexity = api.ComplexityBeginner
	}

	priority := priorityConditions(req.Conditions, req.FocusAreas)
	products := e.recommendProducts(priority, req.UserProfile, req.BudgetPreference, complexity)
	routine := buildRoutine(products, complexity)

	return api.RecommendResponse{
		RecommendationId:    uuid.New(),
		AnalysisId:          req.AnalysisId,
		Timestamp:           time.Now().UTC(),
		SkincareRoutine:     routine,
		GeneralAdvice:       adviceFor(priority),
		PriorityConditions:  formatPriority(priority),
		ImprovementTimeline: improvementTimeline(priority),
		FollowUpRecommended: "4-6 weeks",
		Personalized:        req.UserProfile != nil,
		ConfidenceScore:     confidenceScore(priority, req.UserProfile != nil, complexity),
	}
}

// priorityConditions orders findings by actionability (non-trivial severity
// first, then confidence, then severe cases) and keeps the top three so the
// routine stays focused. Focus areas, when given, float to the front.
func priorityConditions(conditions []api.DetectedCondition, focusAreas []string) []api.DetectedCondition {
	ordered := make([]api.DetectedCondition, len(conditions))
	copy(ordered, conditions)

	rank := func(c api.DetectedCondition) (int, float64, int) {
		hasSeverity := 0
		if c.Severity != api.SeverityNone {
			hasSeverity = 1
		}
		severe := 0
		if c.Severity == api.SeveritySevere {
			severe = 1
		}
		return hasSeverity, c.Confidence, severe
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		hi, ci, si := rank(ordered[i])
		hj, cj, sj := rank(ordered[j])
		if hi != hj {
			return hi > hj
		}
		if ci != cj {
			return ci > cj
		}
		return si > sj
	})

	if len(focusAreas) > 0 {
		focus := make(map[string]bool, len(focusAreas))
		for _, f := range focusAreas {
			focus[f] = true
		}
		var focused, rest []api.DetectedCondition
		for _, c := range ordered {
			if focus[c.ConditionType] {
				focused = append(focused, c)
			} else {
				rest = append(rest, c)
			}
		}
		ordered = append(focused, rest...)
	}

	if len(ordered) > 3 {
		ordered = ordered[:3]
	}
	return ordered
}

func (e *Engine) recommendProducts(priority []api.DetectedCondition, profile *api.UserProfile, budget, complexity string) []api.RecommendedProduct {
	template := routineTemplates[complexity]

	var recommended []api.RecommendedProduct
	seen := map[string]bool{}

	for _, category := range template.requiredCategories {
		candidates := productsForCategory(category, priority)
		if best := selectBest(candidates, profile, budget); best != nil && !seen[best.ProductId] {
			recommended = append(recommended, *best)
			seen[best.ProductId] = true
		}
	}

	activesAdded := 0
	for _, condition := range priority {
		if activesAdded >= template.maxActives {
			break
		}
		targeted := targetedTreatments(condition.ConditionType)
		if best := selectBest(targeted, profile, budget); best != nil && !seen[best.ProductId] {
			recommended = append(recommended, *best)
			seen[best.ProductId] = true
			activesAdded++
		}
	}

	if len(recommended) > template.maxProducts {
		recommended = recommended[:template.maxProducts]
	}
	return recommended
}

func productsForCategory(category string, priority []api.DetectedCondition) []api.RecommendedProduct {
	products := productCatalog[category]

	targets := make(map[string]bool, len(priority))
	for _, c := range priority {
		targets[c.ConditionType] = true
	}

	var relevant []api.RecommendedProduct
	for _, p := range products {
		for _, t := range p.TargetConditions {
			if targets[t] {
				relevant = append(relevant, p)
				break
			}
		}
	}

	// Fall back to the whole category when nothing targets the findings;
	// a routine still needs its cleanser, moisturizer, and sunscreen.
	if len(relevant) == 0 {
		return products
	}
	return relevant
}

func targetedTreatments(conditionType string) []api.RecommendedProduct {
	all := append([]api.RecommendedProduct{}, productCatalog[api.CategoryTreatment]...)
	all = append(all, productCatalog[api.CategorySerum]...)

	var targeted []api.RecommendedProduct
	for _, p := range all {
		for _, t := range p.TargetConditions {
			if t == conditionType {
				targeted = append(targeted, p)
				break
			}
		}
	}
	return targeted
}

func selectBest(products []api.RecommendedProduct, profile *api.UserProfile, budget string) *api.RecommendedProduct {
	if len(products) == 0 {
		return nil
	}

	best := products[0]
	bestScore := -1.0
	for _, p := range products {
		score := p.RecommendationConfidence
		if profile != nil {
			score += p.PersonalizationScore * 0.2
		}
		if budget != "" {
			score += budgetScore(p, budget) * 0.1
		}
		if score > bestScore {
			best = p
			bestScore = score
		}
	}
	return &best
}

func budgetScore(p api.RecommendedProduct, budget string) float64 {
	priceRange := p.PriceRange
	if priceRange == "" {
		priceRange = "$0-50"
	}

	switch budget {
	case api.BudgetLow:
		if !strings.Contains(priceRange, "30") {
			return 1.0
		}
		return 0.5
	case api.BudgetHigh:
		if strings.Contains(priceRange, "30") || strings.Contains(priceRange, "40") {
			return 1.0
		}
		return 0.8
	default:
		return 0.9
	}
}

func buildRoutine(products []api.RecommendedProduct, complexity string) api.SkincareRoutine {
	ordered := make([]api.RecommendedProduct, len(products))
	copy(ordered, products)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ApplicationOrder < ordered[j].ApplicationOrder
	})

	morning := []api.RecommendedProduct{}
	evening := []api.RecommendedProduct{}
	weekly := []api.RecommendedProduct{}

	for _, p := range ordered {
		switch p.TimeOfDay {
		case api.TimeMorning:
			morning = append(morning, p)
		case api.TimeEvening:
			evening = append(evening, p)
		case api.TimeBoth:
			morning = append(morning, p)
			evening = append(evening, p)
		}
		if strings.Contains(p.UsageFrequency, "week") {
			weekly = append(weekly, p)
		}
	}

	return api.SkincareRoutine{
		RoutineId:        uuid.New(),
		MorningRoutine:   morning,
		EveningRoutine:   evening,
		WeeklyTreatments: weekly,
		DifficultyLevel:  complexity,
		EstimatedCost:    estimateCost(len(products)),
		TimeCommitment:   timeCommitment(complexity),
	}
}

func estimateCost(productCount int) string {
	switch {
	case productCount <= 3:
		return "$30-60/month"
	case productCount <= 5:
		return "$50-100/month"
	default:
		return "$80-150/month"
	}
}

func timeCommitment(complexity string) string {
	switch complexity {
	case api.ComplexityBeginner:
		return "3-5 minutes"
	case api.ComplexityIntermediate:
		return "5-8 minutes"
	default:
		return "8-12 minutes"
	}
}

func formatPriority(priority []api.DetectedCondition) []api.PriorityCondition {
	formatted := make([]api.PriorityCondition, 0, len(priority))
	for _, c := range priority {
		treatmentPriority := "medium"
		if c.Severity == api.SeveritySevere {
			treatmentPriority = "high"
		}
		formatted = append(formatted, api.PriorityCondition{
			Condition:         c.ConditionType,
			Severity:          c.Severity,
			Confidence:        c.Confidence,
			TreatmentPriority: treatmentPriority,
		})
	}
	return formatted
}

func improvementTimeline(priority []api.DetectedCondition) string {
	var timelines []string
	for _, c := range priority {
		switch c.ConditionType {
		case api.ConditionAcne:
			timelines = append(timelines, "6-8 weeks for acne improvement")
		case api.ConditionDarkSpots:
			timelines = append(timelines, "8-12 weeks for dark spot fading")
		case api.ConditionWrinkles:
			timelines = append(timelines, "12-16 weeks for anti-aging results")
		case api.ConditionOiliness:
			timelines = append(timelines, "2-4 weeks for oil control")
		case api.ConditionDryness:
			timelines = append(timelines, "1-2 weeks for hydration improvement")
		}
	}
	if len(timelines) == 0 {
		return "4-8 weeks for general skin improvement"
	}
	return strings.Join(timelines, "; ")
}

func confidenceScore(priority []api.DetectedCondition, hasProfile bool, complexity string) float64 {
	confidence := 0.8

	if len(priority) > 0 {
		var sum float64
		for _, c := range priority {
			sum += c.Confidence
		}
		confidence += (sum/float64(len(priority)) - 0.7) * 0.2
	}

	if hasProfile {
		confidence += 0.1
	}

	switch complexity {
	case api.ComplexityBeginner:
		confidence += 0.05
	case api.ComplexityAdvanced:
		confidence -= 0.05
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.0 {
		confidence = 0.0
	}
	return confidence
}
