package core

import (
	"image"
	"math/rand"

	"github.com/google/uuid"

	"skinvision-backend/pkg/api"
)

// Analyzer produces skin condition assessments. The scoring is a stand-in
// for trained model inference: confidences are drawn from a generator seeded
// by the analysis id, so a given analysis always yields the same result.
type Analyzer struct {
	confidenceThreshold float64
}

func NewAnalyzer(confidenceThreshold float64) *Analyzer {
	return &Analyzer{confidenceThreshold: confidenceThreshold}
}

type Output struct {
	Conditions  []api.DetectedCondition
	HealthScore float64
}

func Seed(analysisId uuid.UUID) int64 {
	var s int64
	for _, b := range analysisId {
		s = s*131 + int64(b)
	}
	return s
}

// Analyze scores the supported conditions within the given face region. In
// detailed mode every condition is scored and those above the confidence
// threshold are reported; basic mode reports 2-3 high confidence findings.
func (a *Analyzer) Analyze(seed int64, region image.Rectangle, zones []string, detailed bool) Output {
	rng := rand.New(rand.NewSource(seed))
	requested := parseZones(zones)

	var conditions []api.DetectedCondition
	if detailed {
		conditions = a.detailedAnalysis(rng, region, requested)
	} else {
		conditions = a.basicAnalysis(rng)
	}

	return Output{
		Conditions:  conditions,
		HealthScore: healthScore(conditions),
	}
}

func parseZones(zones []string) []string {
	valid := map[string]bool{
		api.ZoneForehead: true,
		api.ZoneCheeks:   true,
		api.ZoneNose:     true,
		api.ZoneChin:     true,
		api.ZoneTZone:    true,
		api.ZoneOverall:  true,
	}

	var parsed []string
	for _, z := range zones {
		if valid[z] {
			parsed = append(parsed, z)
		} else {
			parsed = append(parsed, api.ZoneOverall)
		}
	}
	if len(parsed) == 0 {
		parsed = []string{api.ZoneOverall}
	}
	return parsed
}

func (a *Analyzer) detailedAnalysis(rng *rand.Rand, region image.Rectangle, requested []string) []api.DetectedCondition {
	var conditions []api.DetectedCondition
	for _, conditionType := range api.SupportedConditions() {
		confidence := 0.3 + rng.Float64()*0.65
		if confidence <= a.confidenceThreshold {
			continue
		}

		severity := mockSeverity(rng, confidence)
		condition := api.DetectedCondition{
			ConditionType: conditionType,
			Severity:      severity,
			Confidence:    confidence,
			AffectedZones: affectedZones(rng, conditionType, requested),
		}
		if severity != api.SeverityNone {
			condition.BoundingBoxes = mockBoundingBoxes(rng, region)
		}
		conditions = append(conditions, condition)
	}
	return conditions
}

func (a *Analyzer) basicAnalysis(rng *rand.Rand) []api.DetectedCondition {
	supported := api.SupportedConditions()
	count := 2 + rng.Intn(2)

	var conditions []api.DetectedCondition
	for _, i := range rng.Perm(len(supported))[:count] {
		confidence := 0.7 + rng.Float64()*0.25
		conditions = append(conditions, api.DetectedCondition{
			ConditionType: supported[i],
			Severity:      mockSeverity(rng, confidence),
			Confidence:    confidence,
			AffectedZones: []string{api.ZoneOverall},
		})
	}
	return conditions
}

// Higher confidence maps to the more severe bands.
func mockSeverity(rng *rand.Rand, confidence float64) string {
	switch {
	case confidence > 0.9:
		return pick(rng, api.SeverityModerate, api.SeveritySevere)
	case confidence > 0.8:
		return pick(rng, api.SeverityMild, api.SeverityModerate)
	default:
		return pick(rng, api.SeverityNone, api.SeverityMild)
	}
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

func affectedZones(rng *rand.Rand, conditionType string, requested []string) []string {
	overall := false
	for _, z := range requested {
		if z == api.ZoneOverall {
			overall = true
			break
		}
	}
	if !overall {
		return requested
	}

	switch conditionType {
	case api.ConditionOiliness:
		return []string{api.ZoneTZone, api.ZoneForehead, api.ZoneNose}
	case api.ConditionAcne:
		return sample(rng, []string{api.ZoneForehead, api.ZoneCheeks, api.ZoneChin}, 1+rng.Intn(2))
	case api.ConditionWrinkles:
		return []string{api.ZoneForehead}
	default:
		zones := []string{api.ZoneForehead, api.ZoneCheeks, api.ZoneNose, api.ZoneChin, api.ZoneTZone}
		return sample(rng, zones, 1+rng.Intn(2))
	}
}

func sample(rng *rand.Rand, options []string, k int) []string {
	if k > len(options) {
		k = len(options)
	}
	picked := make([]string, 0, k)
	for _, i := range rng.Perm(len(options))[:k] {
		picked = append(picked, options[i])
	}
	return picked
}

func mockBoundingBoxes(rng *rand.Rand, region image.Rectangle) []api.BoundingBox {
	width := float64(region.Dx())
	height := float64(region.Dy())

	count := 1 + rng.Intn(3)
	boxes := make([]api.BoundingBox, 0, count)
	for i := 0; i < count; i++ {
		boxes = append(boxes, api.BoundingBox{
			X:      rng.Float64() * width * 0.7,
			Y:      rng.Float64() * height * 0.7,
			Width:  width*0.05 + rng.Float64()*width*0.25,
			Height: height*0.05 + rng.Float64()*height*0.25,
		})
	}
	return boxes
}

var severityWeights = map[string]float64{
	api.SeverityNone:     0,
	api.SeverityMild:     3,
	api.SeverityModerate: 8,
	api.SeveritySevere:   15,
}

var conditionWeights = map[string]float64{
	api.ConditionAcne:         1.2,
	api.ConditionWrinkles:     1.0,
	api.ConditionDarkSpots:    1.1,
	api.ConditionOiliness:     0.8,
	api.ConditionDryness:      0.9,
	api.ConditionPores:        0.7,
	api.ConditionPigmentation: 1.1,
}

// healthScore deducts from a base of 100 per finding, weighted by severity,
// condition impact, and confidence. A clean result scores 85 rather than 100
// since absence of findings is not proof of perfect skin.
func healthScore(conditions []api.DetectedCondition) float64 {
	if len(conditions) == 0 {
		return 85.0
	}

	score := 100.0
	for _, c := range conditions {
		weight, ok := conditionWeights[c.ConditionType]
		if !ok {
			weight = 1.0
		}
		score -= severityWeights[c.Severity] * weight * c.Confidence
	}
	if score < 0 {
		score = 0
	}
	// round to one decimal place
	return float64(int(score*10+0.5)) / 10
}
