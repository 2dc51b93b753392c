package engine

import "skinvision-backend/pkg/api"

// routineTemplate caps how many products and active treatments a routine of
// a given complexity may carry, and which categories it must always include.
type routineTemplate struct {
	maxProducts        int
	maxActives         int
	requiredCategories []string
}

var routineTemplates = map[string]routineTemplate{
	api.ComplexityBeginner: {
		maxProducts:        4,
		maxActives:         1,
		requiredCategories: []string{api.CategoryCleanser, api.CategoryMoisturizer, api.CategorySunscreen},
	},
	api.ComplexityIntermediate: {
		maxProducts:        6,
		maxActives:         2,
		requiredCategories: []string{api.CategoryCleanser, api.CategorySerum, api.CategoryMoisturizer, api.CategorySunscreen},
	},
	api.ComplexityAdvanced: {
		maxProducts:        8,
		maxActives:         3,
		requiredCategories: []string{api.CategoryCleanser, api.CategorySerum, api.CategoryTreatment, api.CategoryMoisturizer, api.CategorySunscreen},
	},
}

// productCatalog is the static product table keyed by category. In a later
// phase this becomes a real product database.
var productCatalog = map[string][]api.RecommendedProduct{
	api.CategoryCleanser: {
		{
			ProductId:                "cleanser_001",
			Name:                     "Gentle Foaming Cleanser",
			Category:                 api.CategoryCleanser,
			Brand:                    "SkinCare Pro",
			KeyIngredients:           []string{api.IngredientGlycerin},
			UsageFrequency:           "twice daily",
			TimeOfDay:                api.TimeBoth,
			ApplicationOrder:         1,
			TargetConditions:         []string{api.ConditionOiliness, api.ConditionAcne},
			Benefits:                 []string{"Removes excess oil", "Gentle on skin", "Maintains skin barrier"},
			PriceRange:               "$8-15",
			RecommendationConfidence: 0.9,
			PersonalizationScore:     0.7,
		},
		{
			ProductId:                "cleanser_002",
			Name:                     "Hydrating Cream Cleanser",
			Category:                 api.CategoryCleanser,
			Brand:                    "Gentle Care",
			KeyIngredients:           []string{api.IngredientCeramides, api.IngredientHyaluronicAcid},
			UsageFrequency:           "twice daily",
			TimeOfDay:                api.TimeBoth,
			ApplicationOrder:         1,
			TargetConditions:         []string{api.ConditionDryness},
			Benefits:                 []string{"Hydrates while cleansing", "Strengthens skin barrier", "Non-stripping"},
			PriceRange:               "$12-20",
			RecommendationConfidence: 0.85,
			PersonalizationScore:     0.8,
		},
	},
	api.CategorySerum: {
		{
			ProductId:                "serum_001",
			Name:                     "Niacinamide 10% Serum",
			Category:                 api.CategorySerum,
			Brand:                    "Active Solutions",
			KeyIngredients:           []string{api.IngredientNiacinamide},
			UsageFrequency:           "once daily",
			TimeOfDay:                api.TimeBoth,
			ApplicationOrder:         3,
			TargetConditions:         []string{api.ConditionAcne, api.ConditionOiliness, api.ConditionPores},
			Benefits:                 []string{"Controls oil production", "Minimizes pores", "Reduces inflammation"},
			PriceRange:               "$6-12",
			RecommendationConfidence: 0.95,
			PersonalizationScore:     0.9,
		},
		{
			ProductId:                "serum_002",
			Name:                     "Vitamin C 20% Serum",
			Category:                 api.CategorySerum,
			Brand:                    "Bright Skin",
			KeyIngredients:           []string{api.IngredientVitaminC},
			UsageFrequency:           "once daily",
			TimeOfDay:                api.TimeMorning,
			ApplicationOrder:         3,
			TargetConditions:         []string{api.ConditionDarkSpots, api.ConditionPigmentation},
			Benefits:                 []string{"Brightens skin", "Fades dark spots", "Antioxidant protection"},
			PriceRange:               "$15-25",
			RecommendationConfidence: 0.88,
			PersonalizationScore:     0.85,
		},
		{
			ProductId:                "serum_003",
			Name:                     "Hyaluronic Acid Serum",
			Category:                 api.CategorySerum,
			Brand:                    "Hydro Plus",
			KeyIngredients:           []string{api.IngredientHyaluronicAcid},
			UsageFrequency:           "twice daily",
			TimeOfDay:                api.TimeBoth,
			ApplicationOrder:         3,
			TargetConditions:         []string{api.ConditionDryness},
			Benefits:                 []string{"Intense hydration", "Plumps skin", "Suitable for all skin types"},
			PriceRange:               "$10-18",
			RecommendationConfidence: 0.92,
			PersonalizationScore:     0.88,
		},
	},
	api.CategoryTreatment: {
		{
			ProductId:                "treatment_001",
			Name:                     "Retinol 0.5% Treatment",
			Category:                 api.CategoryTreatment,
			Brand:                    "Anti-Age Pro",
			KeyIngredients:           []string{api.IngredientRetinol},
			UsageFrequency:           "3 times per week",
			TimeOfDay:                api.TimeEvening,
			ApplicationOrder:         4,
			TargetConditions:         []string{api.ConditionWrinkles, api.ConditionAcne},
			Benefits:                 []string{"Reduces fine lines", "Improves texture", "Boosts collagen"},
			PriceRange:               "$20-35",
			RecommendationConfidence: 0.9,
			PersonalizationScore:     0.85,
		},
		{
			ProductId:                "treatment_002",
			Name:                     "Salicylic Acid 2% Treatment",
			Category:                 api.CategoryTreatment,
			Brand:                    "Clear Skin",
			KeyIngredients:           []string{api.IngredientSalicylicAcid},
			UsageFrequency:           "every other day",
			TimeOfDay:                api.TimeEvening,
			ApplicationOrder:         4,
			TargetConditions:         []string{api.ConditionAcne, api.ConditionPores},
			Benefits:                 []string{"Unclogs pores", "Reduces breakouts", "Gentle exfoliation"},
			PriceRange:               "$12-22",
			RecommendationConfidence: 0.87,
			PersonalizationScore:     0.82,
		},
	},
	api.CategoryMoisturizer: {
		{
			ProductId:                "moisturizer_001",
			Name:                     "Lightweight Gel Moisturizer",
			Category:                 api.CategoryMoisturizer,
			Brand:                    "Fresh Face",
			KeyIngredients:           []string{api.IngredientHyaluronicAcid, api.IngredientNiacinamide},
			UsageFrequency:           "twice daily",
			TimeOfDay:                api.TimeBoth,
			ApplicationOrder:         5,
			TargetConditions:         []string{api.ConditionOiliness},
			Benefits:                 []string{"Non-greasy hydration", "Controls oil", "Won't clog pores"},
			PriceRange:               "$14-24",
			RecommendationConfidence: 0.88,
			PersonalizationScore:     0.8,
		},
		{
			ProductId:                "moisturizer_002",
			Name:                     "Rich Repair Cream",
			Category:                 api.CategoryMoisturizer,
			Brand:                    "Nourish Plus",
			KeyIngredients:           []string{api.IngredientCeramides, api.IngredientPeptides},
			UsageFrequency:           "twice daily",
			TimeOfDay:                api.TimeBoth,
			ApplicationOrder:         5,
			TargetConditions:         []string{api.ConditionDryness, api.ConditionWrinkles},
			Benefits:                 []string{"Deep hydration", "Strengthens barrier", "Anti-aging benefits"},
			PriceRange:               "$18-30",
			RecommendationConfidence: 0.9,
			PersonalizationScore:     0.85,
		},
	},
	api.CategorySunscreen: {
		{
			ProductId:                "sunscreen_001",
			Name:                     "Broad Spectrum SPF 30",
			Category:                 api.CategorySunscreen,
			Brand:                    "Sun Shield",
			KeyIngredients:           []string{},
			UsageFrequency:           "daily",
			TimeOfDay:                api.TimeMorning,
			ApplicationOrder:         6,
			TargetConditions:         []string{}, // preventive for all conditions
			Benefits:                 []string{"UV protection", "Prevents premature aging", "Non-comedogenic"},
			PriceRange:               "$10-18",
			RecommendationConfidence: 1.0,
			PersonalizationScore:     0.9,
		},
	},
}
