package engine

import "skinvision-backend/pkg/api"

// adviceFor builds the per-recommendation advice block, extending the shared
// baseline with tips specific to the prioritized conditions.
func adviceFor(priority []api.DetectedCondition) api.GeneralAdvice {
	lifestyle := []string{
		"Stay hydrated by drinking plenty of water",
		"Get adequate sleep for skin repair and renewal",
		"Manage stress through relaxation techniques",
		"Avoid touching your face frequently",
	}
	dietary := []string{
		"Include antioxidant-rich foods in your diet",
		"Consider reducing dairy if you have acne-prone skin",
		"Limit high-glycemic foods that may trigger breakouts",
	}
	avoid := []string{
		"Don't over-wash your face",
		"Avoid picking at blemishes",
		"Don't skip sunscreen, even on cloudy days",
	}

	types := make(map[string]bool, len(priority))
	for _, c := range priority {
		types[c.ConditionType] = true
	}

	if types[api.ConditionAcne] {
		avoid = append(avoid, "Avoid heavy, pore-clogging products")
		dietary = append(dietary, "Consider probiotics for gut health")
	}
	if types[api.ConditionWrinkles] {
		lifestyle = append(lifestyle, "Use a silk pillowcase to reduce friction")
		avoid = append(avoid, "Don't sleep on your stomach")
	}
	if types[api.ConditionDryness] {
		lifestyle = append(lifestyle, "Use a humidifier in dry environments")
		avoid = append(avoid, "Avoid hot showers that strip natural oils")
	}

	return api.GeneralAdvice{
		LifestyleTips:          lifestyle,
		DietarySuggestions:     dietary,
		HabitsToAvoid:          avoid,
		WhenToSeeDermatologist: "If conditions worsen or don't improve after 8-12 weeks",
	}
}

// IngredientCatalog backs GET /products/ingredients.
func IngredientCatalog() map[string]api.IngredientInfo {
	return map[string]api.IngredientInfo{
		api.IngredientRetinol: {
			Name:        "Retinol",
			Benefits:    []string{"Reduces fine lines", "Improves skin texture", "Boosts collagen production"},
			BestFor:     []string{"wrinkles", "uneven texture"},
			Usage:       "evening only",
			Precautions: []string{"Start slowly", "Use sunscreen", "May cause initial irritation"},
		},
		api.IngredientVitaminC: {
			Name:        "Vitamin C",
			Benefits:    []string{"Brightens skin", "Antioxidant protection", "Boosts collagen"},
			BestFor:     []string{"dark spots", "dull skin", "prevention"},
			Usage:       "morning preferred",
			Precautions: []string{"Use sunscreen", "Store properly"},
		},
		api.IngredientSalicylicAcid: {
			Name:        "Salicylic Acid (BHA)",
			Benefits:    []string{"Unclogs pores", "Reduces inflammation", "Exfoliates"},
			BestFor:     []string{"acne", "blackheads", "oily skin"},
			Usage:       "evening",
			Precautions: []string{"Start slowly", "May cause dryness"},
		},
		api.IngredientNiacinamide: {
			Name:        "Niacinamide",
			Benefits:    []string{"Controls oil", "Minimizes pores", "Reduces redness"},
			BestFor:     []string{"oily skin", "large pores", "acne"},
			Usage:       "morning and evening",
			Precautions: []string{"Generally well-tolerated"},
		},
		api.IngredientHyaluronicAcid: {
			Name:        "Hyaluronic Acid",
			Benefits:    []string{"Intense hydration", "Plumps skin", "Suitable for all skin types"},
			BestFor:     []string{"dry skin", "dehydration", "all skin types"},
			Usage:       "morning and evening",
			Precautions: []string{"Apply to damp skin"},
		},
	}
}

// RoutineTemplateCatalog backs GET /routines/templates.
func RoutineTemplateCatalog() map[string]api.RoutineTemplate {
	return map[string]api.RoutineTemplate{
		"oily_acne_prone": {
			Name:        "Oily & Acne-Prone Skin",
			Description: "For those with oily skin and frequent breakouts",
			Morning:     []string{"gentle_cleanser", "niacinamide_serum", "light_moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "salicylic_acid", "moisturizer"},
			Weekly:      []string{"clay_mask"},
		},
		"dry_sensitive": {
			Name:        "Dry & Sensitive Skin",
			Description: "For those with dry, easily irritated skin",
			Morning:     []string{"gentle_cleanser", "hyaluronic_acid", "rich_moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "ceramide_serum", "night_moisturizer"},
			Weekly:      []string{"hydrating_mask"},
		},
		"aging_concerns": {
			Name:        "Anti-Aging Focus",
			Description: "For those concerned with fine lines and skin firmness",
			Morning:     []string{"gentle_cleanser", "vitamin_c_serum", "moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "retinol", "rich_moisturizer"},
			Weekly:      []string{"exfoliating_treatment"},
		},
		"combination_skin": {
			Name:        "Combination Skin",
			Description: "For those with oily T-zone and normal/dry cheeks",
			Morning:     []string{"gentle_cleanser", "lightweight_serum", "gel_moisturizer", "spf"},
			Evening:     []string{"gentle_cleanser", "targeted_treatments", "moisturizer"},
			Weekly:      []string{"multi_masking"},
		},
	}
}

// GeneralAdviceCatalog backs GET /advice/general.
func GeneralAdviceCatalog() api.GeneralAdviceResponse {
	return api.GeneralAdviceResponse{
		LifestyleTips: []string{
			"Stay hydrated - drink at least 8 glasses of water daily",
			"Get adequate sleep (7-9 hours) for skin repair",
			"Manage stress through meditation or exercise",
			"Avoid touching your face frequently",
			"Change pillowcases regularly",
			"Exercise regularly to improve circulation",
		},
		DietarySuggestions: []string{
			"Eat foods rich in antioxidants (berries, leafy greens)",
			"Include omega-3 fatty acids (fish, nuts, seeds)",
			"Limit dairy if you have acne-prone skin",
			"Reduce sugar and processed foods",
			"Add probiotics for gut health",
			"Include vitamin C rich foods",
		},
		HabitsToAvoid: []string{
			"Over-washing your face (more than twice daily)",
			"Using harsh scrubs or aggressive exfoliation",
			"Picking at blemishes or blackheads",
			"Sleeping with makeup on",
			"Using expired skincare products",
			"Skipping sunscreen, even on cloudy days",
		},
		WhenToSeeDermatologist: []string{
			"Severe acne that doesn't respond to over-the-counter treatments",
			"Sudden changes in moles or new growths",
			"Persistent redness or irritation",
			"Signs of skin infection",
			"Severe allergic reactions to products",
			"Professional treatments needed (prescription retinoids, etc.)",
		},
	}
}
