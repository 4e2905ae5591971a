package services

import "strings"

// Skin type labels in label-encoder order; the index is the prediction code.
var skinTypeLabels = []string{"Combination", "Dry", "Normal", "Oily"}

// routineColumns is the fixed order routine steps are reported in.
var routineColumns = []string{
	"morning_cleanser", "morning_toner", "morning_serum", "morning_moisturizer",
	"morning_sunscreen", "morning_exfoliator", "morning_mask",
	"night_cleanser", "night_toner", "night_serum", "night_moisturizer",
	"night_exfoliator", "night_mask",
}

var baseRoutines = map[string][]string{
	"normal": {
		"morning_cleanser", "morning_moisturizer", "morning_sunscreen",
		"night_cleanser", "night_serum", "night_moisturizer",
	},
	"oily": {
		"morning_cleanser", "morning_toner", "morning_serum", "morning_moisturizer", "morning_sunscreen",
		"night_cleanser", "night_toner", "night_moisturizer", "night_exfoliator",
	},
	"dry": {
		"morning_cleanser", "morning_serum", "morning_moisturizer", "morning_sunscreen",
		"night_cleanser", "night_serum", "night_moisturizer", "night_mask",
	},
	"combination": {
		"morning_cleanser", "morning_toner", "morning_moisturizer", "morning_sunscreen",
		"night_cleanser", "night_serum", "night_moisturizer", "night_exfoliator",
	},
}

const defaultConcern = "none"

var concernTreatments = map[string]string{
	"wrinkles":     "Gentle Hydrating Cleanser AM, Vitamin C Serum AM, Hyaluronic Moisturizer AM, SPF 30 AM, Retinol Serum PM, Peptide Night Cream PM",
	"acne":         "Oil-Free Salicylic Acid Cleanser AM, Niacinamide Serum AM, Lightweight Gel Moisturizer AM, SPF 30 AM, Benzoyl Peroxide Spot PM, Adapalene PM",
	"dark_circles": "Gentle Hydrating Cleanser AM, Caffeine Eye Cream AM, Lightweight Moisturizer AM, SPF 30 AM, Niacinamide Eye Cream PM, Lightweight Gel PM",
	"dark_spots":   "Gentle Hydrating Cleanser AM, Vitamin C Serum AM, Kojic Acid/Niacinamide/Alpha Arbutin PM, SPF 30 AM",
	"none":         "Gentle Cleanser AM, Hydrating Serum AM, Moisturizer AM, SPF 30 AM, Night Serum PM, Night Cream PM",
}

// normalizeKey folds "Dark Circles", "dark-circles" and "dark_circles" together.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// TreatmentFor returns the treatment plan for a concern, falling back to the
// plan for no particular concern.
func TreatmentFor(concern string) string {
	if t, ok := concernTreatments[normalizeKey(concern)]; ok {
		return t
	}
	return concernTreatments[defaultConcern]
}

type routineFactors struct {
	SkinType  string
	Smoking   bool
	Alcohol   bool
	Diabetes  bool
	Pollution string
	Concern   string
}

// buildRoutine returns morning and night product categories in column order.
func buildRoutine(f routineFactors) (morning, night []string) {
	selected := make(map[string]bool, len(routineColumns))

	base, ok := baseRoutines[normalizeKey(f.SkinType)]
	if !ok {
		base = baseRoutines["normal"]
	}
	for _, col := range base {
		selected[col] = true
	}

	if f.Smoking || f.Alcohol {
		selected["morning_serum"] = true
		selected["night_serum"] = true
	}
	if f.Diabetes {
		selected["night_moisturizer"] = true
		selected["morning_moisturizer"] = true
	}
	if normalizeKey(f.Pollution) == "high" {
		selected["night_cleanser"] = true
		selected["night_mask"] = true
	}
	switch normalizeKey(f.Concern) {
	case "acne":
		selected["morning_toner"] = true
		selected["night_exfoliator"] = true
	case "wrinkles", "dark_spots":
		selected["night_serum"] = true
	}

	for _, col := range routineColumns {
		if !selected[col] {
			continue
		}
		if step, ok := strings.CutPrefix(col, "morning_"); ok {
			morning = append(morning, step)
		} else {
			night = append(night, strings.TrimPrefix(col, "night_"))
		}
	}
	return morning, night
}
