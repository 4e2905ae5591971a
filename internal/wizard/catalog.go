package wizard

// Catalog lists the options the screens offer.
type Catalog struct {
	SkinTypes []string `json:"skin_types"`
	Allergies []string `json:"allergies"`
	Brands    []string `json:"brands"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		SkinTypes: []string{"Normal", "Oily", "Dry", "Combination"},
		Allergies: []string{
			"Salicylic Acid",
			"Sulfate",
			"Paraben",
			"Fragrance",
			"Alcohol",
			"Lanolin",
			"Formaldehyde",
			"Cocamidopropyl Betaine",
			"Dye/Colorants",
			"Essential Oils",
			"Benzoyl Peroxide",
			"Oxybenzone",
			"Retinol",
			"Phthalates",
			"Silicones",
		},
		Brands: []string{
			"Plum",
			"Forest Essentials",
			"Biotique",
			"Mamaearth",
			"Khadi Natural",
			"The Beauty Company",
			"Just Herbs",
			"SoulTree",
			"Lotus Essentials",
			"Aroma Magic",
		},
	}
}
