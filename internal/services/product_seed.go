package services

var seedProducts = []seedProduct{
	{
		Name: "Green Tea Pore Cleansing Face Wash", Brand: "Plum", Category: "cleanser",
		Description: "Gentle foaming cleanser for acne prone skin that clears pores",
		SkinTypes:   []string{"Oily", "Combination"},
		Ingredients: []string{"Green Tea", "Glycolic Acid", "Glycerin"},
	},
	{
		Name: "Green Tea Alcohol-Free Toner", Brand: "Plum", Category: "toner",
		Description: "Balancing toner that controls oil and refines pores",
		SkinTypes:   []string{"Oily", "Combination", "Normal"},
		Ingredients: []string{"Green Tea", "Glycolic Acid", "Niacinamide"},
	},
	{
		Name: "Green Tea Oil-Free Moisturizer", Brand: "Plum", Category: "moisturizer",
		Description: "Lightweight gel moisturizer for acne and oily skin",
		SkinTypes:   []string{"Oily", "Combination"},
		Ingredients: []string{"Green Tea", "Hyaluronic Acid", "Fragrance"},
	},
	{
		Name: "Hello Aloe Skin Hydrating Gel", Brand: "Plum", Category: "moisturizer",
		Description: "Soothing aloe gel that hydrates dry and sensitive skin",
		SkinTypes:   []string{"Dry", "Normal"},
		Ingredients: []string{"Aloe Vera", "Glycerin"},
	},
	{
		Name: "15% Vitamin C Face Serum", Brand: "Plum", Category: "serum",
		Description: "Brightening serum that fades dark spots and evens skin tone",
		SkinTypes:   []string{"Normal", "Combination", "Oily", "Dry"},
		Ingredients: []string{"Ethyl Ascorbic Acid", "Mandarin", "Fragrance"},
	},
	{
		Name: "Facial Tonic Mist Pure Rosewater", Brand: "Forest Essentials", Category: "toner",
		Description: "Hydrating rose water toner for all skin types",
		SkinTypes:   []string{"Normal", "Dry", "Combination", "Oily"},
		Ingredients: []string{"Rose Water", "Essential Oils"},
	},
	{
		Name: "Soundarya Radiance Cream with SPF 25", Brand: "Forest Essentials", Category: "moisturizer",
		Description: "Rich day cream that reduces wrinkles and fine lines",
		SkinTypes:   []string{"Dry", "Normal"},
		Ingredients: []string{"Saffron", "Gold", "Lanolin"},
	},
	{
		Name: "Bio Morning Nectar Moisturizer", Brand: "Biotique", Category: "moisturizer",
		Description: "Everyday moisturizer with honey for normal to dry skin",
		SkinTypes:   []string{"Normal", "Dry"},
		Ingredients: []string{"Honey", "Wheat Germ", "Paraben"},
	},
	{
		Name: "Bio Neem Purifying Face Wash", Brand: "Biotique", Category: "cleanser",
		Description: "Neem cleanser that fights acne causing bacteria",
		SkinTypes:   []string{"Oily", "Combination"},
		Ingredients: []string{"Neem", "Turmeric", "Sulfate"},
	},
	{
		Name: "Vitamin C Face Serum", Brand: "Mamaearth", Category: "serum",
		Description: "Serum that reduces dark spots and dark circles",
		SkinTypes:   []string{"Normal", "Dry", "Combination"},
		Ingredients: []string{"Vitamin C", "Gotu Kola"},
	},
	{
		Name: "Ultra Light Indian Sunscreen SPF 50", Brand: "Mamaearth", Category: "sunscreen",
		Description: "Non greasy daily sunscreen for oily skin",
		SkinTypes:   []string{"Oily", "Combination", "Normal"},
		Ingredients: []string{"Carrot Seed", "Turmeric", "Oxybenzone"},
	},
	{
		Name: "Sunscreen Cream SPF 30", Brand: "Khadi Natural", Category: "sunscreen",
		Description: "Herbal sunscreen for daily protection",
		SkinTypes:   []string{"Normal", "Dry"},
		Ingredients: []string{"Aloe Vera", "Zinc Oxide"},
	},
	{
		Name: "Neem Tulsi Face Wash", Brand: "Khadi Natural", Category: "cleanser",
		Description: "Ayurvedic cleanser for acne prone oily skin",
		SkinTypes:   []string{"Oily"},
		Ingredients: []string{"Neem", "Tulsi", "Cocamidopropyl Betaine"},
	},
	{
		Name: "Hyaluronic Acid Serum", Brand: "The Beauty Company", Category: "serum",
		Description: "Plumping serum that smooths wrinkles and hydrates dry skin",
		SkinTypes:   []string{"Dry", "Normal", "Combination"},
		Ingredients: []string{"Hyaluronic Acid", "Panthenol"},
	},
	{
		Name: "Kumkumadi Brightening Night Serum", Brand: "Just Herbs", Category: "serum",
		Description: "Night serum for dark spots and dull skin",
		SkinTypes:   []string{"Normal", "Dry"},
		Ingredients: []string{"Saffron", "Essential Oils"},
	},
	{
		Name: "Rose Honey Face Cleanser", Brand: "SoulTree", Category: "cleanser",
		Description: "Mild cleanser for dry and sensitive skin",
		SkinTypes:   []string{"Dry", "Normal"},
		Ingredients: []string{"Rose", "Honey"},
	},
	{
		Name: "Tea Tree Oil Control Clay Mask", Brand: "Lotus Essentials", Category: "mask",
		Description: "Clay mask that absorbs excess oil and clears acne",
		SkinTypes:   []string{"Oily", "Combination"},
		Ingredients: []string{"Kaolin", "Tea Tree", "Salicylic Acid"},
	},
	{
		Name: "Activated Charcoal Exfoliating Scrub", Brand: "Aroma Magic", Category: "exfoliator",
		Description: "Scrub that removes dead skin and pollution build up",
		SkinTypes:   []string{"Oily", "Combination", "Normal"},
		Ingredients: []string{"Charcoal", "Walnut Shell", "Dye/Colorants"},
	},
}
