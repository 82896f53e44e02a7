package catalog

// partitionOrder fixes enumeration priority for fallback fills.
var partitionOrder = []string{
	"sustainability",
	"jazz",
	"soul",
	"luxury",
	"creative",
	"local",
}

func defaultProducts() map[string][]Item {
	return map[string][]Item{
		"sustainability": {
			{
				Name:        "Sustainable Bamboo Headphones",
				Category:    "Tech/Audio",
				Keywords:    []string{"sustainability", "eco-friendly", "audio", "minimalist", "wellness"},
				Price:       "$89",
				Description: "Premium wireless headphones made from sustainable bamboo with crystal-clear sound quality.",
				Image:       "https://cdn.trendseer.dev/products/bamboo-headphones.jpg",
				Link:        "https://shop.trendseer.dev/bamboo-headphones",
			},
			{
				Name:        "Organic Cotton Minimalist Backpack",
				Category:    "Fashion/Lifestyle",
				Keywords:    []string{"sustainability", "minimalist", "fashion", "organic", "classic"},
				Price:       "$125",
				Description: "Durable backpack crafted from 100% organic cotton with a sleek, minimalist design.",
				Image:       "https://cdn.trendseer.dev/products/organic-backpack.jpg",
				Link:        "https://shop.trendseer.dev/organic-backpack",
			},
			{
				Name:        "Solar-Powered Bluetooth Speaker",
				Category:    "Tech/Audio",
				Keywords:    []string{"sustainability", "solar", "music", "outdoor", "game"},
				Price:       "$75",
				Description: "Eco-friendly Bluetooth speaker powered by solar energy, perfect for outdoor adventures.",
				Image:       "https://cdn.trendseer.dev/products/solar-speaker.jpg",
				Link:        "https://shop.trendseer.dev/solar-speaker",
			},
		},
		"jazz": {
			{
				Name:        "Blue Note Jazz Vinyl Collection",
				Category:    "Music/Collectibles",
				Keywords:    []string{"jazz", "vinyl", "music", "collectible", "classic"},
				Price:       "$199",
				Description: "Limited edition collection of classic Blue Note jazz recordings on premium vinyl.",
				Image:       "https://cdn.trendseer.dev/products/jazz-vinyl.jpg",
				Link:        "https://shop.trendseer.dev/jazz-vinyl",
			},
			{
				Name:        "Professional Jazz Piano Course",
				Category:    "Education/Music",
				Keywords:    []string{"jazz", "piano", "education", "music", "classical"},
				Price:       "$149",
				Description: "Complete online jazz piano course taught by Grammy-nominated musicians.",
				Image:       "https://cdn.trendseer.dev/products/jazz-piano-course.jpg",
				Link:        "https://shop.trendseer.dev/jazz-piano-course",
			},
		},
		"soul": {
			{
				Name:        "Motown Legends Box Set",
				Category:    "Music/Collectibles",
				Keywords:    []string{"soul", "motown", "music", "vintage", "classic"},
				Price:       "$179",
				Description: "Comprehensive box set featuring the greatest soul hits from Motown's golden era.",
				Image:       "https://cdn.trendseer.dev/products/motown-box.jpg",
				Link:        "https://shop.trendseer.dev/motown-box",
			},
		},
		"luxury": {
			{
				Name:        "Premium Leather Business Folio",
				Category:    "Fashion/Professional",
				Keywords:    []string{"luxury", "leather", "professional", "premium", "classic"},
				Price:       "$295",
				Description: "Handcrafted Italian leather folio for the discerning professional.",
				Image:       "https://cdn.trendseer.dev/products/leather-folio.jpg",
				Link:        "https://shop.trendseer.dev/leather-folio",
			},
			{
				Name:        "High-End Noise-Canceling Headphones",
				Category:    "Tech/Audio",
				Keywords:    []string{"luxury", "audio", "premium", "technology", "game"},
				Price:       "$399",
				Description: "Professional-grade headphones with industry-leading noise cancellation.",
				Image:       "https://cdn.trendseer.dev/products/nc-headphones.jpg",
				Link:        "https://shop.trendseer.dev/nc-headphones",
			},
		},
		"creative": {
			{
				Name:        "Digital Art Tablet Pro",
				Category:    "Creative/Tech",
				Keywords:    []string{"creative", "digital", "art", "design", "game"},
				Price:       "$249",
				Description: "Professional-grade drawing tablet for digital artists and designers.",
				Image:       "https://cdn.trendseer.dev/products/art-tablet.jpg",
				Link:        "https://shop.trendseer.dev/art-tablet",
			},
			{
				Name:        "Creative Writing Masterclass",
				Category:    "Education/Creative",
				Keywords:    []string{"creative", "writing", "education", "storytelling", "wellness"},
				Price:       "$99",
				Description: "Learn storytelling techniques from bestselling authors and screenwriters.",
				Image:       "https://cdn.trendseer.dev/products/writing-class.jpg",
				Link:        "https://shop.trendseer.dev/writing-class",
			},
		},
		"local": {
			{
				Name:        "Local Artisan Coffee Subscription",
				Category:    "Food/Beverage",
				Keywords:    []string{"local", "artisan", "coffee", "subscription", "dining"},
				Price:       "$29/month",
				Description: "Monthly delivery of freshly roasted coffee from local artisan roasters.",
				Image:       "https://cdn.trendseer.dev/products/coffee-subscription.jpg",
				Link:        "https://shop.trendseer.dev/coffee-subscription",
			},
			{
				Name:        "Community Supported Agriculture Box",
				Category:    "Food/Lifestyle",
				Keywords:    []string{"local", "organic", "fresh", "community", "dining", "sustainability"},
				Price:       "$45/week",
				Description: "Weekly box of fresh, seasonal produce from local organic farms.",
				Image:       "https://cdn.trendseer.dev/products/csa-box.jpg",
				Link:        "https://shop.trendseer.dev/csa-box",
			},
		},
	}
}

func defaultExperiences() map[string][]Item {
	return map[string][]Item{
		"jazz": {
			{
				Name:        "Blue Note Jazz Club Experience",
				Category:    "Entertainment/Music",
				Keywords:    []string{"jazz", "live music", "experience", "nightlife", "dining"},
				Price:       "$85",
				Description: "VIP table at legendary Blue Note jazz club with dinner and show.",
				Image:       "https://cdn.trendseer.dev/experiences/jazz-club.jpg",
				Link:        "https://shop.trendseer.dev/jazz-club-night",
			},
		},
		"sustainability": {
			{
				Name:        "Eco-Tourism Workshop Weekend",
				Category:    "Travel/Education",
				Keywords:    []string{"sustainability", "workshop", "travel", "education", "wellness", "yoga"},
				Price:       "$299",
				Description: "Two-day immersive workshop on sustainable living practices.",
				Image:       "https://cdn.trendseer.dev/experiences/eco-workshop.jpg",
				Link:        "https://shop.trendseer.dev/eco-workshop",
			},
		},
		"creative": {
			{
				Name:        "Creative Photography Walk",
				Category:    "Creative/Experience",
				Keywords:    []string{"creative", "photography", "experience", "urban", "local"},
				Price:       "$65",
				Description: "Guided photography walk through the city's most photogenic neighborhoods.",
				Image:       "https://cdn.trendseer.dev/experiences/photo-walk.jpg",
				Link:        "https://shop.trendseer.dev/photo-walk",
			},
		},
	}
}
