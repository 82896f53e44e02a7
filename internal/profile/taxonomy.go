// Package profile provides the static keyword taxonomy and segment rules.
package profile

// Keyword maps a trigger substring to the canonical preference it
// represents. Triggers are matched by case-insensitive substring
// containment against the accumulated chat text.
type Keyword struct {
	Trigger   string
	Canonical string
}

// defaultTaxonomy returns the trigger->canonical keyword lists per domain.
func defaultTaxonomy() map[Domain][]Keyword {
	return map[Domain][]Keyword{
		DomainMusic: {
			{"indie", "indie rock"},
			{"rock", "rock"},
			{"folk", "folk"},
			{"electronic", "electronic"},
			{"techno", "electronic"},
			{"hip hop", "hip-hop"},
			{"hip-hop", "hip-hop"},
			{"rap", "hip-hop"},
			{"jazz", "jazz"},
			{"soul", "soul"},
			{"r&b", "r&b"},
			{"classical", "classical"},
			{"pop", "pop"},
			{"country", "country"},
			{"ambient", "ambient"},
			{"metal", "metal"},
			{"punk", "punk"},
			{"reggae", "reggae"},
			{"blues", "blues"},
			{"vinyl", "vinyl collecting"},
		},
		DomainDining: {
			{"coffee", "artisanal coffee"},
			{"plant", "plant-based"},
			{"vegan", "plant-based"},
			{"vegetarian", "plant-based"},
			{"local", "local sourcing"},
			{"farm", "farm-to-table"},
			{"organic", "organic"},
			{"street", "street food"},
			{"fine", "fine dining"},
			{"fusion", "fusion cuisine"},
			{"cocktail", "craft cocktails"},
			{"wine", "wine"},
			{"craft beer", "craft beer"},
			{"bakery", "artisan baking"},
			{"sushi", "japanese cuisine"},
			{"ramen", "japanese cuisine"},
			{"tapas", "small plates"},
			{"brunch", "brunch culture"},
		},
		DomainFashion: {
			{"vintage", "vintage"},
			{"minimal", "minimalist"},
			{"sustainable", "sustainable"},
			{"thrift", "thrifted"},
			{"street", "streetwear"},
			{"sneaker", "sneakers"},
			{"luxury", "luxury brands"},
			{"designer", "luxury brands"},
			{"classic", "classic"},
			{"bohemian", "bohemian"},
			{"boho", "bohemian"},
			{"athleisure", "athleisure"},
			{"denim", "denim"},
			{"handmade", "artisanal"},
		},
		DomainEntertainment: {
			{"indie film", "indie films"},
			{"film", "indie films"},
			{"movie", "films"},
			{"anime", "anime"},
			{"live music", "live music"},
			{"concert", "live music"},
			{"podcast", "podcasts"},
			{"sport", "sports"},
			{"football", "football"},
			{"game", "gaming"},
			{"gaming", "gaming"},
			{"theater", "theater"},
			{"theatre", "theater"},
			{"museum", "museums"},
			{"gallery", "art galleries"},
			{"book", "reading"},
			{"reading", "reading"},
			{"social media", "social media"},
		},
		DomainLifestyle: {
			{"sustain", "sustainable living"},
			{"eco", "sustainable living"},
			{"wellness", "wellness"},
			{"mindful", "mindfulness"},
			{"meditat", "mindfulness"},
			{"yoga", "yoga"},
			{"remote", "remote work"},
			{"freelance", "freelance work"},
			{"fitness", "fitness"},
			{"gym", "fitness"},
			{"urban", "urban living"},
			{"city", "urban living"},
			{"travel", "travel"},
			{"nightlife", "nightlife"},
			{"outdoor", "outdoor activities"},
			{"hiking", "outdoor activities"},
			{"minimalis", "minimalism"},
			{"productiv", "productivity"},
		},
	}
}

// SegmentRule maps a trigger substring to a cultural segment name.
// Rules are evaluated in order against the combined preference and
// external-entity text; each rule fires at most once.
type SegmentRule struct {
	Trigger string
	Segment string
}

// defaultSegmentRules returns the ordered segment rule list. Order is
// fixed: earlier rules discover their segment first, which determines
// segment position in the resulting profile.
func defaultSegmentRules() []SegmentRule {
	return []SegmentRule{
		{"sustain", "sustainability advocates"},
		{"eco", "sustainability advocates"},
		{"organic", "sustainability advocates"},
		{"indie", "indie culture"},
		{"folk", "indie culture"},
		{"jazz", "jazz aficionados"},
		{"soul", "soul and motown devotees"},
		{"vinyl", "vinyl collectors"},
		{"minimal", "minimalists"},
		{"vintage", "vintage enthusiasts"},
		{"thrift", "vintage enthusiasts"},
		{"luxury", "luxury connoisseurs"},
		{"designer", "luxury connoisseurs"},
		{"street", "urban trendsetters"},
		{"sneaker", "urban trendsetters"},
		{"hip-hop", "urban trendsetters"},
		{"wellness", "wellness seekers"},
		{"mindful", "wellness seekers"},
		{"yoga", "wellness seekers"},
		{"remote", "digital nomads"},
		{"freelance", "digital nomads"},
		{"local", "local-first supporters"},
		{"artisan", "craft appreciators"},
		{"craft", "craft appreciators"},
		{"anime", "anime fans"},
		{"football", "football supporters"},
		{"gaming", "gaming community"},
		{"travel", "experience collectors"},
		{"creative", "creative professionals"},
		{"art", "creative professionals"},
		{"fitness", "fitness enthusiasts"},
	}
}

// DefaultSegment is returned when no segment rule fires. Downstream
// components assume at least one segment, so classification never
// yields an empty list.
const DefaultSegment = "cultural enthusiasts"
