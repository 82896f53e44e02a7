// Package catalog holds the static recommendation inventory.
//
// Items live in keyword-named partitions ("sustainability", "jazz", ...)
// split across two kinds: products and experiences. The catalog ships
// with the binary; there is no remote source and no mutation after
// construction.
package catalog

// Kind distinguishes the two inventory sides.
type Kind string

const (
	KindProduct    Kind = "product"
	KindExperience Kind = "experience"
)

// Item is one recommendable catalog entry.
type Item struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	Kind        Kind     `json:"kind"`
}

// Store is the in-memory catalog. Partition order is fixed: it decides
// which items pad out a result set when scoring alone cannot fill it,
// so two runs over the same catalog enumerate items identically.
type Store struct {
	products    map[string][]Item
	experiences map[string][]Item
	order       []string
}

// NewStore returns the built-in catalog.
func NewStore() *Store {
	return &Store{
		products:    defaultProducts(),
		experiences: defaultExperiences(),
		order:       partitionOrder,
	}
}

// NewStoreFrom builds a catalog from explicit partitions, used by tests
// and by anything that wants a trimmed inventory. Partitions absent
// from order are ignored.
func NewStoreFrom(products, experiences map[string][]Item, order []string) *Store {
	return &Store{
		products:    products,
		experiences: experiences,
		order:       order,
	}
}

// Products returns every product in partition priority order.
func (s *Store) Products() []Item {
	return s.flatten(s.products, KindProduct)
}

// Experiences returns every experience in partition priority order.
func (s *Store) Experiences() []Item {
	return s.flatten(s.experiences, KindExperience)
}

// All returns every item, products first, both sides in partition
// priority order.
func (s *Store) All() []Item {
	out := s.Products()
	return append(out, s.Experiences()...)
}

// Partition returns one side of a named partition. Missing partitions
// yield nil.
func (s *Store) Partition(name string, kind Kind) []Item {
	var items []Item
	switch kind {
	case KindProduct:
		items = s.products[name]
	case KindExperience:
		items = s.experiences[name]
	}
	return s.tagged(items, kind)
}

// Size returns the total item count across both sides.
func (s *Store) Size() int {
	n := 0
	for _, items := range s.products {
		n += len(items)
	}
	for _, items := range s.experiences {
		n += len(items)
	}
	return n
}

func (s *Store) flatten(m map[string][]Item, kind Kind) []Item {
	var out []Item
	for _, name := range s.order {
		out = append(out, s.tagged(m[name], kind)...)
	}
	return out
}

func (s *Store) tagged(items []Item, kind Kind) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		it.Kind = kind
		out[i] = it
	}
	return out
}
