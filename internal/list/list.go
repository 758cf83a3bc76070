// Package list defines the core to-do list documents and the text
// normalization rules that govern list identity.
package list

// ReservedToday is the canonical key of the standalone default collection.
// It never names a stored List; items under it live in their own collection.
const ReservedToday = "today"

// TodayTitle is the display title of the standalone default collection.
const TodayTitle = "Today"

// Item is a single to-do entry.
type Item struct {
	// ID is an opaque identifier assigned by the store on insert.
	ID string `json:"id"`
	// Name is the visible label.
	Name string `json:"name"`
}

// List is a named, ordered collection of items. Items are embedded: an item
// inside a list has no existence outside it.
type List struct {
	// Name is the display form of the list name. Lookups use CanonicalKey.
	Name string `json:"name"`
	// Items is the ordered embedded item sequence.
	Items []Item `json:"items"`
}

// DefaultItemNames returns the labels seeded into every new collection.
func DefaultItemNames() []string {
	return []string{
		"Welcome to your Todo List!",
		"Hit the + button to add an item.",
		"<-- Hit this to delete an item.",
	}
}

// IsToday reports whether a requested list name resolves to the standalone
// default collection.
func IsToday(name string) bool {
	return CanonicalKey(name) == ReservedToday
}
