package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VortexWanderer9/food-delivery-app/models"
)

// AllCategories is the category sentinel that selects the whole catalog.
// It is matched case-sensitively.
const AllCategories = "All"

// SortDirection orders items by price.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// MenuState holds the catalog and the view derived from it.
//
// FilteredItems is always a subset of Items. Category and search filters
// rebuild it from Items in catalog order, so they drop any earlier sort.
// Sorts reorder the current FilteredItems and keep the active filter.
type MenuState struct {
	Items            []models.MenuItem `json:"items"`
	FilteredItems    []models.MenuItem `json:"filtered_items"`
	SelectedCategory string            `json:"selected_category"`
	SearchTerm       string            `json:"search_term,omitempty"`
	Loading          bool              `json:"loading"`
	Error            string            `json:"error,omitempty"`
}

// NewMenuState returns an empty menu with the "All" category selected.
func NewMenuState() MenuState {
	return MenuState{
		Items:            []models.MenuItem{},
		FilteredItems:    []models.MenuItem{},
		SelectedCategory: AllCategories,
	}
}

func (m *MenuState) FetchStart() {
	m.Loading = true
	m.Error = ""
}

// FetchSuccess replaces the catalog and resets the view to all of it.
func (m *MenuState) FetchSuccess(items []models.MenuItem) {
	m.Loading = false
	m.Items = append([]models.MenuItem{}, items...)
	m.SelectedCategory = AllCategories
	m.SearchTerm = ""
	m.refilter()
}

func (m *MenuState) FetchFailure(message string) {
	m.Loading = false
	m.Error = message
}

// FilterByCategory selects a category and clears any search term.
// Categories other than "All" match case-insensitively.
func (m *MenuState) FilterByCategory(category string) {
	m.SelectedCategory = category
	m.SearchTerm = ""
	m.refilter()
}

// SearchItems narrows the selected category to items whose name or
// description contains term, ignoring case. An empty term shows the whole category.
func (m *MenuState) SearchItems(term string) {
	m.SearchTerm = term
	m.refilter()
}

// SortByPrice orders the current view by price.
func (m *MenuState) SortByPrice(dir SortDirection) error {
	switch dir {
	case SortAsc:
		m.sortView(func(a, b models.MenuItem) bool { return a.Price.LessThan(b.Price) })
	case SortDesc:
		m.sortView(func(a, b models.MenuItem) bool { return a.Price.GreaterThan(b.Price) })
	default:
		return fmt.Errorf("sort by price %q: %w", dir, ErrInvalidSortDirection)
	}
	return nil
}

// SortByRating orders the current view by rating, best first.
func (m *MenuState) SortByRating() {
	m.sortView(func(a, b models.MenuItem) bool { return a.Rating > b.Rating })
}

// SortByPreparationTime orders the current view by preparation time, quickest first.
func (m *MenuState) SortByPreparationTime() {
	m.sortView(func(a, b models.MenuItem) bool { return a.PreparationTime < b.PreparationTime })
}

// Categories lists the distinct catalog categories in first-seen order.
func (m MenuState) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range m.Items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// Item looks up a catalog entry by id.
func (m MenuState) Item(id string) (models.MenuItem, bool) {
	for _, it := range m.Items {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

func (m *MenuState) refilter() {
	term := strings.ToLower(m.SearchTerm)
	out := make([]models.MenuItem, 0, len(m.Items))
	for _, it := range m.Items {
		if m.SelectedCategory != AllCategories && !strings.EqualFold(it.Category, m.SelectedCategory) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Description), term) {
			continue
		}
		out = append(out, it)
	}
	m.FilteredItems = out
}

func (m *MenuState) sortView(less func(a, b models.MenuItem) bool) {
	view := append([]models.MenuItem{}, m.FilteredItems...)
	sort.SliceStable(view, func(i, j int) bool { return less(view[i], view[j]) })
	m.FilteredItems = view
}

func (m MenuState) clone() MenuState {
	m.Items = append([]models.MenuItem{}, m.Items...)
	m.FilteredItems = append([]models.MenuItem{}, m.FilteredItems...)
	return m
}
