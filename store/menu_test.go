package store

import (
	"testing"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id, name, category, price string, rating float64, prep int) models.MenuItem {
	return models.MenuItem{
		ID:              id,
		Name:            name,
		Description:     name + " from the kitchen",
		Price:           decimal.RequireFromString(price),
		Category:        category,
		Rating:          rating,
		PreparationTime: prep,
	}
}

func sampleCatalog() []models.MenuItem {
	return []models.MenuItem{
		menuItem("1", "Margherita", "Pizza", "12.99", 4.5, 20),
		menuItem("2", "Pepperoni", "Pizza", "14.99", 4.8, 22),
		menuItem("3", "California Roll", "Sushi", "9.50", 4.7, 25),
		menuItem("4", "Spicy Ramen", "Asian", "13.49", 4.9, 15),
	}
}

func ids(items []models.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func loadedMenu() MenuState {
	m := NewMenuState()
	m.FetchStart()
	m.FetchSuccess(sampleCatalog())
	return m
}

func TestMenuFetchLifecycle(t *testing.T) {
	m := NewMenuState()

	m.FetchStart()
	assert.True(t, m.Loading)
	assert.Empty(t, m.Error)

	m.FetchFailure("network down")
	assert.False(t, m.Loading)
	assert.Equal(t, "network down", m.Error)
	assert.Empty(t, m.Items)

	m.FetchStart()
	assert.Empty(t, m.Error, "start clears the previous error")

	m.FetchSuccess(sampleCatalog())
	assert.False(t, m.Loading)
	assert.Len(t, m.Items, 4)
	assert.Equal(t, ids(m.Items), ids(m.FilteredItems))
}

func TestMenuFilterByCategoryIgnoresCase(t *testing.T) {
	m := loadedMenu()

	m.FilterByCategory("pizza")
	assert.Equal(t, []string{"1", "2"}, ids(m.FilteredItems))
	assert.Equal(t, "pizza", m.SelectedCategory)

	m.FilterByCategory("SUSHI")
	assert.Equal(t, []string{"3"}, ids(m.FilteredItems))

	m.FilterByCategory("Dessert")
	assert.Empty(t, m.FilteredItems)
}

func TestMenuFilterAllRestoresCatalog(t *testing.T) {
	m := loadedMenu()
	m.FilterByCategory("Pizza")
	m.SearchItems("pep")
	require.NoError(t, m.SortByPrice(SortDesc))

	m.FilterByCategory(AllCategories)
	assert.Equal(t, ids(m.Items), ids(m.FilteredItems))
	assert.Empty(t, m.SearchTerm)
}

func TestMenuAllSentinelIsCaseSensitive(t *testing.T) {
	m := loadedMenu()
	m.FilterByCategory("all")
	assert.Empty(t, m.FilteredItems)
}

func TestMenuSearchComposesWithCategory(t *testing.T) {
	m := loadedMenu()

	m.SearchItems("ROLL")
	assert.Equal(t, []string{"3"}, ids(m.FilteredItems))

	m.FilterByCategory("Pizza")
	m.SearchItems("kitchen")
	assert.Equal(t, []string{"1", "2"}, ids(m.FilteredItems), "description match stays within the category")

	m.SearchItems("ramen")
	assert.Empty(t, m.FilteredItems, "ramen is not a pizza")

	m.SearchItems("")
	assert.Equal(t, []string{"1", "2"}, ids(m.FilteredItems))
}

func TestMenuSortPriceReverses(t *testing.T) {
	m := loadedMenu()

	require.NoError(t, m.SortByPrice(SortAsc))
	asc := ids(m.FilteredItems)
	assert.Equal(t, []string{"3", "1", "4", "2"}, asc)

	require.NoError(t, m.SortByPrice(SortDesc))
	desc := ids(m.FilteredItems)
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestMenuSortKeepsFilter(t *testing.T) {
	m := loadedMenu()
	m.FilterByCategory("Pizza")

	m.SortByRating()
	assert.Equal(t, []string{"2", "1"}, ids(m.FilteredItems))

	m.SortByPreparationTime()
	assert.Equal(t, []string{"1", "2"}, ids(m.FilteredItems))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(m.Items), "sorting never touches the catalog")
}

func TestMenuFilterDropsSort(t *testing.T) {
	m := loadedMenu()
	m.SortByRating()
	assert.Equal(t, []string{"4", "2", "3", "1"}, ids(m.FilteredItems))

	m.SearchItems("")
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(m.FilteredItems))
}

func TestMenuSortInvalidDirection(t *testing.T) {
	m := loadedMenu()
	before := ids(m.FilteredItems)

	err := m.SortByPrice("sideways")
	assert.ErrorIs(t, err, ErrInvalidSortDirection)
	assert.Equal(t, before, ids(m.FilteredItems))
}

func TestMenuFilteredIsSubsetOfItems(t *testing.T) {
	m := loadedMenu()
	steps := []func(){
		func() { m.FilterByCategory("pizza") },
		func() { m.SortByRating() },
		func() { m.SearchItems("a") },
		func() { _ = m.SortByPrice(SortAsc) },
		func() { m.FilterByCategory(AllCategories) },
	}

	for _, step := range steps {
		step()
		for _, f := range m.FilteredItems {
			_, ok := m.Item(f.ID)
			assert.True(t, ok, "filtered item %s missing from catalog", f.ID)
		}
	}
}

func TestMenuCategories(t *testing.T) {
	m := loadedMenu()
	assert.Equal(t, []string{"Pizza", "Sushi", "Asian"}, m.Categories())
}
