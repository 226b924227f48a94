package controllers

import (
	"net/http"

	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/gorilla/mux"
)

// MenuController serves the catalog view
type MenuController struct {
	Store *store.Store
}

// NewMenuController creates a new MenuController
func NewMenuController(st *store.Store) *MenuController {
	return &MenuController{Store: st}
}

var sortActions = map[string]store.Action{
	"price-asc":  store.SortByPrice{Direction: store.SortAsc},
	"price-desc": store.SortByPrice{Direction: store.SortDesc},
	"rating":     store.SortByRating{},
	"time":       store.SortByPreparationTime{},
}

// GetMenu applies the category, search and sort given in the query and
// returns the resulting view. Parameters that are absent leave the view alone.
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var actions []store.Action
	if query.Has("category") {
		actions = append(actions, store.FilterByCategory{Category: query.Get("category")})
	}
	if query.Has("q") {
		actions = append(actions, store.SearchItems{Term: query.Get("q")})
	}
	if s := query.Get("sort"); s != "" {
		action, ok := sortActions[s]
		if !ok {
			http.Error(w, "Invalid sort", http.StatusBadRequest)
			return
		}
		actions = append(actions, action)
	}
	for _, a := range actions {
		if err := mc.Store.Dispatch(a); err != nil {
			writeError(w, err)
			return
		}
	}

	menu := mc.Store.Menu()
	if menu.Error != "" {
		http.Error(w, menu.Error, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": menu.SelectedCategory,
		"search":   menu.SearchTerm,
		"items":    menu.FilteredItems,
	})
}

// GetCategories lists "All" followed by the catalog's categories
func (mc *MenuController) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := append([]string{store.AllCategories}, mc.Store.Menu().Categories()...)
	writeJSON(w, http.StatusOK, categories)
}

// GetMenuItem returns one catalog item
func (mc *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, ok := mc.Store.Menu().Item(id)
	if !ok {
		writeError(w, store.ErrItemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
