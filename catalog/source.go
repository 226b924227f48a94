package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/shopspring/decimal"
)

// Source loads the full catalog.
type Source interface {
	Load(ctx context.Context) ([]models.MenuItem, error)
}

var ErrInvalidItem = errors.New("invalid catalog item")

// Load fetches the catalog from src and records the outcome in st:
// FetchMenuStart first, then exactly one of FetchMenuSuccess or FetchMenuFailure.
func Load(ctx context.Context, st *store.Store, src Source) error {
	if err := st.Dispatch(store.FetchMenuStart{}); err != nil {
		return err
	}
	items, err := src.Load(ctx)
	if err != nil {
		_ = st.Dispatch(store.FetchMenuFailure{Message: err.Error()})
		return fmt.Errorf("load catalog: %w", err)
	}
	return st.Dispatch(store.FetchMenuSuccess{Items: items})
}

// ToCartItem builds a cart line from a catalog entry.
func ToCartItem(item models.MenuItem, quantity int) models.CartItem {
	return models.CartItem{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Quantity:    quantity,
		Image:       item.Image,
		Category:    item.Category,
		Description: item.Description,
		IsSpicy:     item.IsSpicy,
	}
}

// itemDocument is the stored shape of a catalog entry, shared by the
// YAML and Mongo sources.
type itemDocument struct {
	ID              string  `yaml:"id" bson:"_id"`
	Name            string  `yaml:"name" bson:"name"`
	Description     string  `yaml:"description" bson:"description"`
	Price           float64 `yaml:"price" bson:"price"`
	Image           string  `yaml:"image" bson:"image"`
	Category        string  `yaml:"category" bson:"category"`
	Restaurant      string  `yaml:"restaurant" bson:"restaurant"`
	Rating          float64 `yaml:"rating" bson:"rating"`
	PreparationTime int     `yaml:"preparation_time" bson:"preparation_time"`
	IsSpicy         bool    `yaml:"is_spicy" bson:"is_spicy"`
	IsVegetarian    bool    `yaml:"is_vegetarian" bson:"is_vegetarian"`
	IsBestSeller    bool    `yaml:"is_best_seller" bson:"is_best_seller"`
}

func (d itemDocument) toModel() models.MenuItem {
	return models.MenuItem{
		ID:              d.ID,
		Name:            d.Name,
		Description:     d.Description,
		Price:           decimal.NewFromFloat(d.Price),
		Image:           d.Image,
		Category:        d.Category,
		Restaurant:      d.Restaurant,
		Rating:          d.Rating,
		PreparationTime: d.PreparationTime,
		IsSpicy:         d.IsSpicy,
		IsVegetarian:    d.IsVegetarian,
		IsBestSeller:    d.IsBestSeller,
	}
}

func toModels(docs []itemDocument) ([]models.MenuItem, error) {
	seen := make(map[string]bool, len(docs))
	items := make([]models.MenuItem, 0, len(docs))
	for i, d := range docs {
		switch {
		case d.ID == "":
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidItem, i)
		case seen[d.ID]:
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, d.ID)
		case d.Name == "":
			return nil, fmt.Errorf("%w: %q has no name", ErrInvalidItem, d.ID)
		case d.Price < 0:
			return nil, fmt.Errorf("%w: %q has a negative price", ErrInvalidItem, d.ID)
		case d.Rating < 0 || d.Rating > 5:
			return nil, fmt.Errorf("%w: %q rating %.1f is outside 0-5", ErrInvalidItem, d.ID, d.Rating)
		case d.PreparationTime < 0:
			return nil, fmt.Errorf("%w: %q has a negative preparation time", ErrInvalidItem, d.ID)
		}
		seen[d.ID] = true
		items = append(items, d.toModel())
	}
	return items, nil
}
