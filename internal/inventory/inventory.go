// Package inventory applies the nightly update rules to a shop's stock.
package inventory

import "github.com/vyrodovalexey/gildedrose/internal/model"

// Shop owns the item slice that UpdateQuality mutates.
type Shop struct {
	Items []model.Item
}

// NewShop wraps items without copying them.
func NewShop(items []model.Item) *Shop {
	return &Shop{Items: items}
}

// UpdateQuality advances every item by one day and returns the shop's slice.
func (s *Shop) UpdateQuality() []model.Item {
	return AdvanceOneDay(s.Items)
}

// AdvanceOneDay mutates each item in place and returns the same slice.
// Items are independent of each other.
func AdvanceOneDay(items []model.Item) []model.Item {
	for i := range items {
		advance(&items[i])
	}
	return items
}

func advance(item *model.Item) {
	variant := item.Variant()
	if variant == model.Legendary {
		return
	}

	switch variant {
	case model.Ordinary:
		decreaseQuality(item)
	case model.AgedBrie:
		increaseQuality(item)
	case model.BackstagePass:
		increaseQuality(item)
		if item.SellIn <= model.PreviousWeekThreshold {
			increaseQuality(item)
		}
		if item.SellIn <= model.CurrentWeekThreshold {
			increaseQuality(item)
		}
	}

	item.SellIn--

	if !item.Expired() {
		return
	}

	switch variant {
	case model.Ordinary:
		decreaseQuality(item)
	case model.AgedBrie:
		increaseQuality(item)
	case model.BackstagePass:
		item.Quality = model.MinQuality
	}
}

// increaseQuality is a no-op at or above MaxQuality.
func increaseQuality(item *model.Item) {
	if item.Quality < model.MaxQuality {
		item.Quality++
	}
}

// decreaseQuality is a no-op at or below MinQuality.
func decreaseQuality(item *model.Item) {
	if item.Quality > model.MinQuality {
		item.Quality--
	}
}
