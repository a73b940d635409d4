// Package model defines data structures used throughout the application.
package model

import "fmt"

// Item names that select a non-ordinary update rule.
const (
	NameAgedBrie      = "Aged Brie"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
)

// Quality bounds and sell-in thresholds.
const (
	MinQuality = 0
	MaxQuality = 50

	// ExpiredBelow is the sell-in value under which an item is expired.
	ExpiredBelow = 0

	// PreviousWeekThreshold and CurrentWeekThreshold are the sell-in values
	// at or below which backstage passes gain an extra point each.
	PreviousWeekThreshold = 10
	CurrentWeekThreshold  = 5
)

// Variant is the closed set of update rules an item can follow.
type Variant int

// Supported variants.
const (
	Ordinary Variant = iota
	AgedBrie
	BackstagePass
	Legendary
)

// String returns the lowercase label of the variant.
func (v Variant) String() string {
	switch v {
	case AgedBrie:
		return "aged_brie"
	case BackstagePass:
		return "backstage_pass"
	case Legendary:
		return "legendary"
	default:
		return "ordinary"
	}
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Ordinary, AgedBrie, BackstagePass, Legendary}
}

// Classify resolves the variant for an item name.
// Unknown names are ordinary.
func Classify(name string) Variant {
	switch name {
	case NameAgedBrie:
		return AgedBrie
	case NameBackstagePass:
		return BackstagePass
	case NameSulfuras:
		return Legendary
	default:
		return Ordinary
	}
}

// Item is a single stock entry. Values are not validated: whatever the caller
// constructs is what the update rules act on.
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// NewItem creates an item.
func NewItem(name string, sellIn, quality int) Item {
	return Item{
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
	}
}

// Variant returns the update rule the item follows.
func (i Item) Variant() Variant {
	return Classify(i.Name)
}

// Expired reports whether the sell-in date has passed.
func (i Item) Expired() bool {
	return i.SellIn < ExpiredBelow
}

// String renders the item as "name, sellIn, quality".
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
