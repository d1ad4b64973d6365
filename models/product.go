package models

import "time"

// MaxFeatures is the number of free-text feature lines a product may carry.
const MaxFeatures = 4

// Product is a catalog entry stored in the products collection.
type Product struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Type        string     `bson:"type" json:"type"`
	TypeHebrew  string     `bson:"typeHebrew" json:"typeHebrew"`
	Price       float64    `bson:"price" json:"price"`
	Megapixels  float64    `bson:"megapixels" json:"megapixels"`
	Rating      float64    `bson:"rating" json:"rating"`
	Features    []string   `bson:"features" json:"features"`
	Description string     `bson:"description" json:"description"`
	ImageURL    string     `bson:"imageUrl" json:"imageUrl"`
	Discount    *float64   `bson:"discount,omitempty" json:"discount,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProductInput is the product form as submitted; numeric fields arrive as text.
type ProductInput struct {
	Name        string   `form:"name" json:"name"`
	Type        string   `form:"type" json:"type"`
	TypeHebrew  string   `form:"typeHebrew" json:"typeHebrew"`
	Price       string   `form:"price" json:"price"`
	Megapixels  string   `form:"megapixels" json:"megapixels"`
	Rating      string   `form:"rating" json:"rating"`
	Features    []string `form:"features" json:"features"`
	Description string   `form:"description" json:"description"`
	Discount    string   `form:"discount" json:"discount"`
	// ImageURL is the already-hosted image kept on edit when no new file is sent.
	ImageURL string `form:"imageUrl" json:"imageUrl"`
}

// PriceQuote is the display pricing shared by every catalog view.
type PriceQuote struct {
	Price           float64  `json:"price"`
	Discount        float64  `json:"discount,omitempty"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	EffectivePrice  float64  `json:"effectivePrice"`
	DisplayPrice    int64    `json:"displayPrice"`
	DisplayCurrency string   `json:"displayCurrency"`
}

// CatalogItem pairs a product with its quote.
type CatalogItem struct {
	Product
	Quote PriceQuote `json:"quote"`
}
