package models

import "time"

// --- Product ---
// Catalog entry. The funnel only reads these; the admin screen owns CRUD.
type Product struct {
	ID          string            `bson:"_id,omitempty" json:"id"`
	Name        string            `bson:"name" json:"name"`
	SKU         string            `bson:"sku" json:"sku"`
	ImageURL    string            `bson:"image_url" json:"image_url"`
	PriceMin    float64           `bson:"price_min" json:"price_min"`
	PriceMax    float64           `bson:"price_max" json:"price_max"`
	Categories  []string          `bson:"categories" json:"categories"`
	Colors      []string          `bson:"colors,omitempty" json:"colors,omitempty"`
	ColorImages map[string]string `bson:"color_images,omitempty" json:"color_images,omitempty"`
	ColorSKUs   map[string]string `bson:"color_skus,omitempty" json:"color_skus,omitempty"`
	Active      bool              `bson:"active" json:"active"`
	SortOrder   int               `bson:"sort_order" json:"sort_order"`
	CreatedAt   time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// --- SelectedProduct ---
// Trimmed projection the visitor picked on the product selection step.
// The id is session-local; the submitted record keeps only name and sku.
type SelectedProduct struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Name string `bson:"name" json:"name"`
	SKU  string `bson:"sku" json:"sku"`
}

// ProductRequest is the admin create/update body.
type ProductRequest struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name" validate:"required,max=200"`
	SKU         string            `json:"sku" validate:"required,max=100"`
	ImageURL    string            `json:"image_url" validate:"required,url,max=2000"`
	PriceMin    float64           `json:"price_min" validate:"gte=0"`
	PriceMax    float64           `json:"price_max" validate:"gte=0"`
	Categories  []string          `json:"categories"`
	Colors      []string          `json:"colors"`
	ColorImages map[string]string `json:"color_images"`
	ColorSKUs   map[string]string `json:"color_skus"`
	Active      *bool             `json:"active"`
	SortOrder   int               `json:"sort_order" validate:"gte=0"`
}
