package products

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-Curadoria-AF/src/database"
	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/questions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrProductNotFound = errors.New("product not found")

// categoryMapping expands a funnel category option into the catalog tags
// it covers. "facas" also pulls pocket knives, "churrasco" is an alias
// for barbecue kits and knives, and "sugestao" means show everything.
var categoryMapping = map[string][]string{
	"kits":                   {"kits"},
	"garrafas":               {"garrafas"},
	"cadernos":               {"cadernos"},
	"facas":                  {"facas", "canivetes"},
	"copos":                  {"copos"},
	"chapeus":                {"chapeus"},
	"mochilas":               {"mochilas"},
	"camping":                {"camping"},
	"churrasco":              {"kits", "facas"},
	questions.SuggestionOption: {},
}

// Filter narrows the catalog to the visitor's category picks. Selecting
// "sugestao" or nothing returns the full catalog. Catalog order is
// preserved and an empty match is a valid outcome, not an error.
func Filter(selected []string, catalog []models.Product) []models.Product {
	if len(selected) == 0 {
		return catalog
	}
	for _, cat := range selected {
		if cat == questions.SuggestionOption {
			return catalog
		}
	}

	wanted := map[string]bool{}
	for _, cat := range selected {
		mapped, ok := categoryMapping[cat]
		if !ok {
			mapped = []string{cat}
		}
		for _, tag := range mapped {
			wanted[tag] = true
		}
	}

	filtered := []models.Product{}
	for _, p := range catalog {
		for _, tag := range p.Categories {
			if wanted[tag] {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// DisplayPriceRange widens the real price band so the funnel never shows
// an exact quote. Returns estimated min and max.
func DisplayPriceRange(priceMin, priceMax float64) (float64, float64) {
	return priceMin * 0.8, priceMax * 1.2
}

// GetActiveProducts returns the live catalog: active products sorted by
// sort_order. Any storage failure or an empty collection falls back to
// the static catalog so the funnel always has something to show.
func GetActiveProducts(ctx context.Context) []models.Product {
	if database.ProductCollection == nil {
		return StaticCatalog
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := database.ProductCollection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		log.Println("⚠️ Product query failed, using static catalog:", err)
		return StaticCatalog
	}
	defer cursor.Close(ctx)

	var catalog []models.Product
	if err := cursor.All(ctx, &catalog); err != nil {
		log.Println("⚠️ Product decode failed, using static catalog:", err)
		return StaticCatalog
	}
	if len(catalog) == 0 {
		return StaticCatalog
	}
	return catalog
}

// GetAllProducts returns a paginated admin view of the catalog, active
// and inactive alike.
func GetAllProducts(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"sku": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := database.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := database.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Product
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetProductByID fetches one product for the admin edit screen.
func GetProductByID(id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err := database.ProductCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new catalog entry. A missing id gets a fresh
// uuid so admin-created products coexist with the slug ids of the seed.
func CreateProduct(req *models.ProductRequest) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product := fromRequest(req)
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := database.ProductCollection.InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces the editable fields of an existing product.
func UpdateProduct(id string, req *models.ProductRequest) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product := fromRequest(req)
	product.ID = id
	product.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":         product.Name,
		"sku":          product.SKU,
		"image_url":    product.ImageURL,
		"price_min":    product.PriceMin,
		"price_max":    product.PriceMax,
		"categories":   product.Categories,
		"colors":       product.Colors,
		"color_images": product.ColorImages,
		"color_skus":   product.ColorSKUs,
		"active":       product.Active,
		"sort_order":   product.SortOrder,
		"updated_at":   product.UpdatedAt,
	}}

	res, err := database.ProductCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrProductNotFound
	}
	return GetProductByID(id)
}

// DeleteProduct removes a catalog entry.
func DeleteProduct(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.ProductCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func fromRequest(req *models.ProductRequest) *models.Product {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	categories := req.Categories
	if categories == nil {
		categories = []string{}
	}
	return &models.Product{
		ID:          req.ID,
		Name:        req.Name,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Categories:  categories,
		Colors:      req.Colors,
		ColorImages: req.ColorImages,
		ColorSKUs:   req.ColorSKUs,
		Active:      active,
		SortOrder:   req.SortOrder,
	}
}
