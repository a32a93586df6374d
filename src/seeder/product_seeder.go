package seeder

import (
	"context"
	"log"
	"time"

	"Backend-Curadoria-AF/src/database"
	"Backend-Curadoria-AF/src/services/products"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedProducts loads the static catalog into an empty products collection
// so a fresh deployment serves the funnel immediately. Existing data is
// never touched.
func SeedProducts() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Products collection already seeded, skipping")
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(products.StaticCatalog))
	for i, p := range products.StaticCatalog {
		p.SortOrder = i
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}

	if _, err := database.ProductCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("✅ Seeded %d products", len(docs))
	return nil
}
