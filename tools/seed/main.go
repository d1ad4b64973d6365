package main

import (
	"context"
	"errors"
	"log"
	"time"

	"camerastore/config"
	"camerastore/database"
	productRepoPkg "camerastore/database/repository/product"
	userRepoPkg "camerastore/database/repository/user"
	"camerastore/models"
	"camerastore/services/user"

	"github.com/spf13/viper"
)

// Seeds the first administrator and, when SEED_SAMPLE_PRODUCTS is set, a
// small demo catalog. Safe to run repeatedly.
func main() {
	config.LoadConfig()
	database.InitDB()
	defer database.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.DB()
	users := user.NewUserService(userRepoPkg.NewMongoUserRepo(db), nil)

	input, err := adminInput()
	if err != nil {
		log.Fatal(err)
	}

	admin, err := users.CreateAdmin(ctx, input)
	switch {
	case errors.Is(err, user.ErrUserExists):
		log.Printf("Admin %s already exists, skipping", input.Email)
	case err != nil:
		log.Fatalf("Failed to create admin: %v", err)
	default:
		log.Printf("Created admin %s (%s)", admin.Email, admin.ID)
	}

	if !viper.GetBool("SEED_SAMPLE_PRODUCTS") {
		return
	}

	products := productRepoPkg.NewMongoProductRepo(db)
	existing, err := products.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to read products: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d products, skipping samples", len(existing))
		return
	}

	imageURL := viper.GetString("SEED_SAMPLE_IMAGE_URL")
	discount := 10.0
	samples := []models.Product{
		{
			Name:        "Canon EOS R6",
			Type:        "Mirrorless",
			TypeHebrew:  "ללא מראה",
			Price:       450,
			Megapixels:  20.1,
			Rating:      5,
			Features:    []string{"4K 60p", "IBIS", "Dual card slots"},
			Description: "Full-frame mirrorless body for events and travel.",
			ImageURL:    imageURL,
			Discount:    &discount,
		},
		{
			Name:        "Nikon D750",
			Type:        "DSLR",
			TypeHebrew:  "רפלקס",
			Price:       300,
			Megapixels:  24.3,
			Rating:      4,
			Features:    []string{"Tilting screen", "Wi-Fi"},
			Description: "Reliable full-frame DSLR.",
			ImageURL:    imageURL,
		},
	}
	for i := range samples {
		samples[i].CreatedAt = time.Now().Add(time.Duration(-i) * time.Minute)
		if err := products.Create(ctx, &samples[i]); err != nil {
			log.Fatalf("Failed to create sample product %s: %v", samples[i].Name, err)
		}
		log.Printf("Created sample product %s (%s)", samples[i].Name, samples[i].ID)
	}
}
