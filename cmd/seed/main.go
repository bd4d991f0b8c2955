// Seeds the catalog with a sample product set for local development.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"minishop/internal/infra"
	"minishop/internal/models/db_models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	infra.AutoMigrate(db, &db_models.Product{})

	var count int64
	if err := db.Model(&db_models.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count products: %v", err)
	}
	if count > 0 {
		log.Printf("Products table already has %d rows, skipping seed", count)
		return
	}

	products := sampleProducts()
	if err := db.Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Seeded %d products", len(products))
}

func sampleProducts() []db_models.Product {
	price := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }

	return []db_models.Product{
		{Name: "Heavy Duty Mop Handle", Category: "Janitorial", Description: "Commercial-grade steel mop handle with quick-release clamp.", Price: price("24.99"), Stock: 50, IsActive: true},
		{Name: "Galvanized Deck Screws 5lb", Category: "Hardware", Description: "Corrosion-resistant deck screws, #8 x 2-1/2 inch, 5 pound box.", Price: price("29.99"), Stock: 120, IsActive: true},
		{Name: "Compression Faucet Valve", Category: "Plumbing", Description: "Quarter-turn compression valve for standard faucet assemblies.", Price: price("12.49"), Stock: 75, IsActive: true},
		{Name: "Porcelain Subway Tile", Category: "Tile", Description: "Glossy white 3x6 porcelain subway tile, sold per square foot.", Price: price("8.99"), Stock: 400, IsActive: true},
		{Name: "LED Shop Light 4ft", Category: "Lighting", Description: "4400 lumen linkable LED shop light with pull chain.", Price: price("39.95"), Stock: 30, IsActive: true},
		{Name: "Cordless Drill Driver Kit", Category: "Tools", Description: "20V drill driver with two batteries, charger and carry bag.", Price: price("129.00"), Stock: 18, IsActive: true},
		{Name: "Interior Latex Paint Gallon", Category: "Paint", Description: "One-coat matte interior paint, tintable base, one gallon.", Price: price("34.50"), Stock: 60, IsActive: true},
		{Name: "Stainless Kitchen Sink", Category: "Kitchen & Bath", Description: "Double-bowl 18-gauge stainless undermount sink.", Price: price("249.00"), Stock: 8, IsActive: true},
		{Name: "Snow Shovel Ergonomic", Category: "Seasonal", Description: "Poly blade snow shovel with ergonomic bent handle.", Price: price("21.75"), Stock: 0, IsActive: true},
		{Name: "Discontinued Wall Anchor Pack", Category: "Hardware", Description: "Legacy plastic wall anchors, replaced by updated SKU.", Price: price("4.99"), Stock: 200, IsActive: false},
	}
}
