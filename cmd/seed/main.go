package main

import (
	"github.com/jusas-smoothie/api/internal/config"
	"github.com/jusas-smoothie/api/internal/logger"
	"github.com/jusas-smoothie/api/internal/models"

	"github.com/shopspring/decimal"
)

func smoothie(name, description, imageURL, imageCredit string, price int64, stock int, featured bool) models.Product {
	return models.Product{
		Name:        name,
		Description: description,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Stock:       stock,
		ImageURL:    imageURL,
		ImageCredit: imageCredit,
		IsFeatured:  featured,
	}
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	products := []models.Product{
		smoothie("Mango Banana Boost",
			"A tropical explosion of sweet mango and creamy banana to boost your day.",
			"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			"Pexels – Frida Gay", 149, 50, true),
		smoothie("Green Detox Smoothie",
			"Cleansing greens with a hint of citrus for the ultimate detox.",
			"https://images.pexels.com/photos/7187426/pexels-photo-7187426.jpeg",
			"Pexels – Daria Shevtsova", 159, 40, false),
		smoothie("Strawberry Yogurt Bliss",
			"Creamy yogurt blended with fresh strawberries for a blissful treat.",
			"https://images.pexels.com/photos/461198/pexels-photo-461198.jpeg",
			"Pexels – Lisa Fotios", 169, 45, true),
		smoothie("Berry Antioxidant Blast",
			"Loaded with berries and antioxidants to keep you healthy and glowing.",
			"https://images.pexels.com/photos/414555/pexels-photo-414555.jpeg",
			"Pexels – Lisa Fotios", 169, 40, false),
		smoothie("Tropical Mango Pineapple",
			"Vacation in a cup! Sweet mango and tangy pineapple.",
			"https://images.pexels.com/photos/1346347/pexels-photo-1346347.jpeg",
			"Pexels – Brenda Godinez", 149, 50, false),
		smoothie("Avocado Matcha Smoothie",
			"Rich avocado meets earthy matcha for a smooth, energizing drink.",
			"https://images.pexels.com/photos/5945754/pexels-photo-5945754.jpeg",
			"Pexels – Charlotte May", 179, 30, false),
		smoothie("Chocolate Banana Protein Shake",
			"Protein-packed chocolate goodness with a banana base.",
			"https://images.pexels.com/photos/775031/pexels-photo-775031.jpeg",
			"Pexels – Jess Bailey", 189, 35, false),
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	stdLog.Println("Seeding finished.")
}
