package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type seedArtisan struct {
	name string
	bio  string
}

type seedProduct struct {
	name        string
	description string
	price       float64
	artisanIdx  int
}

var artisans = []seedArtisan{
	{"Emma Woodworks", "Crafting beautiful wooden furniture for over 15 years."},
	{"Sophia's Ceramics", "Creating unique, hand-thrown pottery inspired by nature."},
	{"Liam's Leather Goods", "Specializing in high-quality, handmade leather accessories."},
	{"Olivia's Textiles", "Weaving traditional patterns with modern designs in textiles."},
	{"Noah's Metalworks", "Forging functional art from various metals for home and garden."},
}

var products = []seedProduct{
	{"Handcrafted Oak Dining Table", "A sturdy, elegant dining table made from solid oak.", 1200, 0},
	{"Walnut Bookshelf", "A beautiful walnut bookshelf with adjustable shelves.", 450, 0},
	{"Cherry Wood Rocking Chair", "A comfortable, classic rocking chair made from cherry wood.", 350, 0},
	{"Blue Glazed Dinner Set", "A 12-piece dinner set with a stunning blue glaze finish.", 180, 1},
	{"Terra Cotta Planter", "Hand-thrown terra cotta planter, perfect for herbs or small plants.", 45, 1},
	{"Porcelain Vase", "An elegant, hand-painted porcelain vase.", 120, 1},
	{"Handstitched Leather Wallet", "A durable, handstitched leather wallet with multiple card slots.", 80, 2},
	{"Vintage-style Leather Satchel", "A spacious, vintage-inspired leather satchel.", 220, 2},
	{"Leather Watch Strap", "A high-quality leather watch strap, available in multiple sizes.", 40, 2},
	{"Hand-woven Wool Blanket", "A warm, hand-woven blanket made from 100% wool.", 150, 3},
	{"Embroidered Linen Tablecloth", "A beautiful linen tablecloth with hand-embroidered details.", 95, 3},
	{"Silk Scarf with Hand-painted Design", "A luxurious silk scarf featuring a unique, hand-painted design.", 75, 3},
	{"Wrought Iron Garden Gate", "A decorative and functional wrought iron garden gate.", 500, 4},
	{"Copper Wind Chimes", "Melodic copper wind chimes with a patina finish.", 65, 4},
	{"Stainless Steel Sculpture", "An abstract stainless steel sculpture for modern home decor.", 300, 4},
}

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL not set in environment")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := seed(db); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✅ Database seeded successfully.")
}

func seed(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	artisanIDs := make([]int, len(artisans))
	for i, a := range artisans {
		err := tx.QueryRow(
			`INSERT INTO artisans (name, bio) VALUES ($1, $2) RETURNING id`,
			a.name, a.bio,
		).Scan(&artisanIDs[i])
		if err != nil {
			return fmt.Errorf("failed to insert artisan %q: %w", a.name, err)
		}
	}

	for _, p := range products {
		_, err := tx.Exec(
			`INSERT INTO products (name, description, price, likes, artisan_id) VALUES ($1, $2, $3, 0, $4)`,
			p.name, p.description, p.price, artisanIDs[p.artisanIdx],
		)
		if err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.name, err)
		}
	}

	return tx.Commit()
}
