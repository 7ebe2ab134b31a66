package domain

import "time"

// LowStockThreshold is the stock level below which a product is
// advertised as running out. It never blocks adding to cart.
const LowStockThreshold = 5

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"nom"`
	Price       int64     `json:"prix"` // FCFA, no decimals
	Description string    `json:"description"`
	AgeCategory string    `json:"categorie_age"`
	ImageURL    string    `json:"image_url"`
	Stock       int64     `json:"stock_disponible"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p Product) OutOfStock() bool {
	return p.Stock <= 0
}

func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock < LowStockThreshold
}
