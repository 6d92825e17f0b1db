package entity

const (
	StockIn  = "1"
	StockOut = "0"
)

type Product struct {
	ID          ID        `json:"id"`
	RefNumber   string    `json:"ref_number"`
	Title       string    `json:"title"`
	ProductType string    `json:"product_type"`
	PriceText   string    `json:"price_text"`
	Description string    `json:"description"`
	SizeFeet    string    `json:"size_feet"`
	SizeCms     string    `json:"size_cms"`
	Material    string    `json:"material"`
	Colour      string    `json:"colour"`
	StockStatus string    `json:"stock_status"`
	Images      ImageList `json:"images"`
	CreatedAt   string    `json:"created_at,omitempty"`
}

func (p Product) InStock() bool {
	return p.StockStatus != StockOut
}
