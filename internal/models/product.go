package models

// Product is a single catalog row. SKU is the unique business key: once a SKU
// exists, its name is fixed and repeat inserts only merge quantity.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"productName"`
	Type        string  `json:"type"`
	SKU         string  `json:"sku"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	UserID      int     `json:"userID"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalProducts   int  `json:"totalProducts"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}
