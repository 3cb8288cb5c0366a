package repository

// ProductListFilter narrows catalog queries.
type ProductListFilter struct {
	Page         int
	PageSize     int
	Search       string
	FeaturedOnly bool
	Bestsellers  bool
}

// OrderListFilter narrows order queries.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}
