package models

// Product is one shop item.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name_product"`
	Description string `json:"description_product"`
	Price       string `json:"price"`
	CategoryID  int64  `json:"products_category_id"`
}

// ProductCategory groups shop items.
type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name_product_cat"`
}

// ProductPhoto is one photo attached to a shop item.
type ProductPhoto struct {
	ID        int64  `json:"id"`
	PhotoName string `json:"photo_name_product"`
	ProductID int64  `json:"product_id"`
}
