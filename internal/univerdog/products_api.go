package univerdog

import (
	"context"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

// Products lists the shop catalogue.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductCategories lists the shop's category set.
func (c *Client) ProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	if err := c.get(ctx, "/products-categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductPhotos lists photo records across the catalogue.
func (c *Client) ProductPhotos(ctx context.Context) ([]models.ProductPhoto, error) {
	var photos []models.ProductPhoto
	if err := c.get(ctx, "/products-photos", nil, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}
