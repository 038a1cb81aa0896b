package product

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/storefront/internal/domain/product"
)

// ProductDTO is the outward view of a product.
type ProductDTO struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Price   float64     `json:"price"`
	Stock   int         `json:"stock"`
	Feature *FeatureDTO `json:"feature"`
}

// FeatureDTO is the outward view of product features. Color is the colour name.
type FeatureDTO struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"`
}

// FeatureCommand carries feature input. Color is matched by name, ignoring case.
type FeatureCommand struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"`
}

// CreateCommand is the input for creating a product.
type CreateCommand struct {
	Name    string          `json:"name"`
	Price   float64         `json:"price"`
	Stock   int             `json:"stock"`
	Feature *FeatureCommand `json:"feature"`
}

// UpdateCommand is the input for replacing a product.
type UpdateCommand struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Price   float64         `json:"price"`
	Stock   int             `json:"stock"`
	Feature *FeatureCommand `json:"feature"`
}

// ToDTO maps a product to its outward view. A product without features maps
// to a DTO without features.
func ToDTO(p product.Product) ProductDTO {
	dto := ProductDTO{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
	if p.Feature != nil {
		dto.Feature = &FeatureDTO{
			Width:  p.Feature.Width,
			Height: p.Feature.Height,
			Color:  p.Feature.Color.String(),
		}
	}
	return dto
}

// ToDTOs maps every product, keeping order.
func ToDTOs(products []product.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ToDTO(p))
	}
	return dtos
}

// ToProduct builds a new product created at now.
func (c CreateCommand) ToProduct(now time.Time) (product.Product, error) {
	feature, err := c.Feature.toFeature()
	if err != nil {
		return product.Product{}, err
	}
	return product.Product{
		Name:    c.Name,
		Price:   c.Price,
		Stock:   c.Stock,
		Created: now,
		Feature: feature,
	}, nil
}

// ToProduct builds the replacement product updated at now. Created is
// carried over from the stored product by the repository.
func (c UpdateCommand) ToProduct(now time.Time) (product.Product, error) {
	feature, err := c.Feature.toFeature()
	if err != nil {
		return product.Product{}, err
	}
	return product.Product{
		ID:      c.ID,
		Name:    c.Name,
		Price:   c.Price,
		Stock:   c.Stock,
		Updated: &now,
		Feature: feature,
	}, nil
}

func (c *FeatureCommand) toFeature() (*product.Feature, error) {
	if c == nil {
		return nil, nil
	}
	color, err := product.ParseColor(c.Color)
	if err != nil {
		return nil, fmt.Errorf("feature: %w", err)
	}
	return &product.Feature{Width: c.Width, Height: c.Height, Color: color}, nil
}
