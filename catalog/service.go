package catalog

import (
	"fmt"
	"strings"

	"github.com/imransheikh-git/catalog-admin-api/models"
)

// Service is the catalog mutation core. Every product write goes through it:
// payloads are normalized and checked against the category hierarchy before a
// single store call persists the result.
type Service struct {
	products  ProductStore
	directory Directory
}

func NewService(products ProductStore, directory Directory) *Service {
	return &Service{products: products, directory: directory}
}

// Create validates the payload and stores a new product. Nothing is written
// until every check has passed.
func (s *Service) Create(p ProductPayload) (*models.Product, error) {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return nil, validationErrorf("title is required")
	}
	if p.Price == nil {
		return nil, validationErrorf("price is required")
	}
	if *p.Price < 0 {
		return nil, validationErrorf("price must not be negative")
	}
	if p.Stock == nil {
		return nil, validationErrorf("stock is required")
	}
	if *p.Stock < 0 {
		return nil, validationErrorf("stock must not be negative")
	}
	if p.Category == nil || *p.Category == "" {
		return nil, validationErrorf("category is required")
	}
	if p.Img == nil || len(*p.Img) == 0 {
		return nil, validationErrorf("at least one image or video is required")
	}
	if p.Discount != nil && *p.Discount < 0 {
		return nil, validationErrorf("discount must not be negative")
	}

	arrival := YesNo("no")
	if p.Arrival != nil {
		arrival = *p.Arrival
		if !arrival.Valid() {
			return nil, validationErrorf(`arrival must be "yes" or "no"`)
		}
	}

	subcategory := ""
	if p.Subcategory != nil {
		subcategory = *p.Subcategory
	}
	if err := s.checkHierarchy(*p.Category, subcategory); err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:       *p.Title,
		Price:       float64(*p.Price),
		Stock:       int(*p.Stock),
		Category:    *p.Category,
		Subcategory: subcategory,
		Img:         *p.Img,
		Arrival:     string(arrival),
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Discount != nil {
		d := float64(*p.Discount)
		product.Discount = &d
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List returns every product, newest first.
func (s *Service) List() ([]models.Product, error) {
	return s.products.FindAllOrderedByIDDesc()
}

// Update merges the supplied fields onto the stored product. When the
// category changes and the payload carries no subcategory, the subcategory is
// cleared rather than left pointing into the old category's hierarchy. The
// merged record is re-validated before it is saved.
func (s *Service) Update(id uint, p ProductPayload) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return nil, validationErrorf("title must not be empty")
		}
		product.Title = *p.Title
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return nil, validationErrorf("price must not be negative")
		}
		product.Price = float64(*p.Price)
	}
	if p.Discount != nil {
		if *p.Discount < 0 {
			return nil, validationErrorf("discount must not be negative")
		}
		d := float64(*p.Discount)
		product.Discount = &d
	}
	if p.Stock != nil {
		if *p.Stock < 0 {
			return nil, validationErrorf("stock must not be negative")
		}
		product.Stock = int(*p.Stock)
	}
	if p.Img != nil {
		if len(*p.Img) == 0 {
			return nil, validationErrorf("at least one image or video is required")
		}
		product.Img = *p.Img
	}
	if p.Arrival != nil {
		if !p.Arrival.Valid() {
			return nil, validationErrorf(`arrival must be "yes" or "no"`)
		}
		product.Arrival = string(*p.Arrival)
	}
	if p.Category != nil {
		if *p.Category == "" {
			return nil, validationErrorf("category must not be empty")
		}
		if *p.Category != product.Category && p.Subcategory == nil {
			product.Subcategory = ""
		}
		product.Category = *p.Category
	}
	if p.Subcategory != nil {
		product.Subcategory = *p.Subcategory
	}

	if err := s.checkHierarchy(product.Category, product.Subcategory); err != nil {
		return nil, err
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product. Deleting an id that does not exist is an error,
// not a no-op.
func (s *Service) Delete(id uint) error {
	return s.products.DeleteByID(id)
}

// checkHierarchy verifies that category exists and that subcategory, when
// non-empty, belongs to it.
func (s *Service) checkHierarchy(category, subcategory string) error {
	categories, err := s.directory.ListCategories()
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	found := false
	for _, c := range categories {
		if c.Name == category {
			found = true
			break
		}
	}
	if !found {
		return validationErrorf(fmt.Sprintf("unknown category %q", category))
	}

	if subcategory == "" {
		return nil
	}

	subcategories, err := s.directory.ListSubcategories()
	if err != nil {
		return fmt.Errorf("load subcategories: %w", err)
	}
	for _, sub := range subcategories {
		if sub.Name == subcategory && sub.Category == category {
			return nil
		}
	}
	return validationErrorf(fmt.Sprintf("subcategory %q does not belong to category %q", subcategory, category))
}
