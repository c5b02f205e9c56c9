package catalog

import "github.com/imransheikh-git/catalog-admin-api/models"

// ProductStore is the persistence boundary for products. The Service is the
// only caller allowed to use the mutating methods; every write has already
// been validated by the time it reaches the store.
type ProductStore interface {
	Create(p *models.Product) error
	FindAllOrderedByIDDesc() ([]models.Product, error)
	FindByID(id uint) (*models.Product, error)
	Save(p *models.Product) error
	DeleteByID(id uint) error
}

// Directory exposes the current category hierarchy. Read-only; the sets are
// managed by a separate admin surface.
type Directory interface {
	ListCategories() ([]models.Category, error)
	ListSubcategories() ([]models.Subcategory, error)
}
