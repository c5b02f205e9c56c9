package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/imransheikh-git/catalog-admin-api/models"
)

// GormProductStore implements ProductStore on a GORM connection.
type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) Create(p *models.Product) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *GormProductStore) FindAllOrderedByIDDesc() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *GormProductStore) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return &product, nil
}

func (s *GormProductStore) Save(p *models.Product) error {
	if err := s.db.Save(p).Error; err != nil {
		return fmt.Errorf("save product %d: %w", p.ID, err)
	}
	return nil
}

func (s *GormProductStore) DeleteByID(id uint) error {
	res := s.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// GormDirectory implements Directory on the same connection.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := d.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (d *GormDirectory) ListSubcategories() ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := d.db.Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subcategories, nil
}
