package repository

import (
	"time"

	"dineboard/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) List(category *entity.MenuCategory) ([]entity.MenuItem, error) {
	q := r.db.Where("is_active = ?", true)
	if category != nil {
		q = q.Where("category = ?", *category)
	}
	var items []entity.MenuItem
	if err := q.Order("category, name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.db.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.db.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.db.Delete(&entity.MenuItem{}, id).Error
}

// RecordOrder bumps the popularity counters when the item is ordered.
func (r *MenuRepository) RecordOrder(tx *gorm.DB, id uint, qty int, at time.Time) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&entity.MenuItem{}).Where("id = ?", id).
		Updates(map[string]any{
			"order_count":     gorm.Expr("order_count + ?", qty),
			"last_ordered_at": at,
		}).Error
}
