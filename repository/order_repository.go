package repository

import (
	"dineboard/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.Preload("Items").Where("order_number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderFilter struct {
	Status  *entity.OrderStatus
	Type    *entity.OrderType
	TableID *uint
	ChefID  *uint
	Limit   int
	Page    int
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, int64, error) {
	q := r.db.Model(&entity.Order{}).Where("is_active = ?", true)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.TableID != nil {
		q = q.Where("table_id = ?", *f.TableID)
	}
	if f.ChefID != nil {
		q = q.Where("chef_id = ?", *f.ChefID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}

	var orders []entity.Order
	err := q.Preload("Items").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Create inserts the order together with its line items.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(o).Error
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Omit("Items").Save(o).Error
}
