package repository

import (
	"dineboard/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) GetByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) GetByNumber(number string) (*entity.Table, error) {
	var t entity.Table
	if err := r.db.Where("table_number = ?", number).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) List(status *entity.TableStatus) ([]entity.Table, error) {
	q := r.db.Where("is_active = ?", true)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var tables []entity.Table
	if err := q.Order("table_number").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.db.Create(t).Error
}

func (r *TableRepository) Save(tx *gorm.DB, t *entity.Table) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Table{}, id).Error
}
