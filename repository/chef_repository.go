package repository

import (
	"dineboard/entity"

	"gorm.io/gorm"
)

type ChefRepository struct {
	db *gorm.DB
}

func NewChefRepository(db *gorm.DB) *ChefRepository {
	return &ChefRepository{db: db}
}

func (r *ChefRepository) GetByID(id uint) (*entity.Chef, error) {
	var c entity.Chef
	if err := r.db.Preload("Assignments").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChefRepository) GetByEmail(email string) (*entity.Chef, error) {
	var c entity.Chef
	if err := r.db.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChefRepository) List(status *entity.ChefStatus) ([]entity.Chef, error) {
	q := r.db.Preload("Assignments")
	if status != nil {
		q = q.Where("current_status = ?", *status)
	}
	var chefs []entity.Chef
	if err := q.Order("name").Find(&chefs).Error; err != nil {
		return nil, err
	}
	return chefs, nil
}

// ListAvailable returns employment-active chefs whose status is available,
// with assignments preloaded so the caller can rank by workload.
func (r *ChefRepository) ListAvailable() ([]entity.Chef, error) {
	var chefs []entity.Chef
	err := r.db.Preload("Assignments").
		Where("current_status = ? AND is_active = ?", entity.ChefAvailable, true).
		Find(&chefs).Error
	if err != nil {
		return nil, err
	}
	return chefs, nil
}

func (r *ChefRepository) Create(c *entity.Chef) error {
	return r.db.Create(c).Error
}

func (r *ChefRepository) Save(tx *gorm.DB, c *entity.Chef) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Omit("Assignments").Save(c).Error
}

func (r *ChefRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Chef{}, id).Error
}

func (r *ChefRepository) CreateAssignment(tx *gorm.DB, a *entity.ChefAssignment) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(a).Error
}

// DeleteAssignment removes the assignment row for (chefID, orderID) and
// reports how many rows matched; zero is not an error.
func (r *ChefRepository) DeleteAssignment(tx *gorm.DB, chefID, orderID uint) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.Where("chef_id = ? AND order_id = ?", chefID, orderID).
		Delete(&entity.ChefAssignment{})
	return res.RowsAffected, res.Error
}

func (r *ChefRepository) CountAssignments(chefID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entity.ChefAssignment{}).Where("chef_id = ?", chefID).Count(&n).Error
	return n, err
}
