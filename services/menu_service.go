package services

import (
	"errors"
	"time"

	"dineboard/entity"
	"dineboard/pkg/apperr"
	"dineboard/repository"

	"gorm.io/gorm"
)

// Catalog is the lookup surface the Order Ledger prices against.
type Catalog interface {
	Lookup(menuItemID uint) (*entity.MenuItem, error)
	RecordOrder(tx *gorm.DB, menuItemID uint, qty int, at time.Time) error
}

// MenuService owns the restaurant catalog and implements Catalog.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	Name               string              `json:"name" binding:"required"`
	Description        string              `json:"description"`
	Price              float64             `json:"price" binding:"required,gt=0"`
	Category           entity.MenuCategory `json:"category" binding:"required"`
	IsAvailable        *bool               `json:"isAvailable"`
	AvailableFrom      string              `json:"availableFrom"`
	AvailableUntil     string              `json:"availableUntil"`
	PreparationMinutes int                 `json:"preparationMinutes"`
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if !in.Category.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid category %q", in.Category)
	}
	item := entity.MenuItem{
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		IsAvailable:    true,
		AvailableFrom:  in.AvailableFrom,
		AvailableUntil: in.AvailableUntil,
		IsActive:       true,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.PreparationMinutes > 0 {
		item.PreparationMinutes = in.PreparationMinutes
	} else {
		item.PreparationMinutes = 15
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !in.Category.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid category %q", in.Category)
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.AvailableFrom = in.AvailableFrom
	item.AvailableUntil = in.AvailableUntil
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.PreparationMinutes > 0 {
		item.PreparationMinutes = in.PreparationMinutes
	}
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrNotFound, "menu item %d", id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) List(category *entity.MenuCategory) ([]entity.MenuItem, error) {
	if category != nil && !category.Valid() {
		return nil, apperr.Wrap(apperr.ErrValidation, "invalid category %q", *category)
	}
	return s.Repo.List(category)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) Lookup(menuItemID uint) (*entity.MenuItem, error) {
	return s.Get(menuItemID)
}

func (s *MenuService) RecordOrder(tx *gorm.DB, menuItemID uint, qty int, at time.Time) error {
	return s.Repo.RecordOrder(tx, menuItemID, qty, at)
}
