package configs

import (
	"encoding/json"
	"log"
	"time"

	"dineboard/entity"
)

// SeedDemoData loads a small demo dataset for local dashboards. Idempotent:
// it does nothing once any menu item exists.
func SeedDemoData() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	menu := []entity.MenuItem{
		{Name: "Classic Beef Burger", Price: 250, Category: entity.CategoryBurger, IsAvailable: true, PreparationMinutes: 15, IsActive: true},
		{Name: "Chicken Deluxe Burger", Price: 220, Category: entity.CategoryBurger, IsAvailable: true, PreparationMinutes: 15, IsActive: true},
		{Name: "Margherita", Price: 180, Category: entity.CategoryPizza, IsAvailable: true, PreparationMinutes: 20, IsActive: true},
		{Name: "Pepperoni", Price: 220, Category: entity.CategoryPizza, IsAvailable: true, PreparationMinutes: 20, IsActive: true},
		{Name: "Coca Cola", Price: 60, Category: entity.CategoryDrink, IsAvailable: true, PreparationMinutes: 2, IsActive: true},
		{Name: "Fresh Orange Juice", Price: 80, Category: entity.CategoryDrink, IsAvailable: true, PreparationMinutes: 5, IsActive: true},
		{Name: "French Fries", Price: 100, Category: entity.CategoryFries, IsAvailable: true, PreparationMinutes: 8, IsActive: true},
		{Name: "Chocolate Brownie", Price: 120, Category: entity.CategoryDessert, IsAvailable: true, PreparationMinutes: 10, IsActive: true},
	}
	if err := db.Create(&menu).Error; err != nil {
		return err
	}

	tables := make([]entity.Table, 0, 6)
	for _, n := range []string{"T1", "T2", "T3", "T4", "T5", "T6"} {
		tables = append(tables, entity.Table{
			TableNumber: n,
			Name:        "Table " + n,
			Chairs:      4,
			Status:      entity.TableAvailable,
			IsActive:    true,
		})
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	chefs := []entity.Chef{
		{Name: "Marco Rossi", Email: "marco@dineboard.local", Phone: "555-0101", Position: entity.HeadChef, Shift: entity.ShiftFullTime, CurrentStatus: entity.ChefAvailable, MaxConcurrentOrders: 4, RatingAvg: 4.8, RatingCount: 95, HiredAt: &now, IsActive: true},
		{Name: "Aisha Khan", Email: "aisha@dineboard.local", Phone: "555-0102", Position: entity.SousChef, Shift: entity.ShiftEvening, CurrentStatus: entity.ChefAvailable, MaxConcurrentOrders: 3, RatingAvg: 4.6, RatingCount: 72, HiredAt: &now, IsActive: true},
		{Name: "Tom Becker", Email: "tom@dineboard.local", Phone: "555-0103", Position: entity.LineCook, Shift: entity.ShiftMorning, CurrentStatus: entity.ChefAvailable, MaxConcurrentOrders: 3, RatingAvg: 4.4, RatingCount: 64, HiredAt: &now, IsActive: true},
	}
	specialties := [][]entity.MenuCategory{
		{entity.CategoryPizza, entity.CategoryBurger},
		{entity.CategoryBurger, entity.CategoryFries},
		{entity.CategoryDrink, entity.CategoryDessert},
	}
	for i := range chefs {
		raw, err := json.Marshal(specialties[i])
		if err != nil {
			return err
		}
		chefs[i].Specialties = raw
	}
	if err := db.Create(&chefs).Error; err != nil {
		return err
	}

	log.Printf("seeded %d menu items, %d tables, %d chefs", len(menu), len(tables), len(chefs))
	return nil
}
