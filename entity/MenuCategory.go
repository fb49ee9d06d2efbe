package entity

type MenuCategory string

const (
	CategoryBurger  MenuCategory = "burger"
	CategoryPizza   MenuCategory = "pizza"
	CategoryDrink   MenuCategory = "drink"
	CategoryFries   MenuCategory = "fries"
	CategoryVeggies MenuCategory = "veggies"
	CategoryDessert MenuCategory = "dessert"
	CategoryOther   MenuCategory = "other"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryBurger, CategoryPizza, CategoryDrink, CategoryFries,
		CategoryVeggies, CategoryDessert, CategoryOther:
		return true
	}
	return false
}
