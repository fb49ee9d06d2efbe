package entity

type ChefPosition string

const (
	HeadChef   ChefPosition = "head-chef"
	SousChef   ChefPosition = "sous-chef"
	LineCook   ChefPosition = "line-cook"
	PrepCook   ChefPosition = "prep-cook"
	PastryChef ChefPosition = "pastry-chef"
)

func (p ChefPosition) Valid() bool {
	switch p {
	case HeadChef, SousChef, LineCook, PrepCook, PastryChef:
		return true
	}
	return false
}
