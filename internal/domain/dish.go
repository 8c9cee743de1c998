package domain

// Dish represents a menu item offered for order
type Dish struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // price in main currency units
	Image    string  `json:"img"`   // URL or relative path to the dish image
	Category string  `json:"category"`
}

// DishPatch is a partial update for a Dish. Nil fields are left
// untouched; set fields override the stored value.
type DishPatch struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Image    *string  `json:"img,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// Apply merges the patch into d, patch fields take precedence.
func (p DishPatch) Apply(d *Dish) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.Image != nil {
		d.Image = *p.Image
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
}
