package store

import (
	"go.uber.org/zap"

	"github.com/talkincode/foodking/internal/domain"
)

// seedDefaults writes a default document for every absent domain key.
// Existing documents are never overwritten.
func (s *Store) seedDefaults() error {
	defaults := map[string]interface{}{
		domain.KeyOrders:     []domain.Order{},
		domain.KeyFavorites:  []domain.FavoriteEntry{},
		domain.KeyDishes:     DefaultDishes(),
		domain.KeyCategories: DefaultCategories(),
		domain.KeySettings:   DefaultSettings(),
	}
	for _, key := range domain.DataKeys {
		found, err := s.has(key)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		if err := s.Write(key, defaults[key]); err != nil {
			return err
		}
		zap.L().Info("seeded default document", zap.String("key", key))
	}
	return nil
}

// DefaultSettings returns the initial preferences record.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		Theme:         "light",
		Currency:      "₹",
		Language:      "en",
		Notifications: true,
		AutoSave:      true,
	}
}

// DefaultCategories returns the initial category set.
func DefaultCategories() []string {
	return []string{
		"North Indian", "South Indian", "Biryani", "Seafood", "Snacks",
		"Street Food", "Maharashtrian", "Chinese", "Soups", "Gujrati",
		"Rice", "Mughlai", "surati", "Ice-cream",
	}
}

// DefaultDishes returns the built-in menu catalog.
func DefaultDishes() []domain.Dish {
	return []domain.Dish{
		{ID: 1, Name: "Paneer Butter Masala", Price: 220, Image: "images/paneer-butter-masala.jpg", Category: "North Indian"},
		{ID: 2, Name: "Chole Bhature", Price: 150, Image: "images/Chole+Bhature.jpg", Category: "North Indian"},
		{ID: 3, Name: "Masala Dosa", Price: 120, Image: "images/Masala+Dosa.jpg", Category: "South Indian"},
		{ID: 4, Name: "Butter Naan", Price: 40, Image: "images/Butter+Naan.jpg", Category: "North Indian"},
		{ID: 5, Name: "Dal Makhani", Price: 180, Image: "images/Dal+Makhani.jpg", Category: "North Indian"},
		{ID: 6, Name: "Veg Biryani", Price: 200, Image: "images/Veg+Biryani.jpg", Category: "Biryani"},
		{ID: 7, Name: "Egg Biryani", Price: 240, Image: "images/Egg+Biryani.jpg", Category: "Biryani"},
		{ID: 8, Name: "Chicken Biryani", Price: 300, Image: "images/Chicken+Biryani.jpg", Category: "Biryani"},
		{ID: 9, Name: "Fish Curry", Price: 280, Image: "images/Fish+Curry.jpg", Category: "Seafood"},
		{ID: 10, Name: "Prawn Masala", Price: 350, Image: "images/Prawn+Masala.jpg", Category: "Seafood"},
		{ID: 11, Name: "Samosa", Price: 30, Image: "images/Samosa.jpg", Category: "Snacks"},
		{ID: 12, Name: "Aloo Tikki", Price: 50, Image: "images/Aloo+Tikki.jpg", Category: "Snacks"},
		{ID: 13, Name: "Pav Bhaji", Price: 100, Image: "images/Pav+Bhaji.jpg", Category: "Street Food"},
		{ID: 14, Name: "Vada Pav", Price: 40, Image: "images/Vada+Pav.jpg", Category: "Street Food"},
		{ID: 15, Name: "Idli Sambhar", Price: 80, Image: "images/Idli+Sambhar.jpg", Category: "South Indian"},
		{ID: 16, Name: "Medu Vada", Price: 70, Image: "images/Medu+Vada.jpg", Category: "South Indian"},
		{ID: 17, Name: "Rava Upma", Price: 90, Image: "images/Rava+Upma.jpg", Category: "South Indian"},
		{ID: 18, Name: "Misal Pav", Price: 110, Image: "images/Misal+Pav.jpg", Category: "Maharashtrian"},
		{ID: 19, Name: "Pani Puri", Price: 60, Image: "images/Pani+Puri.jpg", Category: "Street Food"},
		{ID: 20, Name: "Dahi Puri", Price: 70, Image: "images/Dahi+Puri.jpg", Category: "Street Food"},
		{ID: 21, Name: "Rajma Chawal", Price: 150, Image: "images/Rajma+Chawal.jpg", Category: "North Indian"},
		{ID: 22, Name: "Baingan Bharta", Price: 160, Image: "images/Baingan+Bharta.jpg", Category: "North Indian"},
		{ID: 23, Name: "Kadai Paneer", Price: 200, Image: "images/Kadai+Paneer.jpg", Category: "North Indian"},
		{ID: 24, Name: "Matar Paneer", Price: 190, Image: "images/Matar+Paneer.jpg", Category: "North Indian"},
		{ID: 25, Name: "Shahi Paneer", Price: 210, Image: "images/Shahi+Paneer.jpg", Category: "North Indian"},
		{ID: 26, Name: "Gobi Manchurian", Price: 170, Image: "images/Gobi+Manchurian.jpg", Category: "Chinese"},
		{ID: 27, Name: "Chilli Paneer", Price: 180, Image: "images/Chilli+Paneer.jpg", Category: "Chinese"},
		{ID: 28, Name: "Hakka Noodles", Price: 160, Image: "images/Hakka+Noodles.jpg", Category: "Chinese"},
		{ID: 29, Name: "Spring Rolls", Price: 140, Image: "images/Spring+Rolls.jpg", Category: "Chinese"},
		{ID: 30, Name: "Panipuri", Price: 120, Image: "image/panipuri.jpg", Category: "Chinese"},
		{ID: 31, Name: "Dal Makhani", Price: 100, Image: "image/Dal Makhani.jpg", Category: "Soups"},
		{ID: 32, Name: "Mendul Wada", Price: 110, Image: "image/mendul wada.jpg", Category: "Soups"},
		{ID: 33, Name: "Bread Pakoda", Price: 120, Image: "image/bread pakora.jpeg", Category: "Soups"},
		{ID: 34, Name: "Franki", Price: 130, Image: "image/franki.jpg", Category: "Chinese"},
		{ID: 35, Name: "Chana Masala", Price: 150, Image: "image/Chana Masala.jpg", Category: "North Indian"},
		{ID: 36, Name: "Jalebi Fafada", Price: 140, Image: "image/Jalebi fafada.jpeg", Category: "Gujrati"},
		{ID: 37, Name: "Cutlet", Price: 160, Image: "image/cutlet.jpg", Category: "North Indian"},
		{ID: 38, Name: "Naan", Price: 180, Image: "image/Naan.jpg", Category: "Rice"},
		{ID: 39, Name: "Paratha", Price: 200, Image: "image/paratha.jpg", Category: "Rice"},
		{ID: 40, Name: "Puff", Price: 170, Image: "image/Puff.jpeg", Category: "Chinese"},
		{ID: 41, Name: "Kulfi", Price: 190, Image: "image/Kulfi.jpg", Category: "Chinese"},
		{ID: 42, Name: "Sweet White Jamun", Price: 320, Image: "image/rasgulla.jpg", Category: "Mughlai"},
		{ID: 43, Name: "Ras Malai", Price: 330, Image: "image/Rasmalai.jpg", Category: "Mughlai"},
		{ID: 44, Name: "Khaman", Price: 300, Image: "image/Khaman.jpg", Category: "surati"},
		{ID: 45, Name: "Manchuriyan", Price: 300, Image: "image/Manchuriyan.jpg", Category: "Chinese"},
		{ID: 46, Name: "Lassi", Price: 300, Image: "image/Lassi.jpg", Category: "Chinese"},
		{ID: 47, Name: "Gulab Jamun", Price: 300, Image: "image/Gulab jamun.jpg", Category: "Chinese"},
		{ID: 48, Name: "Barfi", Price: 300, Image: "image/Barfi.jpg", Category: "Chinese"},
		{ID: 49, Name: "Momos", Price: 300, Image: "image/momos.jpeg", Category: "Chinese"},
		{ID: 50, Name: "Garlic-Bread", Price: 300, Image: "image/Garlic.jpg", Category: "Chinese"},
		{ID: 51, Name: "Chaat", Price: 300, Image: "image/Chaat.jpg", Category: "Chinese"},
		{ID: 52, Name: "Chocalate Ice-Cream", Price: 280, Image: "image/chocalateice.jpg", Category: "Ice-cream"},
		{ID: 53, Name: "Vanila Ice-Cream", Price: 150, Image: "image/vanila.jpg", Category: "Ice-cream"},
		{ID: 54, Name: "Stobery Ice-Cream", Price: 330, Image: "image/stobaryice.jpg", Category: "Ice-cream"},
	}
}
