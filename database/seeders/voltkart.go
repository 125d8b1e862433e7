package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/auth"
	"github.com/shashiranjanraj/voltkart/pkg/money"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("catalog", SeedCatalog)
}

// SeedAdminUser creates the default admin account. Change the password
// right after the first login.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Username: "admin",
		Email:    "admin@voltkart.local",
		FullName: "Voltkart Admin",
		Role:     models.RoleAdmin,
		IsActive: true,
		Password: hash,
	}).Error
}

type seedProduct struct {
	name   string
	sku    string
	part   string
	price  string
	stock  int
	brand  string
	subcat string
	short  string
}

// SeedCatalog loads a small demo catalog of electrical components so the
// storefront has something to show on a fresh install.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := map[string]struct {
		subcategories []string
		brands        []string
		products      []seedProduct
	}{
		"Circuit Protection": {
			subcategories: []string{"MCBs", "RCCBs", "Fuses"},
			brands:        []string{"Havells", "Schneider"},
			products: []seedProduct{
				{"Havells 6A Single Pole MCB", "HAV-MCB-6A", "DHMGCSPF006", "245.00", 120, "Havells", "MCBs", "C-curve 6A MCB, 10kA breaking capacity"},
				{"Havells 32A Double Pole MCB", "HAV-MCB-32A", "DHMGCDPF032", "585.00", 80, "Havells", "MCBs", "C-curve 32A double pole MCB"},
				{"Schneider 40A RCCB 30mA", "SCH-RCCB-40", "A9R11240", "2149.00", 35, "Schneider", "RCCBs", "Acti9 residual current circuit breaker"},
			},
		},
		"Wires & Cables": {
			subcategories: []string{"House Wires", "Flexible Cables"},
			brands:        []string{"Polycab", "Finolex"},
			products: []seedProduct{
				{"Polycab 1.5 sqmm FR Wire 90m", "POL-FR-1.5", "PC-FR-15-90", "1620.00", 50, "Polycab", "House Wires", "Flame retardant copper wire, 90m coil"},
				{"Finolex 2.5 sqmm FR Wire 90m", "FIN-FR-2.5", "FLX-FR-25-90", "2490.00", 40, "Finolex", "House Wires", "Flame retardant copper wire, 90m coil"},
			},
		},
		"Switches & Sockets": {
			subcategories: []string{"Modular Switches", "Sockets"},
			brands:        []string{"Anchor", "Legrand"},
			products: []seedProduct{
				{"Anchor Roma 6A One Way Switch", "ANC-SW-6A", "21061", "38.00", 500, "Anchor", "Modular Switches", "Classic modular one way switch"},
				{"Legrand Mylinc 16A Socket", "LEG-SOC-16A", "675566", "112.00", 300, "Legrand", "Sockets", "16A 3-pin shuttered socket"},
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for categoryName, def := range catalog {
			category := models.Category{Name: categoryName}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}

			subcatIDs := make(map[string]uint, len(def.subcategories))
			for _, name := range def.subcategories {
				sub := models.Subcategory{CategoryID: category.ID, Name: name}
				if err := tx.Create(&sub).Error; err != nil {
					return err
				}
				subcatIDs[name] = sub.ID
			}

			brandIDs := make(map[string]uint, len(def.brands))
			for _, name := range def.brands {
				brand := models.Brand{CategoryID: category.ID, Name: name}
				if err := tx.Create(&brand).Error; err != nil {
					return err
				}
				brandIDs[name] = brand.ID
			}

			for _, p := range def.products {
				price, err := money.Parse(p.price)
				if err != nil {
					return err
				}

				subID := subcatIDs[p.subcat]
				brandID := brandIDs[p.brand]
				product := models.Product{
					CategoryID:    category.ID,
					SubcategoryID: &subID,
					BrandID:       &brandID,
					Name:          p.name,
					Slug:          services.Slugify(p.name),
					SKU:           p.sku,
					PartNumber:    p.part,
					Price:         price,
					Stock:         p.stock,
					IsInStock:     p.stock > 0,
					ShortDesc:     p.short,
					IsActive:      true,
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
