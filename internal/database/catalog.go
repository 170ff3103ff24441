package database

import (
	"time"

	"go-invoice-pos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoadCatalog returns every product in catalog order. This is the snapshot
// handed to the session engine at startup.
func LoadCatalog(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceCatalog swaps the whole products table for a freshly imported set,
// inside one transaction so a failed import leaves the old catalog intact.
func ReplaceCatalog(db *gorm.DB, products []models.Product) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].ID = 0
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedClerk makes sure the shared clerk credential exists. The password is
// stored as a bcrypt hash; an existing user is left untouched.
func SeedClerk(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
	}).Error
}

// MarkLoggedIn persists the session flag with the login time.
func MarkLoggedIn(db *gorm.DB, username string) error {
	return db.Create(&models.LoginSession{
		Username:  username,
		Active:    true,
		LoginTime: time.Now(),
	}).Error
}

// ClearLoginFlag deactivates every persisted session flag. Called on logout.
func ClearLoginFlag(db *gorm.DB) error {
	return db.Model(&models.LoginSession{}).
		Where("active = ?", true).
		Update("active", false).Error
}
