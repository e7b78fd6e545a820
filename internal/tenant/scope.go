package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company. A blank company id matches nothing.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if companyID == "" {
			return db.Where("1 = 0")
		}
		return db.Where("company_id = ?", companyID)
	}
}
