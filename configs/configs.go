package configs

import (
	"chefsystem.pl/configs/configsdatabase"

	"gorm.io/gorm"
)

// GetDB fasada na połączenie z bazą, używana przez repozytoria i serwisy.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
