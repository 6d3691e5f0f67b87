package config

import "paytrack/models"

// AdminExists gates the one-time /api/setup endpoint: once any admin user
// is present, setup is permanently disabled.
func AdminExists() (bool, error) {
	var cnt int64
	err := DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&cnt).Error
	return cnt > 0, err
}
