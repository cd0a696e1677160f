package db_models

type User struct {
	BaseModel
	Username       string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FullName       string `gorm:"size:100" json:"full_name,omitempty"`
	HashedPassword string `gorm:"size:100;not null" json:"-"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser    bool   `gorm:"not null;default:false" json:"is_superuser"`
}
