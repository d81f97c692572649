package domain

// User Model
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`            // Primary key
	Username string   `gorm:"unique;not null" json:"username"` // Unique username
	Password string   `gorm:"not null" json:"-"`               // Hashed password, never serialized
	Points   *float64 `json:"points"`                          // Tracked points, null until first set
	IsAdmin  bool     `gorm:"default:false" json:"isAdmin"`    // Admin flag
}
