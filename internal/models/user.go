package models

type User struct {
	BaseModel
	Username     string     `gorm:"uniqueIndex;not null"`
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Flagged      FlagStatus `gorm:"type:varchar(20)"`

	// Relations
	Sponsor    *Sponsor    `gorm:"foreignKey:UserID"`
	Influencer *Influencer `gorm:"foreignKey:UserID"`
}

// ApprovedForLogin reports whether a sponsor/influencer account has been
// activated by the admin. Admin accounts are never gated.
func (u *User) ApprovedForLogin() bool {
	if u.Role == UserRoleAdmin {
		return true
	}
	return u.Flagged == FlagStatusActive
}
