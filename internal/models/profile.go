package models

// Sponsor is the role profile for sponsor users, keyed 1:1 to User.
type Sponsor struct {
	UserID      string `gorm:"type:uuid;primaryKey"`
	Industry    string
	SponsorType string

	User      *User      `gorm:"foreignKey:UserID"`
	Campaigns []Campaign `gorm:"foreignKey:SponsorID"`
}

// ProfileComplete reports whether the fixed field set required before
// campaign/dashboard actions is populated.
func (s *Sponsor) ProfileComplete() bool {
	return s != nil && s.Industry != "" && s.SponsorType != ""
}

// Influencer is the role profile for influencer users, keyed 1:1 to User.
type Influencer struct {
	UserID    string `gorm:"type:uuid;primaryKey"`
	Category  string
	Expertise string
	Reach     int64

	User       *User       `gorm:"foreignKey:UserID"`
	AdRequests []AdRequest `gorm:"foreignKey:InfluencerID"`
}

func (i *Influencer) ProfileComplete() bool {
	return i != nil && i.Category != "" && i.Expertise != "" && i.Reach > 0
}
