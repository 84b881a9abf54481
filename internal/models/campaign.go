package models

type Campaign struct {
	BaseModel
	SponsorID   string `gorm:"type:uuid;not null;index"`
	Name        string `gorm:"not null"`
	Description string
	StartDate   string
	EndDate     string
	Budget      float64
	Visibility  CampaignVisibility `gorm:"type:varchar(10);not null"`
	Goals       string
	Category    string
	Flagged     FlagStatus `gorm:"type:varchar(20);default:'Active'"`

	Sponsor    *Sponsor    `gorm:"foreignKey:SponsorID"`
	AdRequests []AdRequest `gorm:"foreignKey:CampaignID"`
}
