package models

import "time"

// Banner is generated festival banner content. Immutable once saved.
type Banner struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Festival   *string   `json:"festival"` // diwali, holi, etc.
	Template   string    `json:"template" gorm:"not null"`
	CustomText *string   `json:"customText"`
	Colors     JSONMap   `json:"colors" gorm:"type:text"`
	ShopID     *string   `json:"shopId"`
	CreatedAt  time.Time `json:"createdAt"`
	Seq        int64     `json:"-" gorm:"index"` // insert sequence; drives list ordering
}

type InsertBanner struct {
	Title      string  `json:"title" binding:"required"`
	Festival   *string `json:"festival"`
	Template   string  `json:"template" binding:"required"`
	CustomText *string `json:"customText"`
	Colors     JSONMap `json:"colors"`
	ShopID     *string `json:"shopId"`
}

func (in *InsertBanner) Model() *Banner {
	banner := &Banner{
		Title:      in.Title,
		Festival:   in.Festival,
		Template:   in.Template,
		CustomText: in.CustomText,
		Colors:     in.Colors,
		ShopID:     in.ShopID,
	}
	if banner.Colors == nil {
		banner.Colors = JSONMap{}
	}
	return banner
}
