package models

import "time"

type Shop struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"` // kirana, electronics, boutique, etc.
	OwnerName string    `json:"ownerName" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Address   string    `json:"address" gorm:"not null"`
	Language  string    `json:"language" gorm:"not null"` // en, hi
	UserID    *string   `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type ShopLanguage string

const (
	ShopLanguageEnglish ShopLanguage = "en"
	ShopLanguageHindi   ShopLanguage = "hi"
)

type InsertShop struct {
	Name      string  `json:"name" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	OwnerName string  `json:"ownerName" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Language  string  `json:"language" binding:"omitempty,oneof=en hi"`
	UserID    *string `json:"userId"`
}

func (in *InsertShop) Model() *Shop {
	shop := &Shop{
		Name:      in.Name,
		Type:      in.Type,
		OwnerName: in.OwnerName,
		Phone:     in.Phone,
		Address:   in.Address,
		Language:  in.Language,
		UserID:    in.UserID,
	}
	if shop.Language == "" {
		shop.Language = string(ShopLanguageEnglish)
	}
	return shop
}

type UpdateShop struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Type      *string `json:"type" binding:"omitempty,min=1"`
	OwnerName *string `json:"ownerName" binding:"omitempty,min=1"`
	Phone     *string `json:"phone" binding:"omitempty,min=1"`
	Address   *string `json:"address" binding:"omitempty,min=1"`
	Language  *string `json:"language" binding:"omitempty,oneof=en hi"`
	UserID    *string `json:"userId"`
}

// Apply merges the set fields onto the shop. ID and CreatedAt are never touched.
func (p *UpdateShop) Apply(shop *Shop) {
	if p.Name != nil {
		shop.Name = *p.Name
	}
	if p.Type != nil {
		shop.Type = *p.Type
	}
	if p.OwnerName != nil {
		shop.OwnerName = *p.OwnerName
	}
	if p.Phone != nil {
		shop.Phone = *p.Phone
	}
	if p.Address != nil {
		shop.Address = *p.Address
	}
	if p.Language != nil {
		shop.Language = *p.Language
	}
	if p.UserID != nil {
		shop.UserID = p.UserID
	}
}
