package models

import "time"

// WhatsappMessage is a generated marketing message a shop chose to keep.
// Messages are immutable once saved; there is no update operation.
type WhatsappMessage struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Message   string    `json:"message" gorm:"not null"`
	Language  string    `json:"language" gorm:"not null"` // hinglish, hindi, english
	Occasion  *string   `json:"occasion"`                 // festival, sale, regular
	ShopType  string    `json:"shopType" gorm:"not null"`
	ShopID    *string   `json:"shopId"`
	CreatedAt time.Time `json:"createdAt"`
	Seq       int64     `json:"-" gorm:"index"` // insert sequence; drives list ordering
}

type MessageLanguage string

const (
	LanguageHinglish MessageLanguage = "hinglish"
	LanguageHindi    MessageLanguage = "hindi"
	LanguageEnglish  MessageLanguage = "english"
)

type InsertWhatsappMessage struct {
	Message  string  `json:"message" binding:"required"`
	Language string  `json:"language" binding:"omitempty,oneof=hinglish hindi english"`
	Occasion *string `json:"occasion"`
	ShopType string  `json:"shopType" binding:"required"`
	ShopID   *string `json:"shopId"`
}

func (in *InsertWhatsappMessage) Model() *WhatsappMessage {
	message := &WhatsappMessage{
		Message:  in.Message,
		Language: in.Language,
		Occasion: in.Occasion,
		ShopType: in.ShopType,
		ShopID:   in.ShopID,
	}
	if message.Language == "" {
		message.Language = string(LanguageHinglish)
	}
	return message
}
