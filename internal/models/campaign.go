package models

import "time"

type Campaign struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description"`
	Type        string     `json:"type" gorm:"not null"` // whatsapp, banner, social, loyalty
	Content     JSONMap    `json:"content" gorm:"type:text"`
	Status      string     `json:"status" gorm:"not null"` // draft, active, completed
	ScheduledAt *time.Time `json:"scheduledAt"`
	Views       int        `json:"views" gorm:"default:0"`
	Clicks      int        `json:"clicks" gorm:"default:0"`
	ShopID      *string    `json:"shopId"`
	CreatedAt   time.Time  `json:"createdAt"`
	Seq         int64      `json:"-" gorm:"index"` // insert sequence; drives list ordering
}

type CampaignType string

const (
	CampaignWhatsApp CampaignType = "whatsapp"
	CampaignBanner   CampaignType = "banner"
	CampaignSocial   CampaignType = "social"
	CampaignLoyalty  CampaignType = "loyalty"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

type InsertCampaign struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Type        string     `json:"type" binding:"required,oneof=whatsapp banner social loyalty"`
	Content     JSONMap    `json:"content"`
	Status      string     `json:"status" binding:"omitempty,oneof=draft active completed"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Views       *int       `json:"views" binding:"omitempty,min=0"`
	Clicks      *int       `json:"clicks" binding:"omitempty,min=0"`
	ShopID      *string    `json:"shopId"`
}

func (in *InsertCampaign) Model() *Campaign {
	campaign := &Campaign{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Content:     in.Content,
		Status:      in.Status,
		ScheduledAt: in.ScheduledAt,
		ShopID:      in.ShopID,
	}
	if campaign.Status == "" {
		campaign.Status = string(CampaignDraft)
	}
	if campaign.Content == nil {
		campaign.Content = JSONMap{}
	}
	if in.Views != nil {
		campaign.Views = *in.Views
	}
	if in.Clicks != nil {
		campaign.Clicks = *in.Clicks
	}
	return campaign
}

type UpdateCampaign struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Type        *string    `json:"type" binding:"omitempty,oneof=whatsapp banner social loyalty"`
	Content     JSONMap    `json:"content"`
	Status      *string    `json:"status" binding:"omitempty,oneof=draft active completed"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Views       *int       `json:"views" binding:"omitempty,min=0"`
	Clicks      *int       `json:"clicks" binding:"omitempty,min=0"`
	ShopID      *string    `json:"shopId"`
}

func (p *UpdateCampaign) Apply(campaign *Campaign) {
	if p.Title != nil {
		campaign.Title = *p.Title
	}
	if p.Description != nil {
		campaign.Description = p.Description
	}
	if p.Type != nil {
		campaign.Type = *p.Type
	}
	if p.Content != nil {
		campaign.Content = p.Content
	}
	if p.Status != nil {
		campaign.Status = *p.Status
	}
	if p.ScheduledAt != nil {
		campaign.ScheduledAt = p.ScheduledAt
	}
	if p.Views != nil {
		campaign.Views = *p.Views
	}
	if p.Clicks != nil {
		campaign.Clicks = *p.Clicks
	}
	if p.ShopID != nil {
		campaign.ShopID = p.ShopID
	}
}
