package models

import "time"

type Customer struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"not null"`
	Phone         string     `json:"phone" gorm:"not null"`
	Email         *string    `json:"email"`
	LoyaltyPoints int        `json:"loyaltyPoints" gorm:"default:0"`
	LastPurchase  *time.Time `json:"lastPurchase"`
	ShopID        *string    `json:"shopId"`
	CreatedAt     time.Time  `json:"createdAt"`
	Seq           int64      `json:"-" gorm:"index"` // insert sequence; drives list ordering
}

type InsertCustomer struct {
	Name          string     `json:"name" binding:"required"`
	Phone         string     `json:"phone" binding:"required"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	LoyaltyPoints *int       `json:"loyaltyPoints" binding:"omitempty,min=0"`
	LastPurchase  *time.Time `json:"lastPurchase"`
	ShopID        *string    `json:"shopId"`
}

func (in *InsertCustomer) Model() *Customer {
	customer := &Customer{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		LastPurchase: in.LastPurchase,
		ShopID:       in.ShopID,
	}
	if in.LoyaltyPoints != nil {
		customer.LoyaltyPoints = *in.LoyaltyPoints
	}
	return customer
}

type UpdateCustomer struct {
	Name          *string    `json:"name" binding:"omitempty,min=1"`
	Phone         *string    `json:"phone" binding:"omitempty,min=1"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	LoyaltyPoints *int       `json:"loyaltyPoints" binding:"omitempty,min=0"`
	LastPurchase  *time.Time `json:"lastPurchase"`
	ShopID        *string    `json:"shopId"`
}

func (p *UpdateCustomer) Apply(customer *Customer) {
	if p.Name != nil {
		customer.Name = *p.Name
	}
	if p.Phone != nil {
		customer.Phone = *p.Phone
	}
	if p.Email != nil {
		customer.Email = p.Email
	}
	if p.LoyaltyPoints != nil {
		customer.LoyaltyPoints = *p.LoyaltyPoints
	}
	if p.LastPurchase != nil {
		customer.LastPurchase = p.LastPurchase
	}
	if p.ShopID != nil {
		customer.ShopID = p.ShopID
	}
}
