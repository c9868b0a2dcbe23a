package model

import "time"

// Business is the tenant owning all records. One business per owner.
type Business struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Address   string    `json:"address,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessInput is the onboarding payload.
type BusinessInput struct {
	Name      string `json:"name"`
	GSTNumber string `json:"gst_number"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
