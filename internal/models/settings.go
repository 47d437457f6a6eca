// internal/models/settings.go
package models

import "time"

type PaybillAccount struct {
	Paybill string `json:"paybill"`
	Account string `json:"account"`
}

// ShopSettings is a singleton record
type ShopSettings struct {
	BusinessName   string         `json:"business_name"`
	ContactNumbers []string       `json:"contact_numbers"`
	LogoURL        string         `json:"logo_url,omitempty"`
	FobAccount     PaybillAccount `json:"fob_account"`
	FreightAccount PaybillAccount `json:"freight_account"`
	Theme          string         `json:"theme"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		BusinessName:   "My Shop",
		ContactNumbers: []string{},
		Theme:          "light",
		UpdatedAt:      time.Now(),
	}
}

func (s ShopSettings) Clone() ShopSettings {
	out := s
	out.ContactNumbers = append([]string(nil), s.ContactNumbers...)
	return out
}
