// internal/models/client.go
package models

type Client struct {
	BaseModel
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}
