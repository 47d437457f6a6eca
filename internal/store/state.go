// internal/store/state.go
package store

import (
	"encoding/json"
	"fmt"

	"github.com/shopledger/backend/internal/models"
)

// State is every collection of the shop. Settings stays nil until first read creates it.
type State struct {
	Catalogs []models.Catalog
	Products []models.Product
	Clients  []models.Client
	Orders   []models.Order
	Payments []models.PaymentTransaction
	Settings *models.ShopSettings
	Users    []models.User
	AuthLogs []models.AuthLog
}

func NewState() *State {
	return &State{
		Catalogs: []models.Catalog{},
		Products: []models.Product{},
		Clients:  []models.Client{},
		Orders:   []models.Order{},
		Payments: []models.PaymentTransaction{},
		Users:    []models.User{},
		AuthLogs: []models.AuthLog{},
	}
}

// Clone deep copies every collection.
func (s *State) Clone() *State {
	return s.CloneCollections(AllCollections...)
}

// CloneCollections deep copies the named collections. The others stay shared with s and must
// not be modified through the copy. With no names every collection is copied.
func (s *State) CloneCollections(collections ...Collection) *State {
	if len(collections) == 0 {
		collections = AllCollections
	}

	out := *s
	for _, c := range collections {
		switch c {
		case Catalogs:
			out.Catalogs = append([]models.Catalog{}, s.Catalogs...)
		case Clients:
			out.Clients = append([]models.Client{}, s.Clients...)
		case Users:
			out.Users = append([]models.User{}, s.Users...)
		case AuthLogs:
			out.AuthLogs = append([]models.AuthLog{}, s.AuthLogs...)
		case Products:
			out.Products = make([]models.Product, len(s.Products))
			for i, p := range s.Products {
				out.Products[i] = p.Clone()
			}
		case Orders:
			out.Orders = make([]models.Order, len(s.Orders))
			for i, o := range s.Orders {
				out.Orders[i] = o.Clone()
			}
		case Payments:
			out.Payments = make([]models.PaymentTransaction, len(s.Payments))
			for i, p := range s.Payments {
				p.Allocations = append([]models.PaymentAllocation(nil), p.Allocations...)
				out.Payments[i] = p
			}
		case Settings:
			if s.Settings != nil {
				settings := s.Settings.Clone()
				out.Settings = &settings
			}
		}
	}
	return &out
}

func (s *State) CatalogIndex(id string) int {
	for i := range s.Catalogs {
		if s.Catalogs[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) ProductIndex(id string) int {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) ClientIndex(id string) int {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) OrderIndex(id string) int {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) UserIndex(username string) int {
	for i := range s.Users {
		if s.Users[i].Username == username {
			return i
		}
	}
	return -1
}

func (s *State) encode(c Collection) ([]byte, error) {
	var v interface{}
	switch c {
	case Catalogs:
		v = s.Catalogs
	case Products:
		v = s.Products
	case Clients:
		v = s.Clients
	case Orders:
		v = s.Orders
	case Payments:
		v = s.Payments
	case Settings:
		v = s.Settings
	case Users:
		v = s.Users
	case AuthLogs:
		v = s.AuthLogs
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}
	return json.Marshal(v)
}

// decode replaces one collection from its stored form. Empty data leaves the collection empty.
func (s *State) decode(c Collection, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var target interface{}
	switch c {
	case Catalogs:
		target = &s.Catalogs
	case Products:
		target = &s.Products
	case Clients:
		target = &s.Clients
	case Orders:
		target = &s.Orders
	case Payments:
		target = &s.Payments
	case Settings:
		target = &s.Settings
	case Users:
		target = &s.Users
	case AuthLogs:
		target = &s.AuthLogs
	default:
		return fmt.Errorf("unknown collection %q", c)
	}
	return json.Unmarshal(data, target)
}
