package store

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Product is a catalog entry as served by the inventory API.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
}

// ProductInput is the body of create and update calls.
type ProductInput struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
}

// UnmarshalJSON accepts preco either as a JSON number or as a numeric
// string, which is how Postgres NUMERIC columns often come out of other
// backends.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int64           `json:"id"`
		Name        string          `json:"nome"`
		Description *string         `json:"descricao"`
		Price       json.RawMessage `json:"preco"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	price, err := decodePrice(raw.Price)
	if err != nil {
		return fmt.Errorf("product %d: %w", raw.ID, err)
	}

	p.ID = raw.ID
	p.Name = raw.Name
	p.Description = ""
	if raw.Description != nil {
		p.Description = *raw.Description
	}
	p.Price = price
	return nil
}

func decodePrice(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("invalid preco %s", raw)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid preco %q", s)
	}
	return n, nil
}

// Credentials identify an employee at login.
type Credentials struct {
	Code     string `json:"codigo"`
	Name     string `json:"nome"`
	Password string `json:"password"`
}

// Employee is the identity returned by a successful login.
type Employee struct {
	Code string `json:"codigo"`
	Name string `json:"nome"`
}

// LoginResult is the body of a successful login.
type LoginResult struct {
	Message  string   `json:"message"`
	Token    string   `json:"token"`
	Employee Employee `json:"funcionario"`
}
