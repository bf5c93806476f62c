// internal/domain/client.go
package domain

// Client owns addresses, accounts and named exchange rates.
type Client struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name" validate:"required,max=256"` // Unique across clients
}

// NewClient creates an empty Client ready to be decoded into.
func NewClient() *Client {
	return &Client{}
}

func (c *Client) DataDict() map[string]any {
	return map[string]any{
		"id":   c.ID,
		"name": c.Name,
	}
}

// Unit is a unit of value (a currency, a commodity, hours...).
type Unit struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name" validate:"required,max=256"`
}

func NewUnit() *Unit {
	return &Unit{}
}

func (u *Unit) DataDict() map[string]any {
	return map[string]any{
		"id":   u.ID,
		"name": u.Name,
	}
}

// Address is a globally unique payment address belonging to a client.
type Address struct {
	ID       int64   `db:"id" json:"id"`
	Address  string  `db:"address" json:"address" validate:"required,max=256"`
	Owner    *string `db:"owner" json:"owner" validate:"omitempty,max=256"`
	ClientID int64   `db:"client_id" json:"client_id" validate:"gt=0"`
}

func NewAddress() *Address {
	return &Address{}
}

func (a *Address) DataDict() map[string]any {
	return map[string]any{
		"id":        a.ID,
		"address":   a.Address,
		"owner":     stringOrNil(a.Owner),
		"client_id": a.ClientID,
	}
}
