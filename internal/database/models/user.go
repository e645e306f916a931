package models

import (
	"time"
)

// User represents a trainer account that owns pokemons
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Pokemons []Pokemon `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"pokemons,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// OwnedPokemonIDs returns the catalog ids of the user's pokemons, in acquisition order
func (u *User) OwnedPokemonIDs() []int {
	ids := make([]int, 0, len(u.Pokemons))
	for _, p := range u.Pokemons {
		ids = append(ids, p.PokemonID)
	}
	return ids
}
