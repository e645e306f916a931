package models

import (
	"time"
)

// Pokemon records that a user owns a pokemon from the external catalog.
// PokemonID is the catalog id; Name is a snapshot of the catalog name taken
// when the pokemon was added. A user cannot own the same catalog id twice,
// enforced by the composite unique index.
type Pokemon struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PokemonID int       `gorm:"not null;uniqueIndex:idx_user_pokemon,priority:2" json:"pokemon_id"`
	Name      string    `gorm:"not null" json:"name"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_pokemon,priority:1" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name
func (Pokemon) TableName() string {
	return "pokemons"
}
