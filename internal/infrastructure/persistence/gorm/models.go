// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for user profiles
type UserModel struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name              string    `gorm:"type:varchar(255);not null"`
	MeasurementSystem string    `gorm:"type:varchar(20);default:'metric'"`
	DefaultServings   int       `gorm:"default:4"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Relationships
	Recipes []RecipeModel `gorm:"foreignKey:AuthorID"`
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Version     int64     `gorm:"default:1"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	AuthorID    uuid.UUID `gorm:"type:char(36);not null;index"`

	// Amounts are correct for this serving count
	Servings    int             `gorm:"default:1"`
	Ingredients IngredientsJSON `gorm:"type:json"`
	Tags        StringSlice     `gorm:"type:json"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	Author UserModel `gorm:"foreignKey:AuthorID"`
}

// IngredientRecord is the JSON shape of one stored ingredient. Amount stays
// a pointer so unmeasured "to taste" entries survive the round trip as null.
type IngredientRecord struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Amount *float64  `json:"amount"`
	Unit   string    `json:"unit,omitempty"`
	Notes  string    `json:"notes,omitempty"`
}

// IngredientsJSON custom type for storing the ingredient list as JSON
type IngredientsJSON []IngredientRecord

// Scan implements the sql.Scanner interface
func (i *IngredientsJSON) Scan(value interface{}) error {
	if value == nil {
		*i = IngredientsJSON{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into IngredientsJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (i IngredientsJSON) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (RecipeModel) TableName() string {
	return "recipes"
}
