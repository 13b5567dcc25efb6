package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Farmer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"full_name" json:"fullName"`
	CPF       string             `bson:"cpf" json:"cpf"` // armazenado normalizado (apenas dígitos)
	BirthDate *time.Time         `bson:"birth_date,omitempty" json:"birthDate,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
