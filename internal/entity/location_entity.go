package entity

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	Id             uuid.UUID
	Name           string
	Address        string
	City           string
	State          string
	Zip            string
	Phone          string
	Email          string
	IsHeadquarters bool
	Lat            *float64
	Lng            *float64
	Published      bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
