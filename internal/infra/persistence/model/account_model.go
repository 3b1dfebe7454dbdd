// Package model holds the GORM persistence models. They mirror the tables
// created by the embedded migrations and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalModel mirrors the 'principals' table.
type PrincipalModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName            string    `gorm:"type:varchar(100);not null"`
	LastName             string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	IdentificationNumber string    `gorm:"type:varchar(32);not null"`
	PhoneNumber          string    `gorm:"type:varchar(32)"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}

// TeacherModel mirrors the 'teachers' table.
type TeacherModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName            string    `gorm:"type:varchar(100);not null"`
	LastName             string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	IdentificationNumber string    `gorm:"type:varchar(32);not null"`
	PhoneNumber          string    `gorm:"type:varchar(32)"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (TeacherModel) TableName() string {
	return "teachers"
}

// StudentModel mirrors the 'students' table. ClassID references classes.id.
type StudentModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName            string    `gorm:"type:varchar(100);not null"`
	LastName             string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	IdentificationNumber string    `gorm:"type:varchar(32);not null"`
	PhoneNumber          string    `gorm:"type:varchar(32)"`
	ClassID              uuid.UUID `gorm:"type:uuid;not null;index"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (StudentModel) TableName() string {
	return "students"
}

// ClassModel mirrors the 'classes' table. TeacherID references teachers.id and is unique.
type ClassModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClassName string    `gorm:"type:varchar(100);unique;not null"`
	TeacherID uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClassModel) TableName() string {
	return "classes"
}
