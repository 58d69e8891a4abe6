package models

import (
	"github.com/ims/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Firstname    string `gorm:"type:varchar(100);not null"`
	Surname      string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Active       bool   `gorm:"not null;default:true"`
	UserType     int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Firstname:    m.Firstname,
		Surname:      m.Surname,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		UserType:     identity.UserType(m.UserType),
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Firstname = u.Firstname
	m.Surname = u.Surname
	m.Email = u.Email
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.Active = u.Active
	m.UserType = int(u.UserType)
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
