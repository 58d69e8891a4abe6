package models

import (
	"github.com/ims/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(200)"`
	Phone     string `gorm:"type:varchar(50)"`
	Address   string `gorm:"type:text"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedBy uint   `gorm:"index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		Active:     m.Active,
		CreatedBy:  m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.Active = c.Active
	m.CreatedBy = c.CreatedBy
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	BaseModel
	Name          string `gorm:"type:varchar(100);not null"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Email         string `gorm:"type:varchar(200)"`
	Phone         string `gorm:"type:varchar(50)"`
	Address       string `gorm:"type:text"`
	Active        bool   `gorm:"not null;default:true;index"`
	CreatedBy     uint   `gorm:"index"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		Active:        m.Active,
		CreatedBy:     m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.ContactPerson = s.ContactPerson
	m.Email = s.Email
	m.Phone = s.Phone
	m.Address = s.Address
	m.Active = s.Active
	m.CreatedBy = s.CreatedBy
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}
