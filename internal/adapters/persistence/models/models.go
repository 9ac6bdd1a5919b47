package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Identity Tables
// ============================================================

// User represents users table
// IsApproved has no column default so an explicit false is always written.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:256;not null" json:"email"`
	UserName     string    `gorm:"size:256;not null" json:"user_name"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	ClinicName   *string   `gorm:"size:200" json:"clinic_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsApproved   bool      `gorm:"not null" json:"is_approved"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Role represents roles table
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// UserRole maps a user to a role
type UserRole struct {
	UserID uint  `gorm:"primaryKey"`
	RoleID uint  `gorm:"primaryKey"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Role   *Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// ============================================================
// Clinic Tables
// ============================================================

// Owner represents owners table
type Owner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:256;not null" json:"email"`
	Address   *string   `gorm:"size:250" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Pets      []Pet     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Owner) TableName() string {
	return "owners"
}

// Pet represents pets table
type Pet struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"size:100;not null" json:"name"`
	Species         string     `gorm:"size:50;not null" json:"species"`
	Breed           *string    `gorm:"size:100" json:"breed"`
	Age             int        `gorm:"not null" json:"age"`
	Gender          string     `gorm:"size:10;not null" json:"gender"`
	Weight          float64    `gorm:"type:decimal(6,2);not null" json:"weight"`
	OwnerID         uint       `gorm:"index;not null" json:"owner_id"`
	LastCheckInDate *time.Time `json:"last_check_in_date"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Owner           *Owner     `gorm:"foreignKey:OwnerID" json:"-"`
	Visits          []Visit    `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pet) TableName() string {
	return "pets"
}

// Visit represents visits table
type Visit struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	PetID          uint        `gorm:"index;not null" json:"pet_id"`
	VeterinarianID uint        `gorm:"index;not null" json:"veterinarian_id"`
	VisitDate      time.Time   `gorm:"not null" json:"visit_date"`
	Complaint      *string     `gorm:"size:500" json:"complaint"`
	Notes          *string     `gorm:"size:1000" json:"notes"`
	Temperature    *float64    `gorm:"type:decimal(4,1)" json:"temperature"`
	Status         *string     `gorm:"size:20" json:"status"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`
	Pet            *Pet        `gorm:"foreignKey:PetID" json:"-"`
	Veterinarian   *User       `gorm:"foreignKey:VeterinarianID;constraint:OnDelete:RESTRICT" json:"-"`
	Diagnoses      []Diagnosis `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"-"`
	Treatments     []Treatment `gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Visit) TableName() string {
	return "visits"
}

// Diagnosis represents diagnoses table
type Diagnosis struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VisitID     uint      `gorm:"index;not null" json:"visit_id"`
	DiseaseName string    `gorm:"size:200;not null" json:"disease_name"`
	Description *string   `gorm:"size:1000" json:"description"`
	Severity    *string   `gorm:"size:20" json:"severity"`
	DiagnosedAt time.Time `gorm:"not null" json:"diagnosed_at"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}

// Treatment represents treatments table
type Treatment struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	VisitID       uint    `gorm:"index;not null" json:"visit_id"`
	TreatmentName string  `gorm:"size:200;not null" json:"treatment_name"`
	Medication    *string `gorm:"size:200" json:"medication"`
	Dosage        *string `gorm:"size:100" json:"dosage"`
	Instructions  *string `gorm:"size:500" json:"instructions"`
	Cost          float64 `gorm:"type:decimal(10,2);not null" json:"cost"`
}

func (Treatment) TableName() string {
	return "treatments"
}

// AutoMigrate runs auto migration for all models
// Parents are listed before children so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Role{},
		&UserRole{},
		&Owner{},
		&Pet{},
		&Visit{},
		&Diagnosis{},
		&Treatment{},
	)
}
