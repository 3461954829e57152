package models

import "time"

// Organization - приют (тенант). ID организации используется как tenant_id.
type Organization struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Mission         string     `json:"mission" db:"mission"`
	Location        string     `json:"location" db:"location"`
	Goals           []string   `json:"goals" db:"goals"`
	DonateURL       string     `json:"donate_url" db:"donate_url"`
	ContactEmail    string     `json:"contact_email" db:"contact_email"`
	Phone           string     `json:"phone" db:"phone"`
	Address         string     `json:"address" db:"address"`
	TaxID           string     `json:"tax_id" db:"tax_id"`
	SitePublishedAt *time.Time `json:"site_published_at,omitempty" db:"site_published_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// AnimalStatusAvailable - статус животного, готового к пристройству.
const AnimalStatusAvailable = "available"

// Animal - животное приюта. Для генерации важен только счетчик доступных.
type Animal struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenant_id" db:"tenant_id"`
	Name      string    `json:"name" db:"name"`
	Species   string    `json:"species" db:"species"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
