package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// SectionType - тип секции страницы. Набор значений закрыт.
type SectionType string

const (
	SectionHeader       SectionType = "header"
	SectionHero         SectionType = "hero"
	SectionValueProps   SectionType = "value-props"
	SectionAbout        SectionType = "about"
	SectionGridAnimals  SectionType = "grid-animals"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionFAQ          SectionType = "faq"
	SectionContact      SectionType = "contact"
	SectionFooter       SectionType = "footer"
)

// MaxSectionsPerPage - ограничение схемы плана на количество секций страницы.
const MaxSectionsPerPage = 6

// AllSectionTypes возвращает все типы секций в каноническом порядке.
func AllSectionTypes() []SectionType {
	return []SectionType{
		SectionHeader,
		SectionHero,
		SectionValueProps,
		SectionAbout,
		SectionGridAnimals,
		SectionTestimonials,
		SectionCTA,
		SectionFAQ,
		SectionContact,
		SectionFooter,
	}
}

// IsValid сообщает, входит ли тип в закрытый набор.
func (t SectionType) IsValid() bool {
	for _, known := range AllSectionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

func (t SectionType) String() string {
	return string(t)
}

// SitePlan - сгенерированный скелет сайта: страницы и типы секций без текста.
type SitePlan struct {
	Pages []PlanPage `json:"pages" validate:"required,min=1,max=12,dive"`
}

// PlanPage - страница плана.
type PlanPage struct {
	Key      string        `json:"key" validate:"required,max=40"`
	Title    string        `json:"title" validate:"required,max=80,nomarkup"`
	Path     string        `json:"path" validate:"required,startswith=/,max=120"`
	Sections []SectionType `json:"sections" validate:"required,min=1,max=6,dive,oneof=header hero value-props about grid-animals testimonials cta faq contact footer"`
}

// Page - сохраненная страница сайта тенанта.
type Page struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenant_id" db:"tenant_id"`
	Key       string    `json:"key" db:"key"`
	Title     string    `json:"title" db:"title"`
	Path      string    `json:"path" db:"path"`
	SortIndex int       `json:"sort_index" db:"sort_index"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Section - сохраненная секция страницы. Пустой Content означает "оболочку",
// ожидающую генерации текста.
type Section struct {
	ID        int64           `json:"id" db:"id"`
	TenantID  int64           `json:"tenant_id" db:"tenant_id"`
	PageID    int64           `json:"page_id" db:"page_id"`
	Type      SectionType     `json:"section_type" db:"section_type"`
	SortIndex int             `json:"sort_index" db:"sort_index"`
	Content   json.RawMessage `json:"content" db:"content"`
	Enabled   bool            `json:"enabled" db:"enabled"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// IsEmpty сообщает, что у секции еще нет контента (NULL, null или {}).
func (s *Section) IsEmpty() bool {
	trimmed := bytes.TrimSpace(s.Content)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}"))
}
