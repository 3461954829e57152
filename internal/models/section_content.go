package models

// SectionContent - сгенерированный контент секции. Каждому типу секции
// соответствует своя структура с собственными ограничениями полей.
type SectionContent interface {
	SectionType() SectionType
}

// CTA - кнопка призыва к действию.
type CTA struct {
	Label string `json:"label" validate:"required,max=30,nomarkup"`
	Href  string `json:"href" validate:"required,max=300,href"`
}

// Link - пункт навигации или ссылка в подвале.
type Link struct {
	Label string `json:"label" validate:"required,max=30,nomarkup"`
	Href  string `json:"href" validate:"required,max=300,href"`
}

type HeaderContent struct {
	LogoText string `json:"logo_text" validate:"required,max=40,nomarkup"`
	NavLinks []Link `json:"nav_links,omitempty" validate:"omitempty,max=6,dive"`
	CTA      *CTA   `json:"cta,omitempty" validate:"omitempty"`
}

type HeroContent struct {
	Heading      string `json:"heading" validate:"required,max=90,nomarkup"`
	Subheading   string `json:"subheading,omitempty" validate:"omitempty,max=180,nomarkup"`
	PrimaryCTA   *CTA   `json:"primary_cta,omitempty" validate:"omitempty"`
	SecondaryCTA *CTA   `json:"secondary_cta,omitempty" validate:"omitempty"`
}

type ValueProp struct {
	Title       string `json:"title" validate:"required,max=60,nomarkup"`
	Description string `json:"description" validate:"required,max=200,nomarkup"`
	Icon        string `json:"icon,omitempty" validate:"omitempty,max=30,nomarkup"`
}

type ValuePropsContent struct {
	Heading string      `json:"heading,omitempty" validate:"omitempty,max=80,nomarkup"`
	Items   []ValueProp `json:"items" validate:"required,min=1,max=6,dive"`
}

type AboutContent struct {
	Heading    string   `json:"heading" validate:"required,max=80,nomarkup"`
	Body       string   `json:"body" validate:"required,max=1200,nomarkup"`
	Highlights []string `json:"highlights,omitempty" validate:"omitempty,max=5,dive,max=120,nomarkup"`
}

type GridAnimalsContent struct {
	Heading    string `json:"heading" validate:"required,max=80,nomarkup"`
	Subheading string `json:"subheading,omitempty" validate:"omitempty,max=180,nomarkup"`
	CTA        *CTA   `json:"cta,omitempty" validate:"omitempty"`
}

type Testimonial struct {
	Quote  string `json:"quote" validate:"required,max=300,nomarkup"`
	Author string `json:"author" validate:"required,max=60,nomarkup"`
	Role   string `json:"role,omitempty" validate:"omitempty,max=60,nomarkup"`
}

type TestimonialsContent struct {
	Heading string        `json:"heading,omitempty" validate:"omitempty,max=80,nomarkup"`
	Items   []Testimonial `json:"items" validate:"required,min=1,max=6,dive"`
}

type CTAContent struct {
	Heading      string `json:"heading" validate:"required,max=90,nomarkup"`
	Body         string `json:"body,omitempty" validate:"omitempty,max=240,nomarkup"`
	PrimaryCTA   *CTA   `json:"primary_cta" validate:"required"`
	SecondaryCTA *CTA   `json:"secondary_cta,omitempty" validate:"omitempty"`
}

type FAQItem struct {
	Question string `json:"question" validate:"required,max=140,nomarkup"`
	Answer   string `json:"answer" validate:"required,max=600,nomarkup"`
}

type FAQContent struct {
	Heading string    `json:"heading,omitempty" validate:"omitempty,max=80,nomarkup"`
	Items   []FAQItem `json:"items" validate:"required,min=1,max=10,dive"`
}

type ContactContent struct {
	Heading string `json:"heading" validate:"required,max=80,nomarkup"`
	Body    string `json:"body,omitempty" validate:"omitempty,max=300,nomarkup"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30,nomarkup"`
	Address string `json:"address,omitempty" validate:"omitempty,max=200,nomarkup"`
}

type FooterContent struct {
	Tagline string `json:"tagline,omitempty" validate:"omitempty,max=140,nomarkup"`
	Links   []Link `json:"links,omitempty" validate:"omitempty,max=8,dive"`
	Legal   string `json:"legal,omitempty" validate:"omitempty,max=240,nomarkup"`
}

func (*HeaderContent) SectionType() SectionType       { return SectionHeader }
func (*HeroContent) SectionType() SectionType         { return SectionHero }
func (*ValuePropsContent) SectionType() SectionType   { return SectionValueProps }
func (*AboutContent) SectionType() SectionType        { return SectionAbout }
func (*GridAnimalsContent) SectionType() SectionType  { return SectionGridAnimals }
func (*TestimonialsContent) SectionType() SectionType { return SectionTestimonials }
func (*CTAContent) SectionType() SectionType          { return SectionCTA }
func (*FAQContent) SectionType() SectionType          { return SectionFAQ }
func (*ContactContent) SectionType() SectionType      { return SectionContact }
func (*FooterContent) SectionType() SectionType       { return SectionFooter }
