package schemas

import (
	"fmt"

	"rescue-site-server/internal/models"
)

// SitePlanSchema - схема плана сайта: страницы и типы секций из закрытого набора.
func SitePlanSchema() Schema[models.SitePlan] {
	return &objectSchema[models.SitePlan, models.SitePlan]{
		name:       "site_plan",
		definition: sitePlanDefinition,
		wrap:       func(plan *models.SitePlan) models.SitePlan { return *plan },
	}
}

// ForSection возвращает схему контента для типа секции.
func ForSection(t models.SectionType) (Schema[models.SectionContent], error) {
	switch t {
	case models.SectionHeader:
		return newSectionSchema[models.HeaderContent](t, headerDefinition), nil
	case models.SectionHero:
		return newSectionSchema[models.HeroContent](t, heroDefinition), nil
	case models.SectionValueProps:
		return newSectionSchema[models.ValuePropsContent](t, valuePropsDefinition), nil
	case models.SectionAbout:
		return newSectionSchema[models.AboutContent](t, aboutDefinition), nil
	case models.SectionGridAnimals:
		return newSectionSchema[models.GridAnimalsContent](t, gridAnimalsDefinition), nil
	case models.SectionTestimonials:
		return newSectionSchema[models.TestimonialsContent](t, testimonialsDefinition), nil
	case models.SectionCTA:
		return newSectionSchema[models.CTAContent](t, ctaDefinition), nil
	case models.SectionFAQ:
		return newSectionSchema[models.FAQContent](t, faqDefinition), nil
	case models.SectionContact:
		return newSectionSchema[models.ContactContent](t, contactDefinition), nil
	case models.SectionFooter:
		return newSectionSchema[models.FooterContent](t, footerDefinition), nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownSectionType, string(t))
	}
}

func newSectionSchema[V any, PV interface {
	*V
	models.SectionContent
}](t models.SectionType, definition func() map[string]interface{}) Schema[models.SectionContent] {
	return &objectSchema[models.SectionContent, V]{
		name:       "section_" + string(t),
		definition: definition,
		wrap:       func(v *V) models.SectionContent { return PV(v) },
	}
}
