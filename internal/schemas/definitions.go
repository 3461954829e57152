package schemas

import "rescue-site-server/internal/models"

// Хелперы для JSON Schema литералов. Ограничения дублируют validate-теги моделей.

func stringField(description string, maxLength int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
		"maxLength":   maxLength,
	}
}

func objectOf(properties map[string]interface{}, required ...string) map[string]interface{} {
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           properties,
		"required":             required,
	}
}

func arrayOf(items map[string]interface{}, minItems, maxItems int) map[string]interface{} {
	def := map[string]interface{}{
		"type":     "array",
		"items":    items,
		"maxItems": maxItems,
	}
	if minItems > 0 {
		def["minItems"] = minItems
	}
	return def
}

func ctaField(description string) map[string]interface{} {
	def := objectOf(map[string]interface{}{
		"label": stringField("Button text, 2-4 words", 30),
		"href":  stringField("Root-relative path like /adopt or an absolute https URL", 300),
	}, "label", "href")
	def["description"] = description
	return def
}

func linkArray(maxItems int) map[string]interface{} {
	return arrayOf(objectOf(map[string]interface{}{
		"label": stringField("Link text", 30),
		"href":  stringField("Root-relative path or absolute https URL", 300),
	}, "label", "href"), 0, maxItems)
}

func sectionTypeEnum() []string {
	types := models.AllSectionTypes()
	values := make([]string, 0, len(types))
	for _, t := range types {
		values = append(values, string(t))
	}
	return values
}

func sitePlanDefinition() map[string]interface{} {
	page := objectOf(map[string]interface{}{
		"key":   stringField("Stable page identifier in kebab-case, e.g. home, adopt, about", 40),
		"title": stringField("Human readable page title", 80),
		"path": map[string]interface{}{
			"type":        "string",
			"description": "URL path starting with /, the home page uses /",
			"pattern":     "^/",
			"maxLength":   120,
		},
		"sections": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"maxItems": models.MaxSectionsPerPage,
			"items": map[string]interface{}{
				"type": "string",
				"enum": sectionTypeEnum(),
			},
		},
	}, "key", "title", "path", "sections")

	return objectOf(map[string]interface{}{
		"pages": arrayOf(page, 1, 12),
	}, "pages")
}

func headerDefinition() map[string]interface{} {
	return objectOf(map[string]interface{}{
		"logo_text": stringField("Organization name as shown in the site header", 40),
		"nav_links": linkArray(6),
		"cta":       ctaField("Optional header button, usually Donate"),
	}, "logo_text")
}

func heroDefinition() map[string]interface{} {
	return objectOf(map[string]interface{}{
		"heading":       stringField("Main headline", 90),
		"subheading":    stringField("Supporting sentence under the headline", 180),
		"primary_cta":   ctaField("Main call to action"),
		"secondary_cta": ctaField("Secondary call to action"),
	}, "heading")
}

func valuePropsDefinition() map[string]interface{} {
	item := objectOf(map[string]interface{}{
		"title":       stringField("Short benefit title", 60),
		"description": stringField("One or two sentences", 200),
		"icon":        stringField("Optional icon keyword, e.g. heart, home, paw", 30),
	}, "title", "description")
	return objectOf(map[string]interface{}{
		"heading": stringField("Optional section heading", 80),
		"items":   arrayOf(item, 1, 6),
	}, "items")
}

func aboutDefinition() map[string]interface{} {
	return objectOf(map[string]interface{}{
		"heading":    stringField("Section heading", 80),
		"body":       stringField("Two or three short paragraphs separated by blank lines", 1200),
		"highlights": arrayOf(map[string]interface{}{"type": "string", "maxLength": 120}, 0, 5),
	}, "heading", "body")
}

func gridAnimalsDefinition() map[string]interface{} {
	return objectOf(map[string]interface{}{
		"heading":    stringField("Heading above the adoptable animals grid", 80),
		"subheading": stringField("Short invitation to meet the animals", 180),
		"cta":        ctaField("Link to the full list of adoptable animals"),
	}, "heading")
}

func testimonialsDefinition() map[string]interface{} {
	item := objectOf(map[string]interface{}{
		"quote":  stringField("Testimonial text from an adopter or volunteer", 300),
		"author": stringField("First name and last initial", 60),
		"role":   stringField("Optional role, e.g. Adopter, Volunteer", 60),
	}, "quote", "author")
	return objectOf(map[string]interface{}{
		"heading": stringField("Optional section heading", 80),
		"items":   arrayOf(item, 1, 6),
	}, "items")
}

func ctaDefinition() map[string]interface{} {
	return objectOf(map[string]interface{}{
		"heading":       stringField("Call to action headline", 90),
		"body":          stringField("One supporting sentence", 240),
		"primary_cta":   ctaField("Main call to action"),
		"secondary_cta": ctaField("Secondary call to action"),
	}, "heading", "primary_cta")
}

func faqDefinition() map[string]interface{} {
	item := objectOf(map[string]interface{}{
		"question": stringField("Question visitors commonly ask", 140),
		"answer":   stringField("Plain answer in one to three sentences", 600),
	}, "question", "answer")
	return objectOf(map[string]interface{}{
		"heading": stringField("Optional section heading", 80),
		"items":   arrayOf(item, 1, 10),
	}, "items")
}

func contactDefinition() map[string]interface{} {
	return objectOf(map[string]interface{}{
		"heading": stringField("Section heading", 80),
		"body":    stringField("Short invitation to get in touch", 300),
		"email":   map[string]interface{}{"type": "string", "format": "email"},
		"phone":   stringField("Phone number", 30),
		"address": stringField("Street address", 200),
	}, "heading")
}

func footerDefinition() map[string]interface{} {
	return objectOf(map[string]interface{}{
		"tagline": stringField("One line about the organization", 140),
		"links":   linkArray(8),
		"legal":   stringField("Legal line, include the tax id when known", 240),
	})
}
