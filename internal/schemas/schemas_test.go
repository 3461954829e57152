package schemas

import (
	"encoding/json"
	"strings"
	"testing"

	"rescue-site-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlan = `{
  "pages": [
    {"key": "home", "title": "Home", "path": "/", "sections": ["header", "hero", "value-props", "cta", "footer"]},
    {"key": "about", "title": "About Us", "path": "/about", "sections": ["header", "about", "faq", "footer"]}
  ]
}`

func TestSitePlanSchema_Valid(t *testing.T) {
	plan, err := SitePlanSchema().Validate([]byte(validPlan))
	require.NoError(t, err)
	require.Len(t, plan.Pages, 2)
	assert.Equal(t, "home", plan.Pages[0].Key)
	assert.Equal(t, []models.SectionType{"header", "about", "faq", "footer"}, plan.Pages[1].Sections)
}

func TestSitePlanSchema_Violations(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		contain string
	}{
		{
			name:    "unknown section type",
			raw:     `{"pages":[{"key":"home","title":"Home","path":"/","sections":["hero","blog"]}]}`,
			contain: `pages[0].sections[1] must be one of`,
		},
		{
			name:    "too many sections",
			raw:     `{"pages":[{"key":"home","title":"Home","path":"/","sections":["header","hero","about","faq","cta","contact","footer"]}]}`,
			contain: "pages[0].sections must contain at most 6 items",
		},
		{
			name:    "path without leading slash",
			raw:     `{"pages":[{"key":"home","title":"Home","path":"home","sections":["hero"]}]}`,
			contain: `pages[0].path must start with "/"`,
		},
		{
			name:    "no pages",
			raw:     `{"pages":[]}`,
			contain: "pages must contain at least 1 items",
		},
		{
			name:    "unknown field",
			raw:     `{"pages":[{"key":"home","title":"Home","path":"/","sections":["hero"]}],"theme":"dark"}`,
			contain: "unknown field",
		},
		{
			name:    "not an object",
			raw:     `["hero"]`,
			contain: "cannot unmarshal array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SitePlanSchema().Validate([]byte(tt.raw))
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "site_plan", vErr.Schema)
			assert.Contains(t, vErr.Error(), tt.contain)
		})
	}
}

func TestSitePlanDefinition_SectionEnum(t *testing.T) {
	def := SitePlanSchema().Definition()

	pages := def["properties"].(map[string]interface{})["pages"].(map[string]interface{})
	page := pages["items"].(map[string]interface{})
	sections := page["properties"].(map[string]interface{})["sections"].(map[string]interface{})
	items := sections["items"].(map[string]interface{})

	assert.Equal(t, models.MaxSectionsPerPage, sections["maxItems"])
	assert.Equal(t, []string{
		"header", "hero", "value-props", "about", "grid-animals",
		"testimonials", "cta", "faq", "contact", "footer",
	}, items["enum"])
}

func TestForSection_AllTypesHaveSchemas(t *testing.T) {
	for _, st := range models.AllSectionTypes() {
		schema, err := ForSection(st)
		require.NoError(t, err, st)
		assert.Equal(t, "section_"+string(st), schema.Name())

		_, marshalErr := json.Marshal(schema.Definition())
		assert.NoError(t, marshalErr)
	}
}

func TestForSection_Unknown(t *testing.T) {
	schema, err := ForSection("carousel")
	assert.Nil(t, schema)
	assert.ErrorIs(t, err, models.ErrUnknownSectionType)
}

func TestHeroSchema(t *testing.T) {
	schema, err := ForSection(models.SectionHero)
	require.NoError(t, err)

	content, err := schema.Validate([]byte(`{
		"heading": "Every pet deserves a loving home",
		"subheading": "Meet the dogs and cats waiting for you in San Francisco.",
		"primary_cta": {"label": "Adopt", "href": "/adopt"},
		"secondary_cta": {"label": "Donate", "href": "https://example.org/donate"}
	}`))
	require.NoError(t, err)
	hero, ok := content.(*models.HeroContent)
	require.True(t, ok)
	assert.Equal(t, models.SectionHero, hero.SectionType())
	assert.Equal(t, "/adopt", hero.PrimaryCTA.Href)

	// Только обязательное поле
	_, err = schema.Validate([]byte(`{"heading": "Adopt, don't shop"}`))
	assert.NoError(t, err)

	_, err = schema.Validate([]byte(`{"heading": "` + strings.Repeat("a", 91) + `"}`))
	assert.ErrorContains(t, err, "heading must be at most 90 characters")

	_, err = schema.Validate([]byte(`{"subheading": "no heading"}`))
	assert.ErrorContains(t, err, "heading is required")

	_, err = schema.Validate([]byte(`{"heading": "<b>Adopt</b> today"}`))
	assert.ErrorContains(t, err, "heading must be plain text")

	_, err = schema.Validate([]byte(`{"heading": "Adopt", "primary_cta": {"label": "Go", "href": "javascript:alert(1)"}}`))
	assert.ErrorContains(t, err, "primary_cta.href")
}

func TestCTASchema_RequiresPrimaryButton(t *testing.T) {
	schema, err := ForSection(models.SectionCTA)
	require.NoError(t, err)

	_, err = schema.Validate([]byte(`{"heading": "Help us today"}`))
	assert.ErrorContains(t, err, "primary_cta is required")

	content, err := schema.Validate([]byte(`{"heading": "Help us today", "primary_cta": {"label": "Donate", "href": "/donate"}}`))
	require.NoError(t, err)
	assert.Equal(t, models.SectionCTA, content.SectionType())
}

func TestContactSchema_Email(t *testing.T) {
	schema, err := ForSection(models.SectionContact)
	require.NoError(t, err)

	_, err = schema.Validate([]byte(`{"heading": "Contact", "email": "not-an-email"}`))
	assert.ErrorContains(t, err, "email must be a valid email address")

	_, err = schema.Validate([]byte(`{"heading": "Contact", "email": "hello@happypaws.org", "phone": "(415) 555-0100"}`))
	assert.NoError(t, err)
}

func TestNoMarkup_AngleBracketEmailPasses(t *testing.T) {
	type field struct {
		Body string `validate:"nomarkup"`
	}
	assert.NoError(t, Validator().Struct(field{Body: "Questions? Email <hello@rescue.org>."}))
	assert.Error(t, Validator().Struct(field{Body: "Questions? <b>Email us</b>"}))
}

func TestIsHref(t *testing.T) {
	v := Validator()
	for _, ok := range []string{"/adopt", "#faq", "https://happypaws.org/donate", "mailto:hi@happypaws.org", "tel:+14155550100"} {
		assert.True(t, isHref(v, ok), ok)
	}
	for _, bad := range []string{"//evil.example", "javascript:alert(1)", "adopt", "/has space", "mailto:nobody"} {
		assert.False(t, isHref(v, bad), bad)
	}
}

func TestNoMarkupPattern(t *testing.T) {
	for _, plain := range []string{
		"Adopt a friend <3", "We're #1 in hearts", "2 * 3 cats", "Cats & dogs",
		"Write to <hello@rescue.org>", "Call <i@rescue.org> anytime", "Puppies <under 6 months> need shots",
	} {
		assert.False(t, markupPattern.MatchString(plain), plain)
	}
	for _, markup := range []string{
		"<p>hi</p>", "<br/>", "<BR />", `<a href="/adopt">adopt</a>`, "<h2>Meet them</h2>", "<!-- note -->",
		"## Heading", "**bold**", "[link](https://x.y)", "```code```",
	} {
		assert.True(t, markupPattern.MatchString(markup), markup)
	}
}
