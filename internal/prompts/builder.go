package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"rescue-site-server/internal/models"
	"rescue-site-server/internal/schemas"
)

// Общие требования к тексту всех секций.
const (
	toneInstruction = "Tone: warm, hopeful and trustworthy. Speak directly to potential adopters, volunteers and donors."
	readingLevel    = "Reading level: 7th to 9th grade. Use short sentences and everyday words."
	noMarkupRule    = "Write plain text only: no HTML, no markdown, no emoji, no placeholder text like [Name] or lorem ipsum."
	jsonOnlyRule    = "Reply with ONLY a JSON object that matches the schema below. Do not wrap it in code fences."
)

// PlanPrompt - промпт и схема для генерации плана сайта.
type PlanPrompt struct {
	Parts  []string
	Schema schemas.Schema[models.SitePlan]
}

// SectionPrompt - промпт и схема для текста одной секции.
type SectionPrompt struct {
	Type   models.SectionType
	Parts  []string
	Schema schemas.Schema[models.SectionContent]
}

// BuildPlan собирает промпт плана сайта. Функция чистая: одинаковые
// аргументы дают одинаковые фрагменты.
func BuildPlan(brief OrgBrief, availableAnimalCount int) PlanPrompt {
	schema := schemas.SitePlanSchema()

	types := make([]string, 0, len(models.AllSectionTypes()))
	for _, t := range models.AllSectionTypes() {
		types = append(types, string(t))
	}

	parts := []string{
		"You are planning the website structure for an animal rescue organization.",
		formatOrgBrief(brief),
		fmt.Sprintf("Available Animals Count: %d", availableAnimalCount),
		strings.Join([]string{
			"Rules:",
			"- Always include a home page with key \"home\" and path \"/\".",
			"- If Available Animals Count is greater than 0, the home page MUST include a \"grid-animals\" section.",
			fmt.Sprintf("- Each page may contain at most %d sections.", models.MaxSectionsPerPage),
			"- Use only these section types: " + strings.Join(types, ", ") + ".",
			"- Every page starts with \"header\" and ends with \"footer\".",
			"- Plan between 3 and 7 pages. Paths are lowercase and start with /.",
		}, "\n"),
		jsonOnlyRule + "\n" + renderDefinition(schema.Definition()),
	}
	return PlanPrompt{Parts: parts, Schema: schema}
}

// BuildSectionCopy собирает промпт текста секции. Неизвестный тип
// возвращает models.ErrUnknownSectionType.
func BuildSectionCopy(sectionType models.SectionType, brief BrandBrief) (SectionPrompt, error) {
	schema, err := schemas.ForSection(sectionType)
	if err != nil {
		return SectionPrompt{}, err
	}
	guidance, err := sectionGuidance(sectionType, brief)
	if err != nil {
		return SectionPrompt{}, err
	}

	parts := []string{
		fmt.Sprintf("You are writing the %q section of the website for an animal rescue organization.", string(sectionType)),
		formatBrandBrief(brief),
		guidance,
		strings.Join([]string{toneInstruction, readingLevel, noMarkupRule}, "\n"),
		jsonOnlyRule + "\n" + renderDefinition(schema.Definition()),
	}
	return SectionPrompt{Type: sectionType, Parts: parts, Schema: schema}, nil
}

// sectionGuidance - указания по содержанию для каждого типа секции.
func sectionGuidance(t models.SectionType, brief BrandBrief) (string, error) {
	donate := "/donate"
	if brief.DonateURL != "" {
		donate = brief.DonateURL
	}

	switch t {
	case models.SectionHeader:
		return "Header: a short logo text (usually the organization name), up to 6 navigation links to site pages, and an optional call to action such as Adopt or Donate.", nil
	case models.SectionHero:
		return fmt.Sprintf("Hero: a heading of at most 90 characters that says what the rescue does and where. An optional subheading of at most 180 characters. Optional primary call to action (for example Meet Our Animals, /adopt) and optional secondary call to action (for example Donate, %s).", donate), nil
	case models.SectionValueProps:
		return "Value props: 3 to 6 short items explaining why people should adopt, volunteer or give here. Each item has a title of at most 60 characters and a one or two sentence description.", nil
	case models.SectionAbout:
		return "About: a heading and a body of at most 1200 characters telling the story and mission of the rescue. Up to 5 short highlights. Do not invent founding years, statistics or awards that are not in the brief.", nil
	case models.SectionGridAnimals:
		return "Animal grid: a heading and optional subheading introducing the animals currently available for adoption. The animal cards are rendered from live data, so do not name or describe individual animals. Optional call to action to the adoption page.", nil
	case models.SectionTestimonials:
		return "Testimonials: 2 to 4 short quotes from adopters or volunteers with first name and role. Keep them believable and modest.", nil
	case models.SectionCTA:
		return fmt.Sprintf("Call to action: a heading of at most 90 characters, an optional short body, a required primary call to action and an optional secondary one. Donation links use %s.", donate), nil
	case models.SectionFAQ:
		return "FAQ: 4 to 8 common questions about adoption fees, the adoption process, volunteering, fostering and donations, each with a clear answer.", nil
	case models.SectionContact:
		return "Contact: a heading and optional short body inviting people to get in touch. Use ONLY the email, phone and address from the brief. Omit any contact field the brief does not provide.", nil
	case models.SectionFooter:
		legal := "Include a short copyright line."
		if brief.TaxID != "" {
			legal = fmt.Sprintf("Include a short copyright line and mention the tax ID %s for donations.", brief.TaxID)
		}
		return "Footer: an optional tagline, up to 8 links to site pages and a legal line. " + legal, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownSectionType, string(t))
	}
}

func formatOrgBrief(b OrgBrief) string {
	var sb strings.Builder
	sb.WriteString("Organization:\n")
	writeField(&sb, "Name", b.Name)
	writeField(&sb, "Mission", b.Mission)
	writeField(&sb, "Location", b.Location)
	if len(b.Goals) > 0 {
		sb.WriteString("- Goals: " + strings.Join(b.Goals, "; ") + "\n")
	}
	writeField(&sb, "Donate URL", b.DonateURL)
	return strings.TrimRight(sb.String(), "\n")
}

func formatBrandBrief(b BrandBrief) string {
	var sb strings.Builder
	sb.WriteString("Organization:\n")
	writeField(&sb, "Name", b.Name)
	writeField(&sb, "Mission", b.Mission)
	writeField(&sb, "Location", b.Location)
	writeField(&sb, "Email", b.ContactEmail)
	writeField(&sb, "Phone", b.Phone)
	writeField(&sb, "Address", b.Address)
	writeField(&sb, "Tax ID", b.TaxID)
	writeField(&sb, "Donate URL", b.DonateURL)
	return strings.TrimRight(sb.String(), "\n")
}

func writeField(sb *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	sb.WriteString("- " + label + ": " + value + "\n")
}

// renderDefinition печатает схему с отступами. Ключи карт json сортирует,
// поэтому вывод детерминирован.
func renderDefinition(def map[string]interface{}) string {
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		// Литералы схем состоят из строк, чисел и карт
		panic(fmt.Sprintf("prompts: failed to render schema definition: %v", err))
	}
	return string(data)
}
