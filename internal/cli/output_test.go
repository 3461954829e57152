package cli

import (
	"bytes"
	"testing"
	"time"

	"rescue-site-server/internal/models"
	"rescue-site-server/internal/service"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestPrintAll(t *testing.T) {
	withoutColor(t)

	res := &service.AllResult{
		Structure: &service.StructureResult{
			Plan: models.SitePlan{Pages: []models.PlanPage{
				{Key: "home", Title: "Home", Path: "/", Sections: []models.SectionType{models.SectionHero, models.SectionCTA}},
			}},
			PagesCreated:    1,
			SectionsCreated: 2,
		},
		Copy: &service.CopyResult{
			UpdatedSections: []service.UpdatedSection{{SectionID: 1, Type: models.SectionHero}},
			SkippedSections: []service.SkippedSection{{SectionID: 2, Type: models.SectionCTA, Reason: service.SkipReasonGenerationFailed}},
			TotalProcessed:  2,
			TotalUpdated:    1,
		},
		SuccessRate: 0.5,
		Summary:     "1/2 sections generated (50%)",
	}

	var buf bytes.Buffer
	printAll(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "Site plan: 1 pages, 2 sections")
	assert.Contains(t, out, "hero, cta")
	assert.Contains(t, out, "Section copy: 1/2 updated")
	assert.Contains(t, out, "SKIP section 2 (cta): generation_failed")
	assert.Contains(t, out, "1/2 sections generated (50%)")
	assert.NotContains(t, out, "Site published")
}

func TestPrintAll_NoCopy(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	printAll(&buf, &service.AllResult{Structure: &service.StructureResult{}})
	assert.Contains(t, buf.String(), "Copy generation was not run")
}

func TestPrintStatus(t *testing.T) {
	withoutColor(t)
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	printStatus(&buf, &service.StatusResult{
		TenantID:             7,
		GenerationInProgress: true,
		EmptySections:        3,
		Pages:                []models.Page{{Path: "/about", Title: "About us"}},
		SitePublishedAt:      &published,
	})
	out := buf.String()

	assert.Contains(t, out, "Tenant 7")
	assert.Contains(t, out, "generation in progress")
	assert.Contains(t, out, "Empty sections: 3")
	assert.Contains(t, out, "2026-03-01 12:00:00 UTC")
	assert.Contains(t, out, "/about")
}

func TestRootCmd_Commands(t *testing.T) {
	root := RootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "seed", "generate", "status", "token"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestGenerateCmd_RejectsNonPositiveTenant(t *testing.T) {
	root := RootCmd()
	root.SetArgs([]string{"generate", "plan", "--tenant", "0"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	assert.EqualError(t, err, "--tenant must be a positive integer")
}
