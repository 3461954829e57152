package cli

import (
	"fmt"
	"io"
	"strings"

	"rescue-site-server/internal/service"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	failureColor = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

func printStructure(w io.Writer, res *service.StructureResult) {
	headerColor.Fprintf(w, "Site plan: %d pages, %d sections\n", res.PagesCreated, res.SectionsCreated)
	for _, page := range res.Plan.Pages {
		sections := make([]string, 0, len(page.Sections))
		for _, s := range page.Sections {
			sections = append(sections, string(s))
		}
		fmt.Fprintf(w, "  %-20s %-24s %s\n", page.Path, page.Title, strings.Join(sections, ", "))
	}
}

func printCopy(w io.Writer, res *service.CopyResult) {
	headerColor.Fprintf(w, "Section copy: %d/%d updated\n", res.TotalUpdated, res.TotalProcessed)
	for _, s := range res.UpdatedSections {
		fmt.Fprintf(w, "  %s section %d (%s)\n", successColor.Sprint("OK  "), s.SectionID, s.Type)
	}
	for _, s := range res.SkippedSections {
		fmt.Fprintf(w, "  %s section %d (%s): %s\n", warnColor.Sprint("SKIP"), s.SectionID, s.Type, s.Reason)
	}
}

func printAll(w io.Writer, res *service.AllResult) {
	if res.Structure != nil {
		printStructure(w, res.Structure)
	}
	if res.Copy == nil {
		failureColor.Fprintln(w, "Copy generation was not run")
		return
	}
	printCopy(w, res.Copy)

	summary := successColor
	if res.SuccessRate < 1 {
		summary = warnColor
	}
	summary.Fprintln(w, res.Summary)
	if res.Published {
		successColor.Fprintln(w, "Site published")
	}
}

func printStatus(w io.Writer, res *service.StatusResult) {
	headerColor.Fprintf(w, "Tenant %d\n", res.TenantID)
	lockState := successColor.Sprint("idle")
	if res.GenerationInProgress {
		lockState = warnColor.Sprint("generation in progress")
	}
	fmt.Fprintf(w, "  Lock:           %s\n", lockState)
	fmt.Fprintf(w, "  Empty sections: %d\n", res.EmptySections)
	if res.SitePublishedAt != nil {
		fmt.Fprintf(w, "  Published at:   %s\n", res.SitePublishedAt.Format("2006-01-02 15:04:05 MST"))
	} else {
		fmt.Fprintf(w, "  Published at:   %s\n", warnColor.Sprint("not published"))
	}
	fmt.Fprintf(w, "  Pages:          %d\n", len(res.Pages))
	for _, p := range res.Pages {
		fmt.Fprintf(w, "    %-20s %s\n", p.Path, p.Title)
	}
}
