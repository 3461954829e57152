package prompts

import "rescue-site-server/internal/models"

// OrgBrief - сведения об организации для промпта плана.
type OrgBrief struct {
	Name      string
	Mission   string
	Location  string
	Goals     []string
	DonateURL string
}

// BrandBrief - сведения об организации для промптов текста секций.
type BrandBrief struct {
	Name         string
	Mission      string
	Location     string
	ContactEmail string
	Phone        string
	Address      string
	TaxID        string
	DonateURL    string
}

func OrgBriefFrom(org *models.Organization) OrgBrief {
	goals := make([]string, len(org.Goals))
	copy(goals, org.Goals)
	return OrgBrief{
		Name:      org.Name,
		Mission:   org.Mission,
		Location:  org.Location,
		Goals:     goals,
		DonateURL: org.DonateURL,
	}
}

func BrandBriefFrom(org *models.Organization) BrandBrief {
	return BrandBrief{
		Name:         org.Name,
		Mission:      org.Mission,
		Location:     org.Location,
		ContactEmail: org.ContactEmail,
		Phone:        org.Phone,
		Address:      org.Address,
		TaxID:        org.TaxID,
		DonateURL:    org.DonateURL,
	}
}
