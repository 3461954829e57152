package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rescue-site-server/internal/bootstrap"
	"rescue-site-server/internal/models"
	"rescue-site-server/internal/repository"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile - формат файла начальных данных.
type SeedFile struct {
	Organizations []SeedOrganization `yaml:"organizations"`
}

type SeedOrganization struct {
	Name         string       `yaml:"name"`
	Mission      string       `yaml:"mission"`
	Location     string       `yaml:"location"`
	Goals        []string     `yaml:"goals"`
	DonateURL    string       `yaml:"donate_url"`
	ContactEmail string       `yaml:"contact_email"`
	Phone        string       `yaml:"phone"`
	Address      string       `yaml:"address"`
	TaxID        string       `yaml:"tax_id"`
	Animals      []SeedAnimal `yaml:"animals"`
}

type SeedAnimal struct {
	Name    string `yaml:"name"`
	Species string `yaml:"species"`
	Status  string `yaml:"status"` // пусто = available
}

// ParseSeed читает YAML и проверяет обязательные поля.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	var file SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("seed file is empty")
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(file.Organizations) == 0 {
		return nil, fmt.Errorf("seed file has no organizations")
	}
	for i, org := range file.Organizations {
		if strings.TrimSpace(org.Name) == "" {
			return nil, fmt.Errorf("organizations[%d]: name is required", i)
		}
		for j, animal := range org.Animals {
			if strings.TrimSpace(animal.Name) == "" {
				return nil, fmt.Errorf("organizations[%d].animals[%d]: name is required", i, j)
			}
		}
	}
	return &file, nil
}

// SeedResult - созданная организация и число животных.
type SeedResult struct {
	TenantID int64
	Name     string
	Animals  int
}

// Seed создает организации и их животных через репозитории.
func Seed(ctx context.Context, orgs repository.OrganizationRepository, animals repository.AnimalRepository, file *SeedFile) ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(file.Organizations))
	for _, seed := range file.Organizations {
		org := &models.Organization{
			Name:         seed.Name,
			Mission:      seed.Mission,
			Location:     seed.Location,
			Goals:        seed.Goals,
			DonateURL:    seed.DonateURL,
			ContactEmail: seed.ContactEmail,
			Phone:        seed.Phone,
			Address:      seed.Address,
			TaxID:        seed.TaxID,
		}
		if err := orgs.Create(ctx, org); err != nil {
			return results, fmt.Errorf("failed to seed organization %q: %w", seed.Name, err)
		}

		for _, a := range seed.Animals {
			status := a.Status
			if status == "" {
				status = models.AnimalStatusAvailable
			}
			animal := &models.Animal{TenantID: org.ID, Name: a.Name, Species: a.Species, Status: status}
			if err := animals.Create(ctx, animal); err != nil {
				return results, fmt.Errorf("failed to seed animal %q of %q: %w", a.Name, seed.Name, err)
			}
		}
		results = append(results, SeedResult{TenantID: org.ID, Name: org.Name, Animals: len(seed.Animals)})
	}
	return results, nil
}

// SeedCmd загружает организации из YAML файла.
func SeedCmd(opts *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create organizations and animals from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open seed file: %w", err)
			}
			defer f.Close()

			file, err := ParseSeed(f)
			if err != nil {
				return err
			}

			return withServices(cmd.Context(), opts, func(_ *environment, svc *bootstrap.Services) error {
				results, err := Seed(cmd.Context(), svc.Organizations, svc.Animals, file)
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s tenant %d %s (%d animals)\n",
						successColor.Sprint("CREATED"), r.TenantID, r.Name, r.Animals)
				}
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "seed.yaml", "path to the seed YAML file")
	return cmd
}
