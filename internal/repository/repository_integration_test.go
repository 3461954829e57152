package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rescue-site-server/internal/database"
	"rescue-site-server/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type RepositorySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	ctx       context.Context

	orgs     OrganizationRepository
	animals  AnimalRepository
	pages    PageRepository
	sections SectionRepository
}

func (s *RepositorySuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("Skipping repository integration tests in short mode")
	}
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("rescue_sites_test"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(5*time.Minute),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.pool, err = pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)

	s.Require().NoError(database.NewMigrator(s.pool).Up())

	logger := zap.NewNop()
	s.orgs = NewPgOrganizationRepository(s.pool, logger)
	s.animals = NewPgAnimalRepository(s.pool, logger)
	s.pages = NewPgPageRepository(s.pool, logger)
	s.sections = NewPgSectionRepository(s.pool, logger)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE organizations RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositorySuite) createOrg() *models.Organization {
	org := &models.Organization{
		Name:         "Happy Tails Rescue",
		Mission:      "Homes for every pet",
		Location:     "Austin, TX",
		Goals:        []string{"adoptions", "fosters"},
		ContactEmail: "hello@happytails.org",
	}
	s.Require().NoError(s.orgs.Create(s.ctx, org))
	return org
}

func (s *RepositorySuite) TestOrganization_CreateGetPublish() {
	org := s.createOrg()
	s.NotZero(org.ID)

	got, err := s.orgs.GetByID(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Equal("Happy Tails Rescue", got.Name)
	s.Equal([]string{"adoptions", "fosters"}, got.Goals)
	s.Nil(got.SitePublishedAt)

	publishedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.orgs.MarkPublished(s.ctx, org.ID, publishedAt))
	got, err = s.orgs.GetByID(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.SitePublishedAt)
	s.True(publishedAt.Equal(*got.SitePublishedAt))

	_, err = s.orgs.GetByID(s.ctx, 9999)
	s.ErrorIs(err, models.ErrNotFound)
	s.ErrorIs(s.orgs.MarkPublished(s.ctx, 9999, publishedAt), models.ErrNotFound)
}

func (s *RepositorySuite) TestAnimals_CountAvailable() {
	org := s.createOrg()
	for _, status := range []string{models.AnimalStatusAvailable, models.AnimalStatusAvailable, "adopted"} {
		s.Require().NoError(s.animals.Create(s.ctx, &models.Animal{TenantID: org.ID, Name: "Rex", Species: "dog", Status: status}))
	}

	count, err := s.animals.CountAvailable(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = s.animals.CountAvailable(s.ctx, org.ID+1)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *RepositorySuite) TestSections_EmptyQueryOrderAndUpdate() {
	org := s.createOrg()

	// Страницы создаются в обратном порядке, чтобы проверить сортировку по sort_index
	about := &models.Page{TenantID: org.ID, Key: "about", Title: "About", Path: "/about", SortIndex: 1}
	home := &models.Page{TenantID: org.ID, Key: "home", Title: "Home", Path: "/", SortIndex: 0}
	s.Require().NoError(s.pages.Create(s.ctx, about))
	s.Require().NoError(s.pages.Create(s.ctx, home))

	mk := func(page *models.Page, t models.SectionType, idx int, content string, enabled bool) *models.Section {
		sec := &models.Section{TenantID: org.ID, PageID: page.ID, Type: t, SortIndex: idx, Enabled: enabled}
		if content != "" {
			sec.Content = json.RawMessage(content)
		}
		s.Require().NoError(s.sections.Create(s.ctx, sec))
		return sec
	}
	aboutBody := mk(about, models.SectionAbout, 0, "", true)
	homeFooter := mk(home, models.SectionFooter, 2, "null", true)
	homeHero := mk(home, models.SectionHero, 1, "{}", true)
	mk(home, models.SectionHeader, 0, `{"logo_text":"Happy Tails"}`, true)
	mk(home, models.SectionFAQ, 3, "", false)

	empty, err := s.sections.ListEmptyByTenant(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Require().Len(empty, 3)
	s.Equal(homeHero.ID, empty[0].ID)
	s.Equal(homeFooter.ID, empty[1].ID)
	s.Equal(aboutBody.ID, empty[2].ID)
	for _, sec := range empty {
		s.True(sec.IsEmpty())
	}

	count, err := s.sections.CountEmptyByTenant(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Equal(3, count)

	s.Require().NoError(s.sections.UpdateContent(s.ctx, homeHero.ID, json.RawMessage(`{"heading":"Adopt a friend"}`)))
	count, err = s.sections.CountEmptyByTenant(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Equal(2, count)

	s.ErrorIs(s.sections.UpdateContent(s.ctx, 9999, json.RawMessage(`{}`)), models.ErrNotFound)

	pages, err := s.pages.ListByTenant(s.ctx, org.ID)
	s.Require().NoError(err)
	s.Require().Len(pages, 2)
	s.Equal("home", pages[0].Key)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
