package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/pkg/richtext"

	"gopkg.in/yaml.v3"
)

// Fixture is the seed file layout. Description fields hold HTML fragments.
type Fixture struct {
	Services []ServiceFixture    `yaml:"services"`
	Markets  []MarketFixture     `yaml:"markets"`
	Team     []TeamMemberFixture `yaml:"team"`
}

type ServiceFixture struct {
	Name         string              `yaml:"name"`
	Slug         string              `yaml:"slug"`
	Tagline      string              `yaml:"tagline"`
	Description  string              `yaml:"description"`
	Icon         string              `yaml:"icon"`
	HeroImageURL string              `yaml:"hero_image_url"`
	DisplayOrder int                 `yaml:"display_order"`
	Published    bool                `yaml:"published"`
	SubServices  []SubServiceFixture `yaml:"sub_services"`
}

type SubServiceFixture struct {
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	Description  string `yaml:"description"`
	Icon         string `yaml:"icon"`
	ImageURL     string `yaml:"image_url"`
	DisplayOrder int    `yaml:"display_order"`
	Published    bool   `yaml:"published"`
}

type MarketFixture struct {
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	Description  string `yaml:"description"`
	IconURL      string `yaml:"icon_url"`
	HeroImageURL string `yaml:"hero_image_url"`
	DisplayOrder int    `yaml:"display_order"`
	Published    bool   `yaml:"published"`
}

type TeamMemberFixture struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Bio          string `yaml:"bio"`
	PhotoURL     string `yaml:"photo_url"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	DisplayOrder int    `yaml:"display_order"`
	Published    bool   `yaml:"published"`
}

// LoadFixture parses a seed file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &f, nil
}

// htmlDocument converts a fixture HTML fragment into request JSON. Blank input yields nil so
// the service stores the empty document.
func htmlDocument(fragment string) (json.RawMessage, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, nil
	}
	doc, err := richtext.FromHTML(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// SeedCmd implements the 'seed' command. Records whose slug already exists are skipped.
type SeedCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML fixture"`
}

func (c *SeedCmd) Run(g *Global, root *CLI) error {
	fixture, err := LoadFixture(c.File)
	if err != nil {
		return err
	}

	b, err := openBackend(root.Verbose)
	if err != nil {
		return err
	}
	defer b.close()

	s := &seeder{backend: b, out: g}
	ctx := context.Background()
	if err := s.seedServices(ctx, fixture.Services); err != nil {
		return err
	}
	if err := s.seedMarkets(ctx, fixture.Markets); err != nil {
		return err
	}
	if err := s.seedTeam(ctx, fixture.Team); err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "seeded %d services, %d markets, %d team members (%d skipped)\n",
		s.created["service"], s.created["market"], s.created["team"], s.skipped)
	return nil
}

type seeder struct {
	*backend
	out     *Global
	created map[string]int
	skipped int
}

// record returns false for conflicts so the caller can move on.
func (s *seeder) record(kind, name string, err error) (bool, error) {
	if s.created == nil {
		s.created = map[string]int{}
	}
	if err == nil {
		s.created[kind]++
		return true, nil
	}
	if appErr, ok := apperror.As(err); ok && appErr.Code == http.StatusConflict {
		fmt.Fprintf(s.out.Out, "skip %s %q: %s\n", kind, name, appErr.Message)
		s.skipped++
		return false, nil
	}
	return false, fmt.Errorf("%s %q: %w", kind, name, err)
}

func (s *seeder) seedServices(ctx context.Context, fixtures []ServiceFixture) error {
	for _, f := range fixtures {
		desc, err := htmlDocument(f.Description)
		if err != nil {
			return err
		}
		req := dto.ServiceRequest{
			Name:         f.Name,
			Slug:         f.Slug,
			Tagline:      f.Tagline,
			Description:  desc,
			Icon:         f.Icon,
			HeroImageURL: f.HeroImageURL,
			DisplayOrder: f.DisplayOrder,
			Published:    f.Published,
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return fmt.Errorf("service %q: %w", f.Name, err)
		}

		res, err := s.catalog.Create(ctx, &req)
		if ok, err := s.record("service", f.Name, err); !ok {
			if err != nil {
				return err
			}
			continue
		}

		for _, sf := range f.SubServices {
			desc, err := htmlDocument(sf.Description)
			if err != nil {
				return err
			}
			subReq := dto.SubServiceRequest{
				Name:         sf.Name,
				Slug:         sf.Slug,
				Description:  desc,
				Icon:         sf.Icon,
				ImageURL:     sf.ImageURL,
				DisplayOrder: sf.DisplayOrder,
				Published:    sf.Published,
			}
			if err := serverutils.ValidateRequest(subReq); err != nil {
				return fmt.Errorf("sub service %q: %w", sf.Name, err)
			}
			_, err = s.catalog.CreateSubService(ctx, res.Id, &subReq)
			if _, err := s.record("sub_service", sf.Name, err); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) seedMarkets(ctx context.Context, fixtures []MarketFixture) error {
	for _, f := range fixtures {
		desc, err := htmlDocument(f.Description)
		if err != nil {
			return err
		}
		req := dto.MarketRequest{
			Name:         f.Name,
			Slug:         f.Slug,
			Description:  desc,
			IconURL:      f.IconURL,
			HeroImageURL: f.HeroImageURL,
			DisplayOrder: f.DisplayOrder,
			Published:    f.Published,
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return fmt.Errorf("market %q: %w", f.Name, err)
		}
		_, err = s.markets.Create(ctx, &req)
		if _, err := s.record("market", f.Name, err); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedTeam(ctx context.Context, fixtures []TeamMemberFixture) error {
	for _, f := range fixtures {
		req := dto.TeamMemberRequest{
			Name:         f.Name,
			Title:        f.Title,
			Bio:          f.Bio,
			PhotoURL:     f.PhotoURL,
			Email:        f.Email,
			Phone:        f.Phone,
			DisplayOrder: f.DisplayOrder,
			Published:    f.Published,
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return fmt.Errorf("team member %q: %w", f.Name, err)
		}
		_, err := s.team.Create(ctx, &req)
		if _, err := s.record("team", f.Name, err); err != nil {
			return err
		}
	}
	return nil
}
