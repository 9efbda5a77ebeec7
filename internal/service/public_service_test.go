package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"industrial-site-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publicFixture struct {
	env      *testEnv
	cache    *memoryPageCache
	public   IPublicService
	catalog  ICatalogService
	markets  IMarketService
	projects IProjectService
	news     INewsService
	careers  ICareerService
	places   ILocationService
	team     ITeamService
}

func newPublicFixture(t *testing.T) *publicFixture {
	env := newTestEnv(t)
	pageCache := newMemoryPageCache()
	return &publicFixture{
		env:      env,
		cache:    pageCache,
		public:   NewPublicService(env.uowFactory, env.presenter, pageCache),
		catalog:  NewCatalogService(env.uowFactory, env.presenter, env.publisher),
		markets:  NewMarketService(env.uowFactory, env.presenter, env.publisher),
		projects: NewProjectService(env.uowFactory, env.presenter, env.publisher),
		news:     NewNewsService(env.uowFactory, env.presenter, env.publisher),
		careers:  NewCareerService(env.uowFactory, env.presenter, env.publisher, env.log),
		places:   NewLocationService(env.uowFactory, env.presenter, env.publisher),
		team:     NewTeamService(env.uowFactory, env.presenter, env.publisher),
	}
}

func TestPublicServiceHidesUnpublishedContent(t *testing.T) {
	f := newPublicFixture(t)
	ctx := context.Background()

	_, err := f.catalog.Create(ctx, &dto.ServiceRequest{Name: "Draft Service"})
	require.NoError(t, err)
	published, err := f.catalog.Create(ctx, &dto.ServiceRequest{Name: "Live Service", Published: true})
	require.NoError(t, err)
	_, err = f.catalog.CreateSubService(ctx, published.Id, &dto.SubServiceRequest{Name: "Hidden Sub"})
	require.NoError(t, err)
	_, err = f.catalog.CreateSubService(ctx, published.Id, &dto.SubServiceRequest{Name: "Shown Sub", Published: true})
	require.NoError(t, err)

	services, err := f.public.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "live-service", services[0].Slug)

	_, err = f.public.GetService(ctx, "draft-service")
	requireAppError(t, err, http.StatusNotFound)

	detail, err := f.public.GetService(ctx, "live-service")
	require.NoError(t, err)
	require.Len(t, detail.SubServices, 1)
	assert.Equal(t, "shown-sub", detail.SubServices[0].Slug)

	_, err = f.public.GetSubService(ctx, "live-service", "hidden-sub")
	requireAppError(t, err, http.StatusNotFound)
	sub, err := f.public.GetSubService(ctx, "live-service", "shown-sub")
	require.NoError(t, err)
	assert.Equal(t, "Shown Sub", sub.Name)
}

func TestPublicServiceCachesDetailPages(t *testing.T) {
	f := newPublicFixture(t)
	ctx := context.Background()

	created, err := f.markets.Create(ctx, &dto.MarketRequest{
		Name:        "Petrochemical",
		Description: paragraphJSON(t, "Refineries and crackers."),
		Published:   true,
	})
	require.NoError(t, err)

	first, err := f.public.GetMarket(ctx, "petrochemical")
	require.NoError(t, err)
	assert.True(t, f.cache.has(KindMarket, "petrochemical"))
	assert.Equal(t, "<p>Refineries and crackers.</p>", first.DescriptionHTML)

	// The cached copy is served until the entry is invalidated.
	_, err = f.markets.Update(ctx, created.Id, &dto.MarketRequest{
		Name:        "Petrochemical",
		Description: paragraphJSON(t, "Updated."),
		Published:   true,
	})
	require.NoError(t, err)
	cached, err := f.public.GetMarket(ctx, "petrochemical")
	require.NoError(t, err)
	assert.Equal(t, "<p>Refineries and crackers.</p>", cached.DescriptionHTML)

	f.cache.Invalidate(ctx, KindMarket, "petrochemical")
	fresh, err := f.public.GetMarket(ctx, "petrochemical")
	require.NoError(t, err)
	assert.Equal(t, "<p>Updated.</p>", fresh.DescriptionHTML)
}

func TestPublicServiceProjects(t *testing.T) {
	f := newPublicFixture(t)
	ctx := context.Background()

	featured, err := f.projects.Create(ctx, &dto.ProjectRequest{Title: "Gas Plant Expansion", Market: "oil-gas", Featured: true, Published: true})
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, &dto.ProjectRequest{Title: "Water Treatment Upgrade", Market: "municipal", Published: true})
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, &dto.ProjectRequest{Title: "Unreleased", Featured: true})
	require.NoError(t, err)

	all, err := f.public.ListProjects(ctx, dto.ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyFeatured, err := f.public.ListProjects(ctx, dto.ProjectFilter{Featured: true})
	require.NoError(t, err)
	require.Len(t, onlyFeatured, 1)
	assert.Equal(t, featured.Id, onlyFeatured[0].Id)

	byMarket, err := f.public.ListProjects(ctx, dto.ProjectFilter{Market: "municipal"})
	require.NoError(t, err)
	require.Len(t, byMarket, 1)
	assert.Equal(t, "water-treatment-upgrade", byMarket[0].Slug)

	limited, err := f.public.ListProjects(ctx, dto.ProjectFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = f.projects.AddImage(ctx, featured.Id, &dto.ProjectImageRequest{ImageURL: "/uploads/b.jpg", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = f.projects.AddImage(ctx, featured.Id, &dto.ProjectImageRequest{ImageURL: "/uploads/a.jpg", DisplayOrder: 1})
	require.NoError(t, err)

	detail, err := f.public.GetProject(ctx, "gas-plant-expansion")
	require.NoError(t, err)
	require.Len(t, detail.Images, 2)
	assert.Equal(t, "/uploads/a.jpg", detail.Images[0].ImageURL)

	_, err = f.public.GetProject(ctx, "unreleased")
	requireAppError(t, err, http.StatusNotFound)
}

func TestPublicServiceNews(t *testing.T) {
	f := newPublicFixture(t)
	ctx := context.Background()

	_, err := f.news.Create(ctx, &dto.NewsRequest{
		Title:     "Safety Milestone",
		Content:   paragraphJSON(t, "One million hours without a lost-time incident."),
		Published: true,
	})
	require.NoError(t, err)
	_, err = f.news.Create(ctx, &dto.NewsRequest{Title: "Career Fair", Type: "event", Published: true})
	require.NoError(t, err)
	_, err = f.news.Create(ctx, &dto.NewsRequest{Title: "Unannounced"})
	require.NoError(t, err)

	all, err := f.public.ListNews(ctx, dto.NewsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	eventsOnly, err := f.public.ListNews(ctx, dto.NewsFilter{Type: "event"})
	require.NoError(t, err)
	require.Len(t, eventsOnly, 1)
	assert.Equal(t, "career-fair", eventsOnly[0].Slug)

	md, err := f.public.NewsMarkdown(ctx, "safety-milestone")
	require.NoError(t, err)
	assert.Equal(t, "# Safety Milestone\n\nOne million hours without a lost-time incident.\n", md)

	_, err = f.public.NewsMarkdown(ctx, "unannounced")
	requireAppError(t, err, http.StatusNotFound)
}

func TestPublicServiceCareersHideExpiredPostings(t *testing.T) {
	f := newPublicFixture(t)
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(24 * time.Hour)

	_, err := f.careers.Create(ctx, &dto.JobPostingRequest{Title: "Electrician", Published: true, ExpiresAt: &future})
	require.NoError(t, err)
	_, err = f.careers.Create(ctx, &dto.JobPostingRequest{Title: "Pipefitter", Published: true, ExpiresAt: &past})
	require.NoError(t, err)
	_, err = f.careers.Create(ctx, &dto.JobPostingRequest{Title: "Estimator", Published: true})
	require.NoError(t, err)

	jobs, err := f.public.ListCareers(ctx)
	require.NoError(t, err)
	slugs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		slugs = append(slugs, j.Slug)
		assert.True(t, j.Active)
	}
	assert.ElementsMatch(t, []string{"electrician", "estimator"}, slugs)

	_, err = f.public.GetCareer(ctx, "pipefitter")
	requireAppError(t, err, http.StatusNotFound)

	job, err := f.public.GetCareer(ctx, "electrician")
	require.NoError(t, err)
	assert.Equal(t, "Full-time", job.EmploymentType)
}

func TestPublicServiceExpiredCachedCareerIsNotServed(t *testing.T) {
	f := newPublicFixture(t)
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Minute)
	f.cache.Set(ctx, KindJobPosting, "welder", &dto.JobPostingResponse{Slug: "welder", Published: true, ExpiresAt: &past})

	_, err := f.public.GetCareer(ctx, "welder")
	requireAppError(t, err, http.StatusNotFound)
}

func TestPublicServiceLocationsTeamAndHome(t *testing.T) {
	f := newPublicFixture(t)
	ctx := context.Background()

	_, err := f.places.Create(ctx, &dto.LocationRequest{Name: "Baton Rouge Yard", City: "Baton Rouge", Published: true})
	require.NoError(t, err)
	_, err = f.places.Create(ctx, &dto.LocationRequest{Name: "Houston Office", City: "Houston", IsHeadquarters: true, Published: true})
	require.NoError(t, err)
	_, err = f.places.Create(ctx, &dto.LocationRequest{Name: "Closed Site"})
	require.NoError(t, err)

	locations, err := f.public.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Houston Office", locations[0].Name)
	assert.True(t, locations[0].IsHeadquarters)

	_, err = f.team.Create(ctx, &dto.TeamMemberRequest{Name: "B", DisplayOrder: 2, Published: true})
	require.NoError(t, err)
	_, err = f.team.Create(ctx, &dto.TeamMemberRequest{Name: "A", DisplayOrder: 1, Published: true})
	require.NoError(t, err)

	team, err := f.public.ListTeam(ctx)
	require.NoError(t, err)
	require.Len(t, team, 2)
	assert.Equal(t, "A", team[0].Name)

	for i, title := range []string{"One", "Two", "Three", "Four"} {
		_, err := f.projects.Create(ctx, &dto.ProjectRequest{Title: title, Featured: true, Published: true})
		require.NoError(t, err, i)
	}
	_, err = f.catalog.Create(ctx, &dto.ServiceRequest{Name: "Electrical", Published: true})
	require.NoError(t, err)

	home, err := f.public.Home(ctx)
	require.NoError(t, err)
	assert.Len(t, home.Services, 1)
	assert.Len(t, home.FeaturedProjects, 3)
	assert.Empty(t, home.LatestNews)
}
