package implementation

import (
	"context"
	"testing"
	"time"

	"industrial-site-be/internal/entity"
	"industrial-site-be/internal/mapper"
	"industrial-site-be/internal/model"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/metrics"
	"industrial-site-be/internal/repository/contract"
	"industrial-site-be/internal/repository/scope"
	"industrial-site-be/internal/repository/specification"
	"industrial-site-be/pkg/database"
	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewInMemory(model.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func TestServiceRepositoryRoundTripsDocuments(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewServiceRepository(db, mapper.NewDocumentCodec(logger.NewNopLogger(), metrics.New()))

	description := richtext.NewDocument(
		richtext.Heading(2, richtext.Text("Scope")),
		richtext.Paragraph(richtext.Text("Certified ", richtext.Bold()), richtext.Text("welding crews.")),
	)
	svc := &entity.Service{Id: uuid.New(), Name: "Welding", Slug: "welding", Description: description, Published: true}
	require.NoError(t, repo.Create(ctx, svc))

	found, err := repo.FindOne(ctx, specification.BySlug{Slug: "welding"})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, description, found.Description)
	assert.NotNil(t, found.UpdatedAt)

	missing, err := repo.FindOne(ctx, specification.BySlug{Slug: "painting"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceRepositorySpecificationsAndSoftDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewServiceRepository(db, mapper.NewDocumentCodec(nil, nil))

	for i, name := range []string{"Coatings", "Scaffolding", "Insulation"} {
		require.NoError(t, repo.Create(ctx, &entity.Service{
			Id:           uuid.New(),
			Name:         name,
			Slug:         name,
			Description:  richtext.EmptyDocument(),
			DisplayOrder: 3 - i,
			Published:    name != "Insulation",
		}))
	}

	published, err := repo.FindAll(ctx, specification.Published{}, specification.Scoped{Scope: scope.OrderByDisplayOrder})
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, "Scaffolding", published[0].Name)
	assert.Equal(t, "Coatings", published[1].Name)

	require.NoError(t, repo.Delete(ctx, published[0].Id))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSlugUniqueIndexRejectsLiveDuplicates(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewMarketRepository(db, mapper.NewDocumentCodec(nil, nil))

	first := &entity.Market{Id: uuid.New(), Name: "Power", Slug: "power", Description: richtext.EmptyDocument()}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &entity.Market{Id: uuid.New(), Name: "Power 2", Slug: "power", Description: richtext.EmptyDocument()})
	assert.ErrorIs(t, err, contract.ErrDuplicateKey)

	second := &entity.Market{Id: uuid.New(), Name: "Utilities", Slug: "utilities", Description: richtext.EmptyDocument()}
	require.NoError(t, repo.Create(ctx, second))
	second.Slug = "power"
	assert.ErrorIs(t, repo.Update(ctx, second), contract.ErrDuplicateKey)

	// A soft-deleted record releases its slug.
	require.NoError(t, repo.Delete(ctx, first.Id))
	require.NoError(t, repo.Create(ctx, &entity.Market{Id: uuid.New(), Name: "Power", Slug: "power", Description: richtext.EmptyDocument()}))
}

func TestSubServiceSlugIsUniquePerService(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewSubServiceRepository(db, mapper.NewDocumentCodec(nil, nil))
	parentA, parentB := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.SubService{Id: uuid.New(), ServiceId: parentA, Name: "Audits", Slug: "audits", Description: richtext.EmptyDocument()}))
	require.NoError(t, repo.Create(ctx, &entity.SubService{Id: uuid.New(), ServiceId: parentB, Name: "Audits", Slug: "audits", Description: richtext.EmptyDocument()}))

	err := repo.Create(ctx, &entity.SubService{Id: uuid.New(), ServiceId: parentA, Name: "Audits", Slug: "audits", Description: richtext.EmptyDocument()})
	assert.ErrorIs(t, err, contract.ErrDuplicateKey)
}

func TestMalformedStoredDocumentIsReplacedAndCounted(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	reg := metrics.New()
	repo := NewMarketRepository(db, mapper.NewDocumentCodec(logger.NewNopLogger(), reg))

	id := uuid.New()
	require.NoError(t, db.Create(&model.Market{
		Id:          id,
		Name:        "Refining",
		Slug:        "refining",
		Description: datatypes.JSON(`{"type":"paragraph","content":[]}`),
	}).Error)

	found, err := repo.FindOne(ctx, specification.ByID{ID: id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, richtext.EmptyDocument(), found.Description)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.MalformedDocuments.WithLabelValues("market", "description")))
}

func TestJobPostingExpirySpecifications(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewJobPostingRepository(db, mapper.NewDocumentCodec(nil, nil))
	now := time.Now()
	past, future := now.Add(-time.Hour), now.Add(time.Hour)

	for _, j := range []*entity.JobPosting{
		{Id: uuid.New(), Title: "Open", Slug: "open", Published: true},
		{Id: uuid.New(), Title: "Later", Slug: "later", Published: true, ExpiresAt: &future},
		{Id: uuid.New(), Title: "Gone", Slug: "gone", Published: true, ExpiresAt: &past},
	} {
		j.Description = richtext.EmptyDocument()
		j.EmploymentType = entity.EmploymentFullTime
		require.NoError(t, repo.Create(ctx, j))
	}

	active, err := repo.FindAll(ctx, specification.Published{}, specification.NotExpired{At: now})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	expired, err := repo.FindAll(ctx, specification.Expired{At: now})
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "gone", expired[0].Slug)
	assert.Nil(t, expired[0].Requirements)
}

func TestProjectImagesDeleteByProject(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewProjectImageRepository(db)
	projectID := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.ProjectImage{Id: uuid.New(), ProjectId: projectID, ImageURL: "https://cdn.example.com/p.jpg", DisplayOrder: i}))
	}
	require.NoError(t, repo.Create(ctx, &entity.ProjectImage{Id: uuid.New(), ProjectId: uuid.New(), ImageURL: "https://cdn.example.com/q.jpg"}))

	require.NoError(t, repo.DeleteByProjectId(ctx, projectID))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
