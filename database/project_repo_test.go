package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/stitchlog/backend/errs"
	"github.com/stitchlog/backend/models"
)

func testProjectRepo(t *testing.T) *ProjectRepo {
	t.Helper()
	db := testDB(t)
	return NewProjectRepo(db, NewTagRepo(db))
}

func strPtr(s string) *string { return &s }

func assertStatusCode(t *testing.T, err error, want int) {
	t.Helper()
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, want, apiErr.StatusCode)
}

func TestCreateProjectFullAggregate(t *testing.T) {
	repo := testProjectRepo(t)

	project, err := repo.Create(CreateProjectInput{
		Name:        "Winter Cardigan",
		Description: "Top-down raglan",
		Status:      "in-progress",
		Pattern: &PatternInput{
			Name:      "Ranger Cardigan",
			Designer:  "Jared Flood",
			SourceURL: "https://www.ravelry.com/patterns/library/ranger-cardigan",
			Metadata:  datatypes.JSONMap{"craft": "knitting"},
		},
		Yarns: []YarnInput{
			{Brand: "Brooklyn Tweed", Colorway: "Fossil", Weight: models.YarnWeightWorsted, Yardage: 1200},
		},
		Needles: []NeedleInput{
			{Size: "US 7", Type: models.NeedleCircular, Length: strPtr("32in")},
		},
		Tags: []string{"cardigan", "gift"},
	})
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, "Winter Cardigan", project.Name)
	assert.Equal(t, models.Status("in-progress"), project.Status)

	require.NotNil(t, project.Pattern)
	assert.Equal(t, "Ranger Cardigan", project.Pattern.Name)
	assert.Equal(t, "knitting", project.Pattern.Metadata["craft"])

	require.Len(t, project.Yarns, 1)
	assert.Equal(t, 1200.0, project.Yarns[0].Yardage)

	require.Len(t, project.Needles, 1)
	require.NotNil(t, project.Needles[0].Length)
	assert.Equal(t, "32in", *project.Needles[0].Length)

	require.Len(t, project.Tags, 2)
}

func TestCreateProjectDefaultsStatus(t *testing.T) {
	repo := testProjectRepo(t)

	project, err := repo.Create(CreateProjectInput{Name: "Plain Socks"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStatus(), project.Status)
}

func TestCreateProjectRejectsBlankName(t *testing.T) {
	repo := testProjectRepo(t)

	_, err := repo.Create(CreateProjectInput{Name: ""})
	require.Error(t, err)
	assertStatusCode(t, err, 400)
}

func TestCreateProjectRejectsUnknownStatus(t *testing.T) {
	repo := testProjectRepo(t)

	_, err := repo.Create(CreateProjectInput{Name: "Hat", Status: "frogged"})
	require.Error(t, err)
	assertStatusCode(t, err, 400)
}

func TestCreateProjectRejectsNegativeYardage(t *testing.T) {
	repo := testProjectRepo(t)

	_, err := repo.Create(CreateProjectInput{
		Name:  "Hat",
		Yarns: []YarnInput{{Brand: "Malabrigo", Yardage: -10}},
	})
	require.Error(t, err)
	assertStatusCode(t, err, 400)
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	repo := testProjectRepo(t)

	project, err := repo.FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestFindAllNewestFirst(t *testing.T) {
	repo := testProjectRepo(t)

	_, err := repo.Create(CreateProjectInput{Name: "First"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = repo.Create(CreateProjectInput{Name: "Second"})
	require.NoError(t, err)

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Second", projects[0].Name)
	assert.Equal(t, "First", projects[1].Name)
}

func TestUpdateScalarsOnly(t *testing.T) {
	repo := testProjectRepo(t)

	created, err := repo.Create(CreateProjectInput{
		Name:  "Shawl",
		Yarns: []YarnInput{{Brand: "Madelinetosh", Yardage: 400}},
		Tags:  []string{"lace"},
	})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, UpdateProjectInput{
		Name:        strPtr("Estonian Shawl"),
		Description: strPtr("nupps everywhere"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Estonian Shawl", updated.Name)
	assert.Equal(t, "nupps everywhere", updated.Description)
	// Collections the command did not carry stay untouched.
	require.Len(t, updated.Yarns, 1)
	require.Len(t, updated.Tags, 1)
}

func TestUpdateOmittedVersusEmptyYarns(t *testing.T) {
	repo := testProjectRepo(t)

	created, err := repo.Create(CreateProjectInput{
		Name:  "Mittens",
		Yarns: []YarnInput{{Brand: "Rauma", Yardage: 150}},
	})
	require.NoError(t, err)

	// Omitted: nil pointer leaves the collection alone.
	updated, err := repo.Update(created.ID, UpdateProjectInput{Name: strPtr("Selbu Mittens")})
	require.NoError(t, err)
	require.Len(t, updated.Yarns, 1)

	// Present but empty: clears the collection.
	updated, err = repo.Update(created.ID, UpdateProjectInput{Yarns: &[]YarnInput{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Yarns)
}

func TestUpdateReplacesYarnsWholesale(t *testing.T) {
	repo := testProjectRepo(t)

	created, err := repo.Create(CreateProjectInput{
		Name: "Sweater",
		Yarns: []YarnInput{
			{Brand: "Old Brand", Yardage: 100},
			{Brand: "Also Old", Yardage: 200},
		},
	})
	require.NoError(t, err)
	oldIDs := map[uuid.UUID]bool{}
	for _, y := range created.Yarns {
		oldIDs[y.ID] = true
	}

	updated, err := repo.Update(created.ID, UpdateProjectInput{
		Yarns: &[]YarnInput{{Brand: "New Brand", Yardage: 900}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Yarns, 1)
	assert.Equal(t, "New Brand", updated.Yarns[0].Brand)
	assert.False(t, oldIDs[updated.Yarns[0].ID], "replacement must mint a fresh row, not edit in place")
}

func TestUpdatePatternEmptyNameClears(t *testing.T) {
	repo := testProjectRepo(t)

	created, err := repo.Create(CreateProjectInput{
		Name:    "Beanie",
		Pattern: &PatternInput{Name: "Simple Beanie"},
	})
	require.NoError(t, err)
	require.NotNil(t, created.Pattern)

	updated, err := repo.Update(created.ID, UpdateProjectInput{Pattern: &PatternInput{}})
	require.NoError(t, err)
	assert.Nil(t, updated.Pattern)
}

func TestUpdateTagsReplacedButTagRowsSurvive(t *testing.T) {
	db := testDB(t)
	tagRepo := NewTagRepo(db)
	repo := NewProjectRepo(db, tagRepo)

	created, err := repo.Create(CreateProjectInput{
		Name: "Blanket",
		Tags: []string{"baby", "gift"},
	})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, UpdateProjectInput{Tags: &[]string{"gift", "stash-busting"}})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 2)

	// "baby" is detached from the project but stays in the registry.
	all, err := tagRepo.FindAll()
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, tag := range all {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"baby", "gift", "stash-busting"}, names)
}

func TestUpdateMissingProjectReturnsNotFound(t *testing.T) {
	repo := testProjectRepo(t)

	_, err := repo.Update(uuid.New(), UpdateProjectInput{Name: strPtr("Ghost")})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestUpdateStatusAnyToAny(t *testing.T) {
	repo := testProjectRepo(t)

	created, err := repo.Create(CreateProjectInput{Name: "Vest", Status: "completed"})
	require.NoError(t, err)

	// No transition graph: going backwards is legal.
	updated, err := repo.UpdateStatus(created.ID, "idea")
	require.NoError(t, err)
	assert.Equal(t, models.Status("idea"), updated.Status)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	repo := testProjectRepo(t)

	created, err := repo.Create(CreateProjectInput{Name: "Vest"})
	require.NoError(t, err)

	_, err = repo.UpdateStatus(created.ID, "frogged")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidStatus(err))
}

func TestDeleteCascadesChildrenButKeepsTags(t *testing.T) {
	db := testDB(t)
	tagRepo := NewTagRepo(db)
	repo := NewProjectRepo(db, tagRepo)

	created, err := repo.Create(CreateProjectInput{
		Name:    "Scrap Scarf",
		Pattern: &PatternInput{Name: "Garter Scarf"},
		Yarns:   []YarnInput{{Brand: "Scraps", Yardage: 50}},
		Needles: []NeedleInput{{Size: "US 8", Type: models.NeedleStraight}},
		Tags:    []string{"stash-busting"},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	gone, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var yarnCount, patternCount, assocCount int64
	require.NoError(t, db.Model(&models.Yarn{}).Where("project_id = ?", created.ID).Count(&yarnCount).Error)
	require.NoError(t, db.Model(&models.Pattern{}).Where("project_id = ?", created.ID).Count(&patternCount).Error)
	require.NoError(t, db.Model(&models.ProjectTag{}).Where("project_id = ?", created.ID).Count(&assocCount).Error)
	assert.Zero(t, yarnCount)
	assert.Zero(t, patternCount)
	assert.Zero(t, assocCount)

	// The tag itself is shared vocabulary and survives.
	tags, err := tagRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "stash-busting", tags[0].Name)
}

func TestTagsSharedAcrossProjects(t *testing.T) {
	db := testDB(t)
	tagRepo := NewTagRepo(db)
	repo := NewProjectRepo(db, tagRepo)

	first, err := repo.Create(CreateProjectInput{Name: "Socks A", Tags: []string{"socks"}})
	require.NoError(t, err)
	second, err := repo.Create(CreateProjectInput{Name: "Socks B", Tags: []string{"Socks"}})
	require.NoError(t, err)

	require.Len(t, first.Tags, 1)
	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID, "same normalized name must resolve to one tag row")

	tags, err := tagRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func TestDuplicateTagNamesCollapse(t *testing.T) {
	repo := testProjectRepo(t)

	created, err := repo.Create(CreateProjectInput{
		Name: "Cowl",
		Tags: []string{"gift", " GIFT ", "gift"},
	})
	require.NoError(t, err)
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "gift", created.Tags[0].Name)
}
