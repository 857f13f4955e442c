package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/stitchlog/backend/models"
)

func TestNoteAddUpdateDelete(t *testing.T) {
	db := testDB(t)
	projects := NewProjectRepo(db, NewTagRepo(db))
	notes := NewNoteRepo(db)

	project, err := projects.Create(CreateProjectInput{Name: "Socks"})
	require.NoError(t, err)

	note := models.Note{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Content:   "turned the heel",
		Photos:    datatypes.NewJSONSlice([]string{"mem://photos/p1.jpg"}),
	}
	require.NoError(t, notes.Add(&note))

	found, err := notes.FindByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "turned the heel", found.Content)
	require.Len(t, found.Photos, 1)

	updated, err := notes.Update(note.ID, "turned both heels", nil)
	require.NoError(t, err)
	assert.Equal(t, "turned both heels", updated.Content)
	assert.Empty(t, updated.Photos)
	assert.False(t, updated.UpdatedAt.Before(found.UpdatedAt))

	require.NoError(t, notes.Delete(note.ID))
	gone, err := notes.FindByID(note.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestNoteFindByIDMissing(t *testing.T) {
	notes := NewNoteRepo(testDB(t))

	found, err := notes.FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestNeedleInventoryOrderedByTypeThenSize(t *testing.T) {
	repo := NewNeedleInventoryRepo(testDB(t))

	entries := []models.NeedleInventory{
		{ID: uuid.New(), Size: "US 9", Type: models.NeedleStraight},
		{ID: uuid.New(), Size: "US 7", Type: models.NeedleCircular},
		{ID: uuid.New(), Size: "US 2", Type: models.NeedleCircular},
	}
	for i := range entries {
		require.NoError(t, repo.Add(&entries[i]))
	}

	needles, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, needles, 3)
	assert.Equal(t, models.NeedleCircular, needles[0].Type)
	assert.Equal(t, "US 2", needles[0].Size)
	assert.Equal(t, models.NeedleStraight, needles[2].Type)

	require.NoError(t, repo.Delete(entries[0].ID))
	needles, err = repo.FindAll()
	require.NoError(t, err)
	require.Len(t, needles, 2)
}

func TestPhotoRepoRoundTrip(t *testing.T) {
	db := testDB(t)
	projects := NewProjectRepo(db, NewTagRepo(db))
	photos := NewPhotoRepo(db)

	project, err := projects.Create(CreateProjectInput{Name: "Hat"})
	require.NoError(t, err)

	photo := models.Photo{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		StoragePath: "mem://photos/hat/1.jpg",
		PhotoType:   models.PhotoProgress,
	}
	require.NoError(t, photos.Add(&photo))

	found, err := photos.FindByID(photo.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.PhotoProgress, found.PhotoType)

	byProject, err := photos.FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	require.NoError(t, photos.Delete(photo.ID))
	gone, err := photos.FindByID(photo.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
