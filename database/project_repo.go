package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stitchlog/backend/errs"
	"github.com/stitchlog/backend/models"
)

// ProjectRepo is the aggregate store: every mutation goes through it as one
// logical unit covering the project row and its owned child collections.
type ProjectRepo struct {
	db   *gorm.DB
	tags *TagRepo
}

func NewProjectRepo(db *gorm.DB, tags *TagRepo) *ProjectRepo {
	return &ProjectRepo{db: db, tags: tags}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

func (r *ProjectRepo) preloaded() *gorm.DB {
	return r.db.
		Preload("Pattern").
		Preload("Yarns").
		Preload("Needles").
		Preload("Photos").
		Preload("Notes").
		Preload("ProjectTags.Tag")
}

// FindAll returns all projects with their children, newest first.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	if err := r.preloaded().Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	for _, p := range projects {
		p.CollapseTags()
	}
	return projects, nil
}

// FindByID returns the fully populated aggregate, or nil when no project has
// that id. Absence is not an error here; handlers decide what a miss means.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.preloaded().First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	project.CollapseTags()
	return &project, nil
}

// Create persists the project row and whatever children the command carries,
// then re-reads and returns the complete aggregate. If any child insert
// fails the just-created project row is deleted again (cascading), so a
// failed create never leaves a partial aggregate behind.
func (r *ProjectRepo) Create(in CreateProjectInput) (*models.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}
	if in.Status == "" {
		in.Status = models.DefaultStatus()
	}

	project := models.Project{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	}
	if err := r.db.Create(&project).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	if err := r.insertChildren(project.ID, in); err != nil {
		if delErr := r.Delete(project.ID); delErr != nil {
			log.Error().Err(delErr).Str("projectID", project.ID.String()).
				Msg("Failed to roll back partially created project")
		}
		return nil, err
	}

	return r.FindByID(project.ID)
}

func (r *ProjectRepo) insertChildren(projectID uuid.UUID, in CreateProjectInput) error {
	if in.Pattern != nil && in.Pattern.Name != "" {
		if err := r.db.Create(newPatternRow(projectID, *in.Pattern)).Error; err != nil {
			return errs.NewPartialWriteError("project", "pattern", err)
		}
	}
	if len(in.Yarns) > 0 {
		if err := r.db.Create(newYarnRows(projectID, in.Yarns)).Error; err != nil {
			return errs.NewPartialWriteError("project", "yarns", err)
		}
	}
	if len(in.Needles) > 0 {
		if err := r.db.Create(newNeedleRows(projectID, in.Needles)).Error; err != nil {
			return errs.NewPartialWriteError("project", "needles", err)
		}
	}
	for _, name := range in.Tags {
		if err := associateTag(r.db, projectID, name); err != nil {
			return errs.NewPartialWriteError("project", "tags", err)
		}
	}
	return nil
}

// Update applies only the fields the command carries: scalar fields when
// their pointer is set, and a full replacement of each child collection that
// is present (even if empty). Returns the re-read aggregate.
func (r *ProjectRepo) Update(id uuid.UUID, in UpdateProjectInput) (*models.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	existing, err := r.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("project")
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if len(updates) > 0 {
		if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, errs.NewDatabaseError("update", "project", err)
		}
	}

	if in.Pattern != nil {
		if err := r.replacePattern(id, *in.Pattern); err != nil {
			return nil, err
		}
	}
	if in.Yarns != nil {
		if err := r.replaceYarns(id, *in.Yarns); err != nil {
			return nil, err
		}
	}
	if in.Needles != nil {
		if err := r.replaceNeedles(id, *in.Needles); err != nil {
			return nil, err
		}
	}
	if in.Tags != nil {
		if err := r.replaceTags(id, *in.Tags); err != nil {
			return nil, err
		}
	}

	return r.FindByID(id)
}

// UpdateStatus moves a project to any recognized status. There is no
// transition graph: completed back to idea is as legal as anything else.
func (r *ProjectRepo) UpdateStatus(id uuid.UUID, status models.Status) (*models.Project, error) {
	if !models.ValidStatus(status) {
		return nil, errs.NewInvalidStatusError(string(status))
	}

	existing, err := r.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("project")
	}

	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, errs.NewDatabaseError("update status of", "project", err)
	}
	return r.FindByID(id)
}

// Delete removes the project and every owned child row and tag association.
// Shared tag rows stay: other projects may reference them. Children are
// deleted explicitly inside one transaction rather than trusting the engine
// to cascade, so the behavior is identical on every dialect we run on.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		children := []interface{}{
			&models.ProjectTag{},
			&models.Photo{},
			&models.Note{},
			&models.Needle{},
			&models.Yarn{},
			&models.Pattern{},
		}
		for _, child := range children {
			if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// Collection replacement: the old set is superseded wholesale, never merged
// field-by-field. Each replacement runs delete-then-insert inside its own
// transaction, so a single collection can't be left half-written; a failure
// after sibling collections already committed surfaces as a partial write.

func (r *ProjectRepo) replacePattern(projectID uuid.UUID, in PatternInput) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Pattern{}).Error; err != nil {
			return err
		}
		// present but empty name means delete without re-create
		if in.Name == "" {
			return nil
		}
		return tx.Create(newPatternRow(projectID, in)).Error
	})
	if err != nil {
		return errs.NewPartialWriteError("project", "pattern", err)
	}
	return nil
}

func (r *ProjectRepo) replaceYarns(projectID uuid.UUID, yarns []YarnInput) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Yarn{}).Error; err != nil {
			return err
		}
		if len(yarns) == 0 {
			return nil
		}
		return tx.Create(newYarnRows(projectID, yarns)).Error
	})
	if err != nil {
		return errs.NewPartialWriteError("project", "yarns", err)
	}
	return nil
}

func (r *ProjectRepo) replaceNeedles(projectID uuid.UUID, needles []NeedleInput) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Needle{}).Error; err != nil {
			return err
		}
		if len(needles) == 0 {
			return nil
		}
		return tx.Create(newNeedleRows(projectID, needles)).Error
	})
	if err != nil {
		return errs.NewPartialWriteError("project", "needles", err)
	}
	return nil
}

func (r *ProjectRepo) replaceTags(projectID uuid.UUID, names []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}
		for _, name := range names {
			if err := associateTag(tx, projectID, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errs.NewPartialWriteError("project", "tags", err)
	}
	return nil
}

func associateTag(db *gorm.DB, projectID uuid.UUID, name string) error {
	tag, err := upsertTag(db, name)
	if err != nil {
		return err
	}
	pt := models.ProjectTag{ProjectID: projectID, TagID: tag.ID}
	// Duplicate names in one command collapse to one association row.
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&pt).Error
}

func newPatternRow(projectID uuid.UUID, in PatternInput) *models.Pattern {
	return &models.Pattern{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      in.Name,
		Designer:  in.Designer,
		SourceURL: in.SourceURL,
		Metadata:  in.Metadata,
	}
}

func newYarnRows(projectID uuid.UUID, yarns []YarnInput) []models.Yarn {
	rows := make([]models.Yarn, len(yarns))
	for i, y := range yarns {
		rows[i] = models.Yarn{
			ID:           uuid.New(),
			ProjectID:    projectID,
			Brand:        y.Brand,
			Colorway:     y.Colorway,
			Weight:       y.Weight,
			FiberContent: y.FiberContent,
			Yardage:      y.Yardage,
			Notes:        y.Notes,
		}
	}
	return rows
}

func newNeedleRows(projectID uuid.UUID, needles []NeedleInput) []models.Needle {
	rows := make([]models.Needle, len(needles))
	for i, n := range needles {
		rows[i] = models.Needle{
			ID:        uuid.New(),
			ProjectID: projectID,
			Size:      n.Size,
			Type:      n.Type,
			Length:    n.Length,
		}
	}
	return rows
}
