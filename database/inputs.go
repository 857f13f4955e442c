package database

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"github.com/stitchlog/backend/models"
)

// PatternInput, YarnInput and NeedleInput mirror the child rows without
// identities; the store stamps the project id and fresh ids on insert.
type PatternInput struct {
	Name      string            `json:"name"`
	Designer  string            `json:"designer"`
	SourceURL string            `json:"source_url"`
	Metadata  datatypes.JSONMap `json:"metadata"`
}

type YarnInput struct {
	Brand        string  `json:"brand"`
	Colorway     string  `json:"colorway"`
	Weight       string  `json:"weight"`
	FiberContent string  `json:"fiber_content"`
	Yardage      float64 `json:"yardage"`
	Notes        string  `json:"notes"`
}

func (in YarnInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Yardage, validation.Min(0.0)),
	)
}

type NeedleInput struct {
	Size   string            `json:"size"`
	Type   models.NeedleType `json:"type"`
	Length *string           `json:"length"`
}

func (in NeedleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Size, validation.Required),
		validation.Field(&in.Type, validation.Required, validation.By(needleTypeRule)),
	)
}

// CreateProjectInput is the aggregate-create command. Status defaults to the
// first configured status when empty.
type CreateProjectInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	Pattern     *PatternInput `json:"pattern"`
	Yarns       []YarnInput   `json:"yarns"`
	Needles     []NeedleInput `json:"needles"`
	Tags        []string      `json:"tags"`
}

func (in CreateProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Status, validation.By(statusRule)),
		validation.Field(&in.Yarns),
		validation.Field(&in.Needles),
	)
}

// UpdateProjectInput is the aggregate-update command. Every field is
// optional, and for the child collections a nil pointer means "leave this
// collection unchanged" while a pointer to an empty slice means "clear it".
// That distinction is carried by the command shape, never inferred from
// emptiness.
type UpdateProjectInput struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Status      *models.Status `json:"status"`
	Pattern     *PatternInput  `json:"pattern"`
	Yarns       *[]YarnInput   `json:"yarns"`
	Needles     *[]NeedleInput `json:"needles"`
	Tags        *[]string      `json:"tags"`
}

func (in UpdateProjectInput) Validate() error {
	if in.Name != nil && *in.Name == "" {
		return validation.Errors{"name": errors.New("cannot be blank")}
	}
	if in.Status != nil {
		if err := statusRule(*in.Status); err != nil {
			return validation.Errors{"status": err}
		}
	}
	if in.Yarns != nil {
		if err := validation.Validate(*in.Yarns); err != nil {
			return err
		}
	}
	if in.Needles != nil {
		if err := validation.Validate(*in.Needles); err != nil {
			return err
		}
	}
	return nil
}

// NoteInput carries a note's mutable fields for both create and update.
type NoteInput struct {
	Content string   `json:"content"`
	Photos  []string `json:"photos"`
}

func (in NoteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Content, validation.Required),
	)
}

// NeedleInventoryInput adds an owned-needle preset.
type NeedleInventoryInput struct {
	Size   string            `json:"size"`
	Type   models.NeedleType `json:"type"`
	Length *string           `json:"length"`
}

func (in NeedleInventoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Size, validation.Required),
		validation.Field(&in.Type, validation.Required, validation.By(needleTypeRule)),
	)
}

func statusRule(value interface{}) error {
	s, _ := value.(models.Status)
	if s == "" || models.ValidStatus(s) {
		return nil
	}
	return errors.New("is not a recognized project status")
}

func needleTypeRule(value interface{}) error {
	t, _ := value.(models.NeedleType)
	if t == "" || models.ValidNeedleType(t) {
		return nil
	}
	return errors.New("is not a recognized needle type")
}
