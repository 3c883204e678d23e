// Package form defines the caregiver-reported input record and its
// validation. The scorer consumes a validated Values and never re-checks
// ranges; everything user-facing goes through a Draft first.
package form

import (
	"fmt"
)

// ContentType categorizes what the child watches.
type ContentType string

// Content type values.
const (
	ContentEducational    ContentType = "educational"
	ContentNonEducational ContentType = "non-educational"
	ContentBackground     ContentType = "background"
	ContentInteractive    ContentType = "interactive"
)

// Involvement categorizes how the caregiver participates during screen time.
type Involvement string

// Parental involvement values.
const (
	InvolvementInstructive Involvement = "instructive"
	InvolvementCoViewing   Involvement = "co-viewing"
	InvolvementUnmediated  Involvement = "unmediated"
)

// Declared input ranges enforced by validation.
const (
	MinAgeMonths      = 12
	MaxAgeMonths      = 60
	MaxBackgroundFreq = 5.0
)

// Values is the validated nine-field input record. Immutable once built.
type Values struct {
	ContentType          ContentType `json:"content_type"          yaml:"content_type"`
	Duration             float64     `json:"duration"              yaml:"duration"`              // hours/day
	Frequency            float64     `json:"frequency"             yaml:"frequency"`             // sessions/week
	AgeMonths            int         `json:"age_months"            yaml:"age_months"`            // child age in months
	ParentalInvolvement  Involvement `json:"parental_involvement"  yaml:"parental_involvement"`
	SimultaneousUse      bool        `json:"simultaneous_use"      yaml:"simultaneous_use"`
	BackgroundFreq       float64     `json:"background_freq"       yaml:"background_freq"`       // 0..5
	MaternalScreenTime   float64     `json:"maternal_screen_time"  yaml:"maternal_screen_time"`  // hours/day
	MaternalMentalHealth bool        `json:"maternal_mental_health" yaml:"maternal_mental_health"`
}

// Draft mirrors Values with every field optional, as decoded from a half
// filled web form, a YAML file, or CLI flags. Pointer fields distinguish
// "absent" from zero.
type Draft struct {
	ContentType          *ContentType `json:"content_type,omitempty"          yaml:"content_type,omitempty"`
	Duration             *float64     `json:"duration,omitempty"              yaml:"duration,omitempty"`
	Frequency            *float64     `json:"frequency,omitempty"             yaml:"frequency,omitempty"`
	AgeMonths            *int         `json:"age_months,omitempty"            yaml:"age_months,omitempty"`
	ParentalInvolvement  *Involvement `json:"parental_involvement,omitempty"  yaml:"parental_involvement,omitempty"`
	SimultaneousUse      *bool        `json:"simultaneous_use,omitempty"      yaml:"simultaneous_use,omitempty"`
	BackgroundFreq       *float64     `json:"background_freq,omitempty"       yaml:"background_freq,omitempty"`
	MaternalScreenTime   *float64     `json:"maternal_screen_time,omitempty"  yaml:"maternal_screen_time,omitempty"`
	MaternalMentalHealth *bool        `json:"maternal_mental_health,omitempty" yaml:"maternal_mental_health,omitempty"`
}

// HasInput reports whether any field has been filled in. Callers use this
// to keep submission disabled on an untouched form.
func (d Draft) HasInput() bool {
	return d.ContentType != nil ||
		d.Duration != nil ||
		d.Frequency != nil ||
		d.AgeMonths != nil ||
		d.ParentalInvolvement != nil ||
		d.SimultaneousUse != nil ||
		d.BackgroundFreq != nil ||
		d.MaternalScreenTime != nil ||
		d.MaternalMentalHealth != nil
}

// Validate checks required-ness and declared ranges and returns the
// validated record. The first violation wins.
func (d Draft) Validate() (Values, error) {
	switch {
	case d.ContentType == nil:
		return Values{}, NewFieldError("content_type", ErrMissingField)
	case d.Duration == nil:
		return Values{}, NewFieldError("duration", ErrMissingField)
	case d.Frequency == nil:
		return Values{}, NewFieldError("frequency", ErrMissingField)
	case d.AgeMonths == nil:
		return Values{}, NewFieldError("age_months", ErrMissingField)
	case d.ParentalInvolvement == nil:
		return Values{}, NewFieldError("parental_involvement", ErrMissingField)
	case d.SimultaneousUse == nil:
		return Values{}, NewFieldError("simultaneous_use", ErrMissingField)
	case d.BackgroundFreq == nil:
		return Values{}, NewFieldError("background_freq", ErrMissingField)
	case d.MaternalScreenTime == nil:
		return Values{}, NewFieldError("maternal_screen_time", ErrMissingField)
	case d.MaternalMentalHealth == nil:
		return Values{}, NewFieldError("maternal_mental_health", ErrMissingField)
	}

	if !validContentType(*d.ContentType) {
		return Values{}, NewFieldError("content_type", ErrInvalidEnum)
	}
	if !validInvolvement(*d.ParentalInvolvement) {
		return Values{}, NewFieldError("parental_involvement", ErrInvalidEnum)
	}
	if *d.Duration < 0 {
		return Values{}, NewFieldError("duration", ErrOutOfRange)
	}
	if *d.Frequency < 0 {
		return Values{}, NewFieldError("frequency", ErrOutOfRange)
	}
	if *d.AgeMonths < MinAgeMonths || *d.AgeMonths > MaxAgeMonths {
		return Values{}, NewFieldError("age_months", ErrOutOfRange)
	}
	if *d.BackgroundFreq < 0 || *d.BackgroundFreq > MaxBackgroundFreq {
		return Values{}, NewFieldError("background_freq", ErrOutOfRange)
	}
	if *d.MaternalScreenTime < 0 {
		return Values{}, NewFieldError("maternal_screen_time", ErrOutOfRange)
	}

	return Values{
		ContentType:          *d.ContentType,
		Duration:             *d.Duration,
		Frequency:            *d.Frequency,
		AgeMonths:            *d.AgeMonths,
		ParentalInvolvement:  *d.ParentalInvolvement,
		SimultaneousUse:      *d.SimultaneousUse,
		BackgroundFreq:       *d.BackgroundFreq,
		MaternalScreenTime:   *d.MaternalScreenTime,
		MaternalMentalHealth: *d.MaternalMentalHealth,
	}, nil
}

func validContentType(c ContentType) bool {
	switch c {
	case ContentEducational, ContentNonEducational, ContentBackground, ContentInteractive:
		return true
	default:
		return false
	}
}

func validInvolvement(i Involvement) bool {
	switch i {
	case InvolvementInstructive, InvolvementCoViewing, InvolvementUnmediated:
		return true
	default:
		return false
	}
}

// FieldError carries the offending field name alongside the violation kind.
type FieldError struct {
	Field string
	Kind  error
}

// NewFieldError builds a FieldError for a field and violation kind.
func NewFieldError(field string, kind error) *FieldError {
	return &FieldError{Field: field, Kind: kind}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Kind)
}

func (e *FieldError) Unwrap() error { return e.Kind }
