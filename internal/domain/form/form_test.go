package form_test

import (
	"testing"

	"github.com/parvinm/screenwise/internal/domain/form"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr[T any](v T) *T { return &v }

func fullDraft() form.Draft {
	return form.Draft{
		ContentType:          ptr(form.ContentEducational),
		Duration:             ptr(1.0),
		Frequency:            ptr(3.0),
		AgeMonths:            ptr(24),
		ParentalInvolvement:  ptr(form.InvolvementCoViewing),
		SimultaneousUse:      ptr(false),
		BackgroundFreq:       ptr(0.0),
		MaternalScreenTime:   ptr(1.0),
		MaternalMentalHealth: ptr(false),
	}
}

func TestDraftHasInput(t *testing.T) {
	Convey("Given draft forms in various states", t, func() {
		Convey("When the draft is empty", func() {
			d := form.Draft{}

			Convey("Then HasInput is false", func() {
				So(d.HasInput(), ShouldBeFalse)
			})
		})

		Convey("When a single field is set", func() {
			d := form.Draft{Duration: ptr(0.0)}

			Convey("Then HasInput is true even for a zero value", func() {
				So(d.HasInput(), ShouldBeTrue)
			})
		})

		Convey("When every field is set", func() {
			So(fullDraft().HasInput(), ShouldBeTrue)
		})
	})
}

func TestDraftValidate(t *testing.T) {
	Convey("Given a fully populated draft", t, func() {
		d := fullDraft()

		Convey("When validated", func() {
			v, err := d.Validate()

			Convey("Then the validated record mirrors the draft", func() {
				So(err, ShouldBeNil)
				So(v.ContentType, ShouldEqual, form.ContentEducational)
				So(v.Duration, ShouldEqual, 1.0)
				So(v.Frequency, ShouldEqual, 3.0)
				So(v.AgeMonths, ShouldEqual, 24)
				So(v.ParentalInvolvement, ShouldEqual, form.InvolvementCoViewing)
				So(v.SimultaneousUse, ShouldBeFalse)
				So(v.BackgroundFreq, ShouldEqual, 0.0)
				So(v.MaternalScreenTime, ShouldEqual, 1.0)
				So(v.MaternalMentalHealth, ShouldBeFalse)
			})
		})
	})

	Convey("Given drafts with missing fields", t, func() {
		Convey("When content_type is absent", func() {
			d := fullDraft()
			d.ContentType = nil
			_, err := d.Validate()

			Convey("Then the error names the field and the missing kind", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, form.ErrMissingField)
				var fe *form.FieldError
				So(err, ShouldHaveSameTypeAs, fe)
				So(err.(*form.FieldError).Field, ShouldEqual, "content_type")
			})
		})

		Convey("When maternal_mental_health is absent", func() {
			d := fullDraft()
			d.MaternalMentalHealth = nil
			_, err := d.Validate()

			So(err, ShouldWrap, form.ErrMissingField)
			So(err.(*form.FieldError).Field, ShouldEqual, "maternal_mental_health")
		})
	})

	Convey("Given drafts with out-of-range values", t, func() {
		cases := []struct {
			name   string
			mutate func(*form.Draft)
			field  string
		}{
			{"negative duration", func(d *form.Draft) { d.Duration = ptr(-0.5) }, "duration"},
			{"negative frequency", func(d *form.Draft) { d.Frequency = ptr(-1.0) }, "frequency"},
			{"age below 12 months", func(d *form.Draft) { d.AgeMonths = ptr(8) }, "age_months"},
			{"age above 60 months", func(d *form.Draft) { d.AgeMonths = ptr(72) }, "age_months"},
			{"background freq above 5", func(d *form.Draft) { d.BackgroundFreq = ptr(5.5) }, "background_freq"},
			{"negative maternal screen time", func(d *form.Draft) { d.MaternalScreenTime = ptr(-2.0) }, "maternal_screen_time"},
		}

		for _, tc := range cases {
			Convey("When validating a draft with "+tc.name, func() {
				d := fullDraft()
				tc.mutate(&d)
				_, err := d.Validate()

				Convey("Then the range violation is reported for "+tc.field, func() {
					So(err, ShouldWrap, form.ErrOutOfRange)
					So(err.(*form.FieldError).Field, ShouldEqual, tc.field)
				})
			})
		}

		Convey("When the age sits exactly on a boundary", func() {
			d := fullDraft()
			d.AgeMonths = ptr(12)
			_, err := d.Validate()
			So(err, ShouldBeNil)

			d.AgeMonths = ptr(60)
			_, err = d.Validate()
			So(err, ShouldBeNil)
		})
	})

	Convey("Given drafts with unrecognized enum values", t, func() {
		Convey("When the content type is unknown", func() {
			d := fullDraft()
			d.ContentType = ptr(form.ContentType("cartoons"))
			_, err := d.Validate()

			So(err, ShouldWrap, form.ErrInvalidEnum)
			So(err.(*form.FieldError).Field, ShouldEqual, "content_type")
		})

		Convey("When the involvement mode is unknown", func() {
			d := fullDraft()
			d.ParentalInvolvement = ptr(form.Involvement("hovering"))
			_, err := d.Validate()

			So(err, ShouldWrap, form.ErrInvalidEnum)
			So(err.(*form.FieldError).Field, ShouldEqual, "parental_involvement")
		})
	})
}
