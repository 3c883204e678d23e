package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/parvinm/screenwise/internal/domain/form"
	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewAssessment(t *testing.T) {
	Convey("Given a validated form and a scoring result", t, func() {
		v := form.Values{
			ContentType:         form.ContentEducational,
			Duration:            1,
			Frequency:           3,
			AgeMonths:           24,
			ParentalInvolvement: form.InvolvementCoViewing,
		}
		res := scoring.Result{HarmLevel: scoring.HarmMedium, Average: 6}

		Convey("When built with an explicit id and timestamp", func() {
			at := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
			a := model.NewAssessment("sub-1", v, res, at)

			Convey("Then both are preserved", func() {
				So(a.ID, ShouldEqual, "sub-1")
				So(a.SubmittedAt, ShouldEqual, at)
				So(a.Values, ShouldResemble, v)
				So(a.Result, ShouldResemble, res)
			})
		})

		Convey("When built without an id", func() {
			a := model.NewAssessment("", v, res, time.Time{})

			Convey("Then a uuid is generated and the timestamp is set", func() {
				_, err := uuid.Parse(a.ID)
				So(err, ShouldBeNil)
				So(a.SubmittedAt.IsZero(), ShouldBeFalse)
			})
		})
	})
}
