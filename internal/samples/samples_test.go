package samples

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func validResult() AssessResult {
	return AssessResult{
		Scores: map[string]float64{
			"vocabulary": 6, "mental_verb": 7, "expressive": 6,
			"verbal_interaction": 7, "sentence_comp": 6, "social_lang": 5,
		},
		Average:     37.0 / 6.0,
		HarmLevel:   "Medium",
		Suggestions: "Monitor usage; add more parental involvement for better outcomes.",
	}
}

func TestGenerateSingleForm(t *testing.T) {
	convey.Convey("Given the form generator", t, func() {
		convey.Convey("When many forms are generated", func() {
			contentTypes := map[string]bool{
				"educational": true, "non-educational": true,
				"background": true, "interactive": true,
			}
			involvements := map[string]bool{
				"instructive": true, "co-viewing": true, "unmediated": true,
			}

			convey.Convey("Then every form carries valid values", func() {
				for i := 0; i < 200; i++ {
					f := generateSingleForm()
					convey.So(f.SubmissionID, convey.ShouldNotBeEmpty)
					convey.So(contentTypes[f.ContentType], convey.ShouldBeTrue)
					convey.So(involvements[f.ParentalInvolvement], convey.ShouldBeTrue)
					convey.So(f.AgeMonths, convey.ShouldBeBetweenOrEqual, 12, 60)
					convey.So(f.Duration, convey.ShouldBeGreaterThanOrEqualTo, 0)
					convey.So(f.Frequency, convey.ShouldBeGreaterThanOrEqualTo, 0)
					convey.So(f.BackgroundFreq, convey.ShouldBeBetweenOrEqual, 0, 5)
					convey.So(f.MaternalScreenTime, convey.ShouldBeGreaterThanOrEqualTo, 0)
				}
			})
		})
	})
}

func TestVerifySingleResult(t *testing.T) {
	convey.Convey("Given result verification", t, func() {
		convey.Convey("When the result is internally consistent", func() {
			convey.So(verifySingleResult(validResult()), convey.ShouldBeNil)
		})

		convey.Convey("When an axis is missing", func() {
			res := validResult()
			delete(res.Scores, "vocabulary")
			convey.So(verifySingleResult(res), convey.ShouldNotBeNil)
		})

		convey.Convey("When an axis is out of range", func() {
			res := validResult()
			res.Scores["vocabulary"] = 11
			convey.So(verifySingleResult(res), convey.ShouldNotBeNil)
		})

		convey.Convey("When the harm level contradicts the average", func() {
			res := validResult()
			res.HarmLevel = "Low"
			convey.So(verifySingleResult(res), convey.ShouldNotBeNil)
		})

		convey.Convey("When the suggestion text is empty", func() {
			res := validResult()
			res.Suggestions = ""
			convey.So(verifySingleResult(res), convey.ShouldNotBeNil)
		})
	})
}

func TestClassify(t *testing.T) {
	convey.Convey("Given the harm-level cross check", t, func() {
		convey.Convey("Then the bands match the service thresholds", func() {
			convey.So(classify(7.01), convey.ShouldEqual, "Low")
			convey.So(classify(7.0), convey.ShouldEqual, "Medium")
			convey.So(classify(4.01), convey.ShouldEqual, "Medium")
			convey.So(classify(4.0), convey.ShouldEqual, "High")
			convey.So(classify(0), convey.ShouldEqual, "High")
		})
	})
}
