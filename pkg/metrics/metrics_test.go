package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/parvinm/screenwise/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When a manager is created with options", func() {
			m := metrics.NewManager(
				metrics.WithRegistry(reg),
				metrics.WithNamespace("testns"),
				metrics.WithSubsystem("testsub"),
				metrics.WithHistogramBuckets([]float64{1, 5, 10}),
			)

			Convey("Then all collectors register without panicking", func() {
				So(m, ShouldNotBeNil)
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When the package-level helpers are exercised", func() {
			So(func() {
				metrics.RecordAssessmentScored()
				metrics.RecordDuplicateSubmission()
				metrics.RecordHarmLevel("Low")
				metrics.RecordHarmLevel("High")
				metrics.RecordScoringLatency(1.2)
				metrics.RecordHistoryRecorded()
				metrics.UpdateHistorySize(7)
				metrics.UpdateQueueSize(3)
				metrics.UpdateQueueCapacity(100)
				metrics.UpdateQueueUtilization(0.03)
				metrics.RecordQueueEnqueue()
				metrics.RecordQueueDequeue()
				metrics.RecordQueueEnqueueError()
				metrics.UpdateWorkerCount(4)
				metrics.RecordWorkerError()
				metrics.RecordWorkerProcessingLatency(0.5)
				metrics.RecordHTTPRequest("assess", "POST", "200")
				metrics.RecordHTTPRequestDuration("assess", "POST", "200", 2.5)
				metrics.RecordErrorByComponent("queue", "full")
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
		})

		Convey("When the registry is gathered", func() {
			families, err := metrics.GetRegistry().Gather()

			Convey("Then assessment metrics are present", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["screenwise_assessment_assessments_scored_total"], ShouldBeTrue)
				So(names["screenwise_assessment_harm_level_total"], ShouldBeTrue)
				So(names["screenwise_assessment_queue_size"], ShouldBeTrue)
			})
		})
	})
}
