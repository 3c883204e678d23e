package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/parvinm/screenwise/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given a bounded deduper", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
		ctx := context.Background()

		Convey("When an id is recorded for the first time", func() {
			seen := d.SeenAndRecord(ctx, "a")

			Convey("Then it reports not seen and tracks it", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And the second record of the same id reports seen", func() {
				So(d.SeenAndRecord(ctx, "a"), ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When more ids than the bound are recorded", func() {
			for _, id := range []string{"a", "b", "c", "d"} {
				So(d.SeenAndRecord(ctx, id), ShouldBeFalse)
			}

			Convey("Then the oldest id is evicted", func() {
				So(d.Size(), ShouldEqual, 3)
				So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse) // forgotten, re-recorded
				So(d.SeenAndRecord(ctx, "d"), ShouldBeTrue)  // still tracked
			})
		})
	})
}

func TestUnrecord(t *testing.T) {
	Convey("Given a deduper with a recorded id", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(10))
		ctx := context.Background()
		So(d.SeenAndRecord(ctx, "x"), ShouldBeFalse)

		Convey("When the id is unrecorded", func() {
			d.Unrecord(ctx, "x")

			Convey("Then it can be recorded again", func() {
				So(d.Size(), ShouldEqual, 0)
				So(d.SeenAndRecord(ctx, "x"), ShouldBeFalse)
			})
		})

		Convey("When an unknown id is unrecorded", func() {
			d.Unrecord(ctx, "never-seen")

			Convey("Then nothing changes", func() {
				So(d.Size(), ShouldEqual, 1)
			})
		})
	})
}

func TestUnboundedMode(t *testing.T) {
	Convey("Given an unbounded deduper", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))
		ctx := context.Background()

		Convey("When many ids are recorded", func() {
			for i := 0; i < 1000; i++ {
				So(d.SeenAndRecord(ctx, fmt.Sprintf("id-%d", i)), ShouldBeFalse)
			}

			Convey("Then none are evicted", func() {
				So(d.Size(), ShouldEqual, 1000)
				So(d.SeenAndRecord(ctx, "id-0"), ShouldBeTrue)
			})
		})
	})
}
