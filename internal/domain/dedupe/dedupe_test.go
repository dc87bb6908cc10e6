package dedupe_test

import (
	"fmt"
	"testing"

	dedupe "github.com/okian/podium/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should start empty", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When creating a deduper with a capacity hint", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(100))

			Convey("Then it should still start empty", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording keys", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the key is new", func() {
				seen := d.SeenAndRecord("1992|USA")

				Convey("Then it should return false and record the key", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the key was already seen", func() {
				d.SeenAndRecord("1992|USA")
				seen := d.SeenAndRecord("1992|USA")

				Convey("Then it should return true without growing", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And many distinct keys are recorded", func() {
				for i := 0; i < 50; i++ {
					So(d.SeenAndRecord(fmt.Sprintf("k-%d", i)), ShouldBeFalse)
				}

				Convey("Then all of them are remembered", func() {
					So(d.Size(), ShouldEqual, 50)
					for i := 0; i < 50; i++ {
						So(d.SeenAndRecord(fmt.Sprintf("k-%d", i)), ShouldBeTrue)
					}
				})
			})
		})
	})
}

func TestKey(t *testing.T) {
	Convey("Given composite keys", t, func() {
		Convey("When parts differ only by where they split", func() {
			a := dedupe.Key("a", "bc")
			b := dedupe.Key("ab", "c")

			Convey("Then the keys must differ", func() {
				So(a, ShouldNotEqual, b)
			})
		})

		Convey("When the parts are identical", func() {
			Convey("Then the keys are equal", func() {
				So(dedupe.Key("1996", "Swimming"), ShouldEqual, dedupe.Key("1996", "Swimming"))
			})
		})

		Convey("When there are no parts", func() {
			So(dedupe.Key(), ShouldEqual, "")
		})
	})
}
