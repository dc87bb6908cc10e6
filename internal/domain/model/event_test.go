package model_test

import (
	"testing"

	model "github.com/okian/podium/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseMedal(t *testing.T) {
	convey.Convey("Given dataset medal spellings", t, func() {
		convey.Convey("When parsing medal names", func() {
			convey.So(model.ParseMedal("Gold"), convey.ShouldEqual, model.Gold)
			convey.So(model.ParseMedal(" silver "), convey.ShouldEqual, model.Silver)
			convey.So(model.ParseMedal("BRONZE"), convey.ShouldEqual, model.Bronze)
		})

		convey.Convey("When parsing missing markers", func() {
			convey.So(model.ParseMedal("NA"), convey.ShouldEqual, model.NoMedal)
			convey.So(model.ParseMedal(""), convey.ShouldEqual, model.NoMedal)
			convey.So(model.ParseMedal("Platinum"), convey.ShouldEqual, model.NoMedal)
		})
	})
}

func TestMedalText(t *testing.T) {
	convey.Convey("Given a medal", t, func() {
		convey.Convey("Then String and Label render the display names", func() {
			convey.So(model.Gold.String(), convey.ShouldEqual, "Gold")
			convey.So(model.NoMedal.String(), convey.ShouldEqual, "None")
			convey.So(model.NoMedal.Label(), convey.ShouldEqual, "No Medal")
			convey.So(model.Bronze.Label(), convey.ShouldEqual, "Bronze")
		})

		convey.Convey("When round-tripping through text", func() {
			b, err := model.Silver.MarshalText()
			convey.So(err, convey.ShouldBeNil)

			var m model.Medal
			convey.So(m.UnmarshalText(b), convey.ShouldBeNil)
			convey.So(m, convey.ShouldEqual, model.Silver)
		})

		convey.Convey("When unmarshalling an unknown medal", func() {
			var m model.Medal
			convey.So(m.UnmarshalText([]byte("Platinum")), convey.ShouldNotBeNil)
			convey.So(m.UnmarshalText([]byte("No Medal")), convey.ShouldBeNil)
			convey.So(m, convey.ShouldEqual, model.NoMedal)
		})
	})
}

func TestEventIndicators(t *testing.T) {
	convey.Convey("Given events with every medal value", t, func() {
		medals := []model.Medal{model.NoMedal, model.Gold, model.Silver, model.Bronze}

		convey.Convey("Then at most one indicator is set", func() {
			for _, m := range medals {
				e := model.Event{Medal: m}
				sum := e.Gold() + e.Silver() + e.Bronze()
				convey.So(sum, convey.ShouldBeLessThanOrEqualTo, 1)
				convey.So(sum == 1, convey.ShouldEqual, e.HasMedal())
			}
		})

		convey.Convey("And the set indicator matches the medal", func() {
			convey.So(model.Event{Medal: model.Gold}.Gold(), convey.ShouldEqual, 1)
			convey.So(model.Event{Medal: model.Silver}.Silver(), convey.ShouldEqual, 1)
			convey.So(model.Event{Medal: model.Bronze}.Bronze(), convey.ShouldEqual, 1)
			convey.So(model.Event{}.Gold(), convey.ShouldEqual, 0)
		})
	})

	convey.Convey("Given an event with absent measures", t, func() {
		e := model.Event{Age: model.Some(24)}

		convey.Convey("Then only the measured field is valid", func() {
			convey.So(e.Age.Valid, convey.ShouldBeTrue)
			convey.So(e.Age.Value, convey.ShouldEqual, 24)
			convey.So(e.Height.Valid, convey.ShouldBeFalse)
			convey.So(e.Weight.Valid, convey.ShouldBeFalse)
		})
	})
}
