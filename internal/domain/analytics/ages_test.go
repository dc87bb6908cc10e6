package analytics_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/analytics"
	"github.com/okian/podium/internal/testutils"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAgeDistributions(t *testing.T) {
	Convey("Given the reference table", t, func() {
		got := analytics.AgeDistributions(testutils.Table())

		Convey("Then the four distributions are labelled in order", func() {
			So(len(got), ShouldEqual, 4)
			So(got[0].Label, ShouldEqual, analytics.LabelOverallAge)
			So(got[1].Label, ShouldEqual, analytics.LabelGold)
			So(got[2].Label, ShouldEqual, analytics.LabelSilver)
			So(got[3].Label, ShouldEqual, analytics.LabelBronze)
		})

		Convey("And the overall sample holds one aged row per athlete", func() {
			d := got[0]
			So(d.N, ShouldEqual, 6)
			So(d.Min, ShouldEqual, 19)
			So(d.Max, ShouldEqual, 34)
			So(d.Mean, ShouldAlmostEqual, 151.0/6, 1e-9)
			So(d.Median, ShouldAlmostEqual, 23.5, 1e-9)
			So(d.Values, ShouldResemble, []float64{19, 20, 22, 25, 31, 34})
		})

		Convey("And medal samples only hold that medal", func() {
			So(got[1].N, ShouldEqual, 4)
			So(got[1].Median, ShouldAlmostEqual, 28, 1e-9)
			So(got[2].N, ShouldEqual, 0)
			So(got[2].Values, ShouldBeEmpty)
			So(got[3].Values, ShouldResemble, []float64{19})
		})
	})
}

func TestGoldMedalistAges(t *testing.T) {
	Convey("Given the reference table", t, func() {
		tbl := testutils.Table()

		Convey("When using the default sport list", func() {
			got := analytics.GoldMedalistAges(tbl, nil)

			Convey("Then sports keep list order and empty ones are omitted", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].Label, ShouldEqual, "Athletics")
				So(got[0].Values, ShouldResemble, []float64{22, 25, 31})
				So(got[1].Label, ShouldEqual, "Rowing")
			})
		})

		Convey("When passing an explicit list", func() {
			got := analytics.GoldMedalistAges(tbl, []string{"Rowing", "Judo"})
			So(len(got), ShouldEqual, 1)
			So(got[0].Label, ShouldEqual, "Rowing")
			So(got[0].Median, ShouldEqual, 34)
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given an even sample", t, func() {
		d := analytics.Summarize("x", []float64{4, 1, 3, 2})
		So(d.Median, ShouldAlmostEqual, 2.5, 1e-9)
		So(d.Mean, ShouldAlmostEqual, 2.5, 1e-9)
		So(d.Values, ShouldResemble, []float64{1, 2, 3, 4})
	})

	Convey("Given an empty sample", t, func() {
		d := analytics.Summarize("x", nil)
		So(d.N, ShouldEqual, 0)
		So(d.Values, ShouldNotBeNil)
	})
}

func TestSuggest(t *testing.T) {
	Convey("Given a list of regions", t, func() {
		regions := []string{"Overall", "France", "Germany", "Greece", "USA"}

		Convey("Then misspellings resolve to the closest value", func() {
			So(analytics.Suggest(regions, "Frnace", 3), ShouldResemble, []string{"France"})
		})

		Convey("And prefixes are matched ignoring case", func() {
			So(analytics.Suggest(regions, "gr", 3), ShouldResemble, []string{"Greece"})
			So(analytics.Suggest(regions, "usa", 3), ShouldResemble, []string{"USA"})
		})

		Convey("And Overall is never suggested", func() {
			So(analytics.Suggest(regions, "overall", 3), ShouldBeEmpty)
		})

		Convey("And an empty query suggests nothing", func() {
			So(analytics.Suggest(regions, "  ", 3), ShouldBeEmpty)
		})
	})
}
