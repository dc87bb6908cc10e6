package analytics_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/analytics"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/internal/testutils"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMedalTally(t *testing.T) {
	Convey("Given the reference table", t, func() {
		tbl := testutils.Table()

		Convey("When tallying across all years and regions", func() {
			got := analytics.MedalTally(tbl, types.Overall, types.Overall)

			Convey("Then regions are ranked by gold, silver and bronze", func() {
				So(got, ShouldResemble, []types.TallyRow{
					{Rank: 1, Region: "USA", Gold: 3, Silver: 1, Bronze: 1, Total: 5},
					{Rank: 2, Region: "GBR", Gold: 1, Total: 1},
					{Rank: 3, Region: "KEN", Gold: 1, Total: 1},
					{Rank: 4, Region: "FRA"},
				})
			})

			Convey("And the relay gold is counted once", func() {
				So(got[0].Gold, ShouldEqual, 3)
			})

			Convey("And the unresolved region never appears", func() {
				for _, r := range got {
					So(r.Region, ShouldNotBeEmpty)
				}
			})

			Convey("And totals add up to the deduplicated medal entries", func() {
				sum := 0
				for _, r := range got {
					So(r.Total, ShouldEqual, r.Gold+r.Silver+r.Bronze)
					sum += r.Total
				}
				entries := tbl.DropDuplicates(table.ByMedalEntry).Filter(func(e model.Event) bool {
					return e.HasMedal() && e.Region != ""
				})
				So(sum, ShouldEqual, entries.Len())
			})
		})

		Convey("When tallying one year across regions", func() {
			got := analytics.MedalTally(tbl, "1992", types.Overall)

			Convey("Then only that edition is counted", func() {
				So(got, ShouldResemble, []types.TallyRow{
					{Rank: 1, Region: "USA", Year: 1992, Gold: 2, Silver: 1, Total: 3},
					{Rank: 2, Region: "KEN", Year: 1992, Gold: 1, Total: 1},
					{Rank: 3, Region: "FRA", Year: 1992},
				})
			})
		})

		Convey("When tallying one region across years", func() {
			got := analytics.MedalTally(tbl, types.Overall, "USA")

			Convey("Then there is one ranked row per edition", func() {
				So(got, ShouldResemble, []types.TallyRow{
					{Rank: 1, Region: "USA", Year: 1992, Gold: 2, Silver: 1, Total: 3},
					{Rank: 2, Region: "USA", Year: 1996, Gold: 1, Bronze: 1, Total: 2},
				})
			})
		})

		Convey("When pinning both a year and a region", func() {
			got := analytics.MedalTally(tbl, "1996", "USA")

			Convey("Then a single unranked row is returned", func() {
				So(got, ShouldResemble, []types.TallyRow{
					{Region: "USA", Year: 1996, Gold: 1, Bronze: 1, Total: 2},
				})
			})
		})

		Convey("When the selectors name nothing in the data", func() {
			So(analytics.MedalTally(tbl, "2000", types.Overall), ShouldBeEmpty)
			So(analytics.MedalTally(tbl, types.Overall, "Atlantis"), ShouldBeEmpty)
			So(analytics.MedalTally(tbl, "not-a-year", types.Overall), ShouldBeEmpty)
		})

		Convey("When the selector is empty it means Overall", func() {
			So(analytics.MedalTally(tbl, "", ""), ShouldResemble, analytics.MedalTally(tbl, types.Overall, types.Overall))
		})
	})

	Convey("Given two golds for one region in different years", t, func() {
		tbl := table.New([]model.Event{
			testutils.Athlete("A", model.Male, "USA", 1992, "Judo", "Judo Men's Lightweight", model.Gold),
			testutils.Athlete("B", model.Male, "USA", 1996, "Judo", "Judo Men's Lightweight", model.Gold),
		})

		Convey("Then the overall tally counts both", func() {
			So(analytics.MedalTally(tbl, types.Overall, types.Overall), ShouldResemble, []types.TallyRow{
				{Rank: 1, Region: "USA", Gold: 2, Total: 2},
			})
		})
	})

	Convey("Given an empty table", t, func() {
		So(analytics.MedalTally(table.New(nil), types.Overall, types.Overall), ShouldBeEmpty)
	})
}

func TestSelectors(t *testing.T) {
	Convey("Given the reference table", t, func() {
		got := analytics.Selectors(testutils.Table())

		Convey("Then years are descending after Overall", func() {
			So(got.Years, ShouldResemble, []string{"Overall", "1996", "1992"})
		})

		Convey("And regions are ascending after Overall", func() {
			So(got.Regions, ShouldResemble, []string{"Overall", "FRA", "GBR", "KEN", "USA"})
			So(got.Countries, ShouldResemble, []string{"FRA", "GBR", "KEN", "USA"})
		})

		Convey("And sports are ascending after Overall", func() {
			So(got.Sports, ShouldResemble, []string{"Overall", "Athletics", "Rowing", "Swimming"})
		})
	})

	Convey("Given an empty table", t, func() {
		got := analytics.Selectors(table.New(nil))
		So(got.Years, ShouldResemble, []string{"Overall"})
		So(got.Regions, ShouldResemble, []string{"Overall"})
	})
}
