package table_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/testutils"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTable(t *testing.T) {
	Convey("Given a table built from rows", t, func() {
		rows := testutils.Rows()
		tbl := table.New(rows)

		Convey("Then it holds every row in order", func() {
			So(tbl.Len(), ShouldEqual, len(rows))
			So(tbl.Row(0).Name, ShouldEqual, "Carl Lewis")
			So(tbl.Row(tbl.Len()-1).Name, ShouldEqual, "Nameless Rower")
		})

		Convey("When the caller mutates its slice afterwards", func() {
			rows[0].Name = "Changed"

			Convey("Then the table is unaffected", func() {
				So(tbl.Row(0).Name, ShouldEqual, "Carl Lewis")
			})
		})

		Convey("When filtering", func() {
			medals := tbl.Filter(func(e model.Event) bool { return e.HasMedal() })

			Convey("Then a new table is returned and the source is untouched", func() {
				So(medals.Len(), ShouldEqual, 9)
				So(tbl.Len(), ShouldEqual, len(rows))
			})
		})

		Convey("When dropping duplicates by medal entry", func() {
			d := tbl.DropDuplicates(table.ByMedalEntry)

			Convey("Then the shared relay gold collapses to one row", func() {
				So(d.Len(), ShouldEqual, tbl.Len()-1)
			})

			Convey("And the first occurrence is kept", func() {
				var relay []string
				for _, e := range d.All() {
					if e.Event == "Athletics Men's 4 x 100 metres Relay" {
						relay = append(relay, e.Name)
					}
				}
				So(relay, ShouldResemble, []string{"Carl Lewis"})
			})

			Convey("And applying the same key again is a no-op", func() {
				again := d.DropDuplicates(table.ByMedalEntry)
				So(again.Len(), ShouldEqual, d.Len())
				for i := range again.Len() {
					So(again.Row(i), ShouldResemble, d.Row(i))
				}
			})
		})

		Convey("When reading distinct values", func() {
			Convey("Then empty values are skipped and order follows first appearance", func() {
				So(tbl.Distinct(table.Region), ShouldResemble, []string{"USA", "KEN", "FRA", "GBR"})
				So(tbl.DistinctYears(), ShouldResemble, []int{1992, 1996})
			})
		})

		Convey("When iterating with early exit", func() {
			n := 0
			for range tbl.All() {
				n++
				if n == 3 {
					break
				}
			}
			So(n, ShouldEqual, 3)
		})
	})

	Convey("Given a nil table", t, func() {
		var tbl *table.Table

		Convey("Then it behaves as empty", func() {
			So(tbl.Len(), ShouldEqual, 0)
			So(tbl.Filter(func(model.Event) bool { return true }).Len(), ShouldEqual, 0)
			So(tbl.Distinct(table.Name), ShouldBeEmpty)
		})
	})
}

func TestRowKeys(t *testing.T) {
	Convey("Given two rows that differ only in a measure", t, func() {
		a := testutils.WithBody(testutils.Athlete("A", model.Male, "USA", 1992, "Judo", "Judo Men's Lightweight", model.NoMedal), 20, 170, 70)
		b := a
		b.Weight = model.Some(71)

		Convey("Then ByRow tells them apart", func() {
			So(table.ByRow(a), ShouldNotEqual, table.ByRow(b))
			So(table.ByRow(a), ShouldEqual, table.ByRow(a))
		})

		Convey("And ByAthlete does not", func() {
			So(table.ByAthlete(a), ShouldEqual, table.ByAthlete(b))
		})
	})
}
