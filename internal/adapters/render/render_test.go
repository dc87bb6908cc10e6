package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/podium/internal/adapters/render"
	"github.com/okian/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCSV(t *testing.T) {
	Convey("Given a medal tally", t, func() {
		rows := []types.TallyRow{
			{Rank: 1, Region: "USA", Gold: 2, Total: 2},
			{Rank: 2, Region: "Korea, South", Bronze: 1, Total: 1},
		}

		Convey("When rendered as CSV", func() {
			var buf bytes.Buffer
			So(render.CSV(&buf, rows), ShouldBeNil)

			Convey("Then columns follow the struct and cells are quoted when needed", func() {
				So(buf.String(), ShouldEqual,
					"Rank,Region,Year,Gold,Silver,Bronze,Total\n"+
						"1,USA,0,2,0,0,2\n"+
						"2,\"Korea, South\",0,0,0,1,1\n")
			})
		})
	})

	Convey("Given an empty result", t, func() {
		var buf bytes.Buffer
		So(render.CSV(&buf, []types.YearCount{}), ShouldBeNil)
		So(buf.String(), ShouldEqual, "Year,Count\n")
	})

	Convey("Given physique points", t, func() {
		var buf bytes.Buffer
		So(render.CSV(&buf, []types.Physique{
			{Name: "A", Sex: "F", Height: 170.5, Weight: 60, Sport: "Judo", Medal: "No Medal"},
		}), ShouldBeNil)
		So(buf.String(), ShouldEqual, "Name,Sex,Height,Weight,Sport,Medal\nA,F,170.5,60,Judo,No Medal\n")
	})

	Convey("Given a heatmap", t, func() {
		var buf bytes.Buffer
		So(render.CSV(&buf, types.Heatmap{
			Region: "USA",
			Sports: []string{"Athletics", "Swimming"},
			Years:  []int{1992, 1996},
			Counts: [][]int{{2, 1}, {1, 1}},
		}), ShouldBeNil)
		So(buf.String(), ShouldEqual, "Sport,1992,1996\nAthletics,2,1\nSwimming,1,1\n")
	})

	Convey("Given an overview", t, func() {
		var buf bytes.Buffer
		So(render.CSV(&buf, types.Overview{Editions: 2, Cities: 2, Sports: 3, Events: 7, Athletes: 9, Nations: 4}), ShouldBeNil)
		So(buf.String(), ShouldEqual, "Editions,Cities,Sports,Events,Athletes,Nations\n2,2,3,7,9,4\n")
	})

	Convey("Given a shape without a tabular form", t, func() {
		err := render.CSV(&bytes.Buffer{}, types.Selectors{})
		So(errors.Is(err, render.ErrUnsupported), ShouldBeTrue)
	})
}

func TestFormat(t *testing.T) {
	Convey("Given format names", t, func() {
		f, err := render.ParseFormat("")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, render.FormatJSON)

		f, err = render.ParseFormat("CSV")
		So(err, ShouldBeNil)
		So(f.ContentType(), ShouldStartWith, "text/csv")

		_, err = render.ParseFormat("xml")
		So(errors.Is(err, render.ErrUnknownFormat), ShouldBeTrue)
	})

	Convey("Given JSON output", t, func() {
		var buf bytes.Buffer
		So(render.Write(&buf, render.FormatJSON, []types.YearCount{{Year: 1992, Count: 3}}), ShouldBeNil)
		var got []types.YearCount
		So(json.Unmarshal(buf.Bytes(), &got), ShouldBeNil)
		So(got, ShouldResemble, []types.YearCount{{Year: 1992, Count: 3}})
	})
}
