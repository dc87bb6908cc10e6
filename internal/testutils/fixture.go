// Package testutils holds small, hand-checked datasets shared by tests.
package testutils

import (
	"os"
	"path/filepath"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/table"
)

// Athlete builds an event row with the fields most tests care about.
func Athlete(name string, sex model.Sex, region string, year int, sport, event string, medal model.Medal) model.Event {
	return model.Event{
		Name:   name,
		Sex:    sex,
		Team:   region,
		NOC:    region,
		Region: region,
		Games:  gamesLabel(year),
		Year:   year,
		Season: model.Summer,
		City:   hostCity(year),
		Sport:  sport,
		Event:  event,
		Medal:  medal,
	}
}

// WithBody sets age, height and weight on e.
func WithBody(e model.Event, age, height, weight float64) model.Event {
	e.Age = model.Some(age)
	e.Height = model.Some(height)
	e.Weight = model.Some(weight)
	return e
}

// Rows is the reference dataset. Expected aggregates are documented next to
// each test that relies on them.
//
//	1992 USA: relay gold (2 athletes share it), Lewis gold, Smith silver
//	1992 KEN: Keino gold
//	1996 USA: Lewis gold, Jones bronze (F)
//	1996 GBR: Redgrave gold
//	1992/1996 FRA participates without medals
//	1996 "" (unresolved region) wins a bronze
func Rows() []model.Event {
	return []model.Event{
		WithBody(Athlete("Carl Lewis", model.Male, "USA", 1992, "Athletics", "Athletics Men's Long Jump", model.Gold), 31, 188, 80),
		WithBody(Athlete("Carl Lewis", model.Male, "USA", 1992, "Athletics", "Athletics Men's 4 x 100 metres Relay", model.Gold), 31, 188, 80),
		WithBody(Athlete("Leroy Burrell", model.Male, "USA", 1992, "Athletics", "Athletics Men's 4 x 100 metres Relay", model.Gold), 25, 183, 82),
		Athlete("Mike Smith", model.Male, "USA", 1992, "Swimming", "Swimming Men's 100 metres Freestyle", model.Silver),
		WithBody(Athlete("Kip Keino", model.Male, "KEN", 1992, "Athletics", "Athletics Men's 1,500 metres", model.Gold), 22, 175, 62),
		WithBody(Athlete("Marie Dupont", model.Female, "FRA", 1992, "Swimming", "Swimming Women's 100 metres Freestyle", model.NoMedal), 20, 170, 60),
		WithBody(Athlete("Carl Lewis", model.Male, "USA", 1996, "Athletics", "Athletics Men's Long Jump", model.Gold), 35, 188, 80),
		WithBody(Athlete("Ann Jones", model.Female, "USA", 1996, "Swimming", "Swimming Women's 100 metres Freestyle", model.Bronze), 19, 172, 58),
		WithBody(Athlete("Steve Redgrave", model.Male, "GBR", 1996, "Rowing", "Rowing Men's Coxless Pairs", model.Gold), 34, 195, 103),
		Athlete("Pierre Martin", model.Male, "FRA", 1996, "Rowing", "Rowing Men's Coxless Pairs", model.NoMedal),
		Athlete("Nameless Rower", model.Male, "", 1996, "Rowing", "Rowing Men's Coxless Fours", model.Bronze),
	}
}

// Table returns Rows as a table handle.
func Table() *table.Table {
	return table.New(Rows())
}

func gamesLabel(year int) string {
	switch year {
	case 1992:
		return "1992 Summer"
	case 1996:
		return "1996 Summer"
	default:
		return ""
	}
}

func hostCity(year int) string {
	switch year {
	case 1992:
		return "Barcelona"
	case 1996:
		return "Atlanta"
	default:
		return ""
	}
}

// EventsCSV is a small athlete_events.csv with a winter row, an exact
// duplicate, NA measures and an aliased NOC.
const EventsCSV = `"ID","Name","Sex","Age","Height","Weight","Team","NOC","Games","Year","Season","City","Sport","Event","Medal"
"1","Carl Lewis","M",31,188,80,"United States","USA","1992 Summer",1992,"Summer","Barcelona","Athletics","Athletics Men's Long Jump","Gold"
"1","Carl Lewis","M",31,188,80,"United States","USA","1992 Summer",1992,"Summer","Barcelona","Athletics","Athletics Men's Long Jump","Gold"
"2","Tan Howe Liang","M",NA,NA,NA,"Singapore","SGP","1960 Summer",1960,"Summer","Roma","Weightlifting","Weightlifting Men's Lightweight","Silver"
"3","Bjorn Daehlie","M",24,183,78,"Norway","NOR","1992 Winter",1992,"Winter","Albertville","Cross Country Skiing","Cross Country Skiing Men's 50 kilometres","Gold"
"4","Yusra Mardini","F",18,NA,NA,"Refugee Olympic Athletes","ROT","2016 Summer",2016,"Summer","Rio de Janeiro","Swimming","Swimming Women's 100 metres Butterfly",NA
"5"," Marie Dupont ","F",20,170,60,"France","FRA","1992 Summer",1992,"Summer","Barcelona","Swimming","Swimming Women's 100 metres Freestyle",NA
`

// RegionsCSV is a small noc_regions.csv.
const RegionsCSV = `NOC,region,notes
USA,USA,
SIN,Singapore,
NOR,Norway,
FRA,France,
ROT,,Refugee Olympic Team
`

// WriteFiles writes the CSV fixtures into dir and returns their paths.
func WriteFiles(dir string) (eventsPath, regionsPath string, err error) {
	eventsPath = filepath.Join(dir, "athlete_events.csv")
	regionsPath = filepath.Join(dir, "noc_regions.csv")
	if err := os.WriteFile(eventsPath, []byte(EventsCSV), 0o600); err != nil {
		return "", "", err
	}
	if err := os.WriteFile(regionsPath, []byte(RegionsCSV), 0o600); err != nil {
		return "", "", err
	}
	return eventsPath, regionsPath, nil
}
