// Package types contains the aggregate table shapes shared by the
// analytics library, the HTTP API and the probe.
package types

// Overall is the selector value meaning "no filter".
const Overall = "Overall"

// TallyRow is one medal tally line. Rank is 0 when the query pins both a
// year and a region; Year is 0 for rows aggregated across editions.
type TallyRow struct {
	Rank   int    `json:"rank,omitempty" dataframe:"Rank"`
	Region string `json:"region" dataframe:"Region"`
	Year   int    `json:"year,omitempty" dataframe:"Year"`
	Gold   int    `json:"gold" dataframe:"Gold"`
	Silver int    `json:"silver" dataframe:"Silver"`
	Bronze int    `json:"bronze" dataframe:"Bronze"`
	Total  int    `json:"total" dataframe:"Total"`
}

// YearCount is one point of a per-edition series.
type YearCount struct {
	Year  int `json:"year" dataframe:"Year"`
	Count int `json:"count" dataframe:"Count"`
}

// AthleteMedals is one row of a most-successful-athletes table.
type AthleteMedals struct {
	Name   string `json:"name" dataframe:"Name"`
	Medals int    `json:"medals" dataframe:"Medals"`
	Sport  string `json:"sport" dataframe:"Sport"`
	Region string `json:"region,omitempty" dataframe:"Region"`
}

// Heatmap is a Sport x Year matrix of medal counts for one region.
// Counts[i][j] is the count for Sports[i] in Years[j].
type Heatmap struct {
	Region string   `json:"region"`
	Sports []string `json:"sports"`
	Years  []int    `json:"years"`
	Counts [][]int  `json:"counts"`
}

// Physique is one athlete point of the height/weight scatter.
type Physique struct {
	Name   string  `json:"name" dataframe:"Name"`
	Sex    string  `json:"sex" dataframe:"Sex"`
	Height float64 `json:"height" dataframe:"Height"`
	Weight float64 `json:"weight" dataframe:"Weight"`
	Sport  string  `json:"sport" dataframe:"Sport"`
	Medal  string  `json:"medal" dataframe:"Medal"`
}

// GenderYear is one row of the men vs women participation series.
type GenderYear struct {
	Year   int `json:"year" dataframe:"Year"`
	Male   int `json:"male" dataframe:"Male"`
	Female int `json:"female" dataframe:"Female"`
}

// Selectors holds the values offered by the year and country controls.
type Selectors struct {
	Years     []string `json:"years"`
	Regions   []string `json:"regions"`
	Sports    []string `json:"sports,omitempty"`
	Countries []string `json:"countries,omitempty"`
}

// Overview holds headline counts for the whole dataset.
type Overview struct {
	Editions int `json:"editions"`
	Cities   int `json:"cities"`
	Sports   int `json:"sports"`
	Events   int `json:"events"`
	Athletes int `json:"athletes"`
	Nations  int `json:"nations"`
}

// SportYearCount is the number of distinct events of a sport in a year.
type SportYearCount struct {
	Year   int    `json:"year" dataframe:"Year"`
	Sport  string `json:"sport" dataframe:"Sport"`
	Events int    `json:"events" dataframe:"Events"`
}

// Distribution is a sample of ages with summary statistics.
type Distribution struct {
	Label  string    `json:"label"`
	N      int       `json:"n"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Mean   float64   `json:"mean"`
	Median float64   `json:"median"`
	Values []float64 `json:"values,omitempty"`
}
