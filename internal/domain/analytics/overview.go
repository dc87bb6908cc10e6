package analytics

import (
	"github.com/okian/podium/internal/domain/table"
	"github.com/okian/podium/internal/domain/types"
)

// Overview returns the headline counts of the table: editions, host cities,
// sports, events, athletes and nations.
func Overview(t *table.Table) types.Overview {
	return types.Overview{
		Editions: len(t.DistinctYears()),
		Cities:   len(t.Distinct(table.City)),
		Sports:   len(t.Distinct(table.Sport)),
		Events:   len(t.Distinct(table.Event)),
		Athletes: len(t.Distinct(table.Name)),
		Nations:  len(t.Distinct(table.Region)),
	}
}
