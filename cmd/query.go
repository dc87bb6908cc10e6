package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/podium/internal/adapters/render"
	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/analytics"
	"github.com/okian/podium/internal/domain/types"
)

// queryFlags are the selectors shared by the query subcommand.
type queryFlags struct {
	year   string
	region string
	sport  string
	column string
	kind   string
	text   string
	limit  int
	format string
}

type queryFunc func(ctx context.Context, svc *service.Service, q queryFlags) (any, error)

var queries = map[string]queryFunc{ //nolint:gochecknoglobals // static command table
	"selectors": func(ctx context.Context, svc *service.Service, _ queryFlags) (any, error) {
		return svc.Selectors(ctx)
	},
	"medal-tally": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		return svc.MedalTally(ctx, q.year, q.region)
	},
	"over-time": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		col, err := analytics.ParseColumn(q.column)
		if err != nil {
			return nil, err
		}
		return svc.OverTime(ctx, col)
	},
	"top-athletes": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		return svc.TopAthletes(ctx, q.sport, q.limit)
	},
	"country-medals": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		if err := requireRegion(q); err != nil {
			return nil, err
		}
		return svc.YearTally(ctx, q.region)
	},
	"country-heatmap": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		if err := requireRegion(q); err != nil {
			return nil, err
		}
		return svc.CountryHeatmap(ctx, q.region)
	},
	"country-athletes": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		if err := requireRegion(q); err != nil {
			return nil, err
		}
		return svc.TopCountryAthletes(ctx, q.region, q.limit)
	},
	"physique": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		return svc.Physique(ctx, q.sport)
	},
	"gender": func(ctx context.Context, svc *service.Service, _ queryFlags) (any, error) {
		return svc.GenderParticipation(ctx)
	},
	"overview": func(ctx context.Context, svc *service.Service, _ queryFlags) (any, error) {
		return svc.Overview(ctx)
	},
	"events-per-sport": func(ctx context.Context, svc *service.Service, _ queryFlags) (any, error) {
		return svc.EventsPerSport(ctx)
	},
	"ages": func(ctx context.Context, svc *service.Service, _ queryFlags) (any, error) {
		return svc.AgeDistributions(ctx)
	},
	"gold-ages": func(ctx context.Context, svc *service.Service, _ queryFlags) (any, error) {
		return svc.GoldMedalistAges(ctx)
	},
	"suggest": func(ctx context.Context, svc *service.Service, q queryFlags) (any, error) {
		return svc.Suggest(ctx, q.kind, q.text, q.limit)
	},
}

func queryNames() []string {
	names := make([]string, 0, len(queries))
	for n := range queries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func requireRegion(q queryFlags) error {
	if analytics.IsOverall(q.region) {
		return fmt.Errorf("--region is required")
	}
	return nil
}

func (c *cli) queryCmd() *cobra.Command {
	q := queryFlags{}
	cmd := &cobra.Command{
		Use:       "query <name>",
		Short:     "Run one aggregation against the dataset files and print it",
		Long:      "Run one aggregation against the dataset files and print it.\n\nNames: " + strings.Join(queryNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: queryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := queries[args[0]]
			if !ok {
				return fmt.Errorf("unknown query %q (want one of %s)", args[0], strings.Join(queryNames(), ", "))
			}
			f, err := render.ParseFormat(q.format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc := c.newService()
			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Stop()

			v, err := fn(ctx, svc, q)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), f, v)
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.year, "year", types.Overall, "edition year or Overall")
	f.StringVar(&q.region, "region", types.Overall, "region name or Overall")
	f.StringVar(&q.sport, "sport", types.Overall, "sport name or Overall")
	f.StringVar(&q.column, "column", string(analytics.ColumnRegion), "over-time column: nations, events, athletes, sports, cities, teams, noc")
	f.StringVar(&q.kind, "kind", service.KindRegion, "suggest kind: region or sport")
	f.StringVar(&q.text, "q", "", "suggest query text")
	f.IntVar(&q.limit, "limit", 0, "row limit (0 picks the configured default)")
	f.StringVar(&q.format, "format", string(render.FormatCSV), "output format: csv or json")
	return cmd
}
