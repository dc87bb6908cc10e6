package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/podium/internal/adapters/render"
	"github.com/okian/podium/internal/probe"
)

func (c *cli) probeCmd() *cobra.Command {
	var (
		url     string
		timeout time.Duration
		limit   int
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check a running server's responses for consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = baseURL(c.cfg.Addr)
			}
			rep, err := probe.Run(cmd.Context(), probe.Config{BaseURL: url, Timeout: timeout, Limit: limit})
			if rep.Checks == nil && err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				if werr := render.JSON(out, rep); werr != nil {
					return werr
				}
				return err
			}
			for _, ch := range rep.Checks {
				if ch.Passed {
					fmt.Fprintf(out, "PASS %s\n", ch.Name)
				} else {
					fmt.Fprintf(out, "FAIL %s: %s\n", ch.Name, ch.Detail)
				}
			}
			fmt.Fprintf(out, "%d passed, %d failed in %s\n", rep.Passed, rep.Failed, rep.Duration.Round(time.Millisecond))
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&url, "url", "", "server base URL (default derived from --addr)")
	f.DurationVar(&timeout, "timeout", probe.DefaultTimeout, "per request timeout")
	f.IntVar(&limit, "limit", probe.DefaultLimit, "row limit requested from the top athlete routes")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

// baseURL turns a listen address into a local URL.
func baseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
