package times

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/teetime/internal/cli"
)

type TimesCmd struct {
	JSON  bool `help:"Print the raw tee times as JSON."`
	Limit int  `help:"Show at most this many tee times (0 for all)." default:"0"`
}

func (c *TimesCmd) Run(ctx *cli.Context) error {
	times, err := ctx.Client.RecentTimes(ctx.Context())
	if err != nil {
		return err
	}
	if c.Limit > 0 && len(times) > c.Limit {
		times = times[:c.Limit]
	}

	out := ctx.Stdout()
	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(times)
	}

	if len(times) == 0 {
		fmt.Fprintln(out, "No recent tee times found.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Day", "Date", "Time", "Players", "Holes")
	for _, tt := range times {
		t.Row(tt.DayOfWeek(), tt.ShortDate(), tt.Time, strconv.Itoa(int(tt.Players)), strconv.Itoa(int(tt.Holes)))
	}
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d tee time(s)\n", len(times))
	return nil
}
