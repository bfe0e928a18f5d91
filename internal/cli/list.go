package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/null993/holidown/internal/constants"
	"github.com/null993/holidown/internal/countdown"
	"github.com/null993/holidown/internal/utils"
)

// ListCmd prints the upcoming holiday table once, without the TUI.
type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	ctx.Source.Reload(context.Background())
	snap := ctx.Source.Snapshot()

	if snap.Err != "" {
		fmt.Fprintln(os.Stderr, snap.Err)
	}
	if len(snap.Holidays) == 0 {
		fmt.Println("no holiday data")
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return err
	}

	if prefix := snap.Status.Prefix(); prefix != "" {
		fmt.Println(prefix)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HOLIDAY\tDATES\tDAYS\tEXCL MAKEUP\tEXCL MAKEUP+WKND\tCOUNTDOWN")
	for _, h := range snap.Holidays {
		dates := fmt.Sprintf("%s ~ %s",
			h.StartDate.Format(constants.DateFormat), h.EndDate.Format(constants.DateFormat))
		cd := "ongoing"
		if d := countdown.DaysUntil(h, now); d > 0 {
			cd = fmt.Sprintf("%d days", d)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			h.Name, dates, h.TotalDays, h.DaysExclMakeup, h.DaysExclMakeupWeekend, cd)
	}
	return w.Flush()
}
