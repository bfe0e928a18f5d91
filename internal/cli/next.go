package cli

import (
	"context"
	"fmt"

	"github.com/null993/holidown/internal/countdown"
	"github.com/null993/holidown/internal/utils"
)

// NextCmd prints the one-line countdown to the next holiday, the same text
// the TUI shows in its status line.
type NextCmd struct{}

func (c *NextCmd) Run(ctx *Context) error {
	ctx.Source.Reload(context.Background())
	snap := ctx.Source.Snapshot()

	if len(snap.Holidays) == 0 {
		if snap.Err != "" {
			return fmt.Errorf("%s", snap.Err)
		}
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

	fmt.Println(countdown.NextHoliday(snap.Holidays, now, snap.Status.Prefix()))
	return nil
}
