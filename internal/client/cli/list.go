package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

func (a *App) list(ctx context.Context) {
	res := a.sync.ListEntries(ctx, false)

	if len(res.Entries) == 0 {
		fmt.Println("No entries yet")
	}
	for _, e := range res.Entries {
		line := fmt.Sprintf("%s  [mood %d] %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.MoodLevel, e.Content)
		if e.Reflection != "" {
			line += "\n    ↳ " + e.Reflection
		}
		fmt.Println(line)
	}
	if res.FromCache {
		fmt.Println("(showing cached entries)")
	}

	drafts := a.sync.Status(ctx).DraftCount
	if drafts > 0 {
		fmt.Printf("(%d unsynced draft(s))\n", drafts)
	}
}

// show prints the Nth most recent entry in full; without an argument it
// shows the most recent one.
func (a *App) show(ctx context.Context, args []string) {
	res := a.sync.ListEntries(ctx, false)
	if len(res.Entries) == 0 {
		fmt.Println("No entries yet")
		return
	}

	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 || v > len(res.Entries) {
			fmt.Printf("Usage: show [1..%d]\n", len(res.Entries))
			return
		}
		n = v
	}

	e := res.Entries[n-1]
	fmt.Printf("Date:       %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Mood:       %d/10\n", e.MoodLevel)
	fmt.Printf("Energy:     %d/10\n", e.EnergyLevel)
	fmt.Printf("Stress:     %d/10\n", e.StressLevel)
	if e.SleepHours != nil {
		fmt.Printf("Sleep:      %.1fh\n", *e.SleepHours)
	}
	if e.WorkHours != nil {
		fmt.Printf("Work:       %.1fh\n", *e.WorkHours)
	}
	if len(e.Tags) > 0 {
		fmt.Printf("Tags:       %s\n", strings.Join(e.Tags, ", "))
	}
	if len(e.Activities) > 0 {
		fmt.Printf("Activities: %s\n", strings.Join(e.Activities, ", "))
	}
	fmt.Println(e.Content)
	if e.Reflection != "" {
		fmt.Printf("Reflection: %s\n", e.Reflection)
	}
}

func (a *App) refresh(ctx context.Context) {
	res := a.sync.ForceRefresh(ctx)
	if !res.Success {
		log.Printf("Refresh failed: %s", res.Error)
		return
	}
	log.Printf("Refreshed %d entries", len(res.Entries))
}
