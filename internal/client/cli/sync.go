package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) syncNow(ctx context.Context) {
	res := a.sync.FlushDrafts(ctx)

	if res.Success {
		log.Printf("Sync complete: %d entries pushed", res.SyncedEntries)
		return
	}
	log.Printf("Sync incomplete: %d pushed, %d failed", res.SyncedEntries, res.FailedEntries)
	for _, e := range res.Errors {
		fmt.Println("  " + e)
	}
}

func (a *App) status(ctx context.Context) {
	st := a.sync.Status(ctx)

	online := "offline"
	if st.IsOnline {
		online = "online"
	}
	fmt.Printf("Connection: %s\n", online)
	fmt.Printf("Unsynced drafts: %d\n", st.DraftCount)
	if st.LastSync != nil {
		fmt.Printf("Last sync: %s\n", st.LastSync.Local().Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("Last sync: never")
	}
	if st.IsSyncing {
		fmt.Println("Sync in progress")
	} else if st.NeedsSync {
		fmt.Println("Sync needed")
	}
}
