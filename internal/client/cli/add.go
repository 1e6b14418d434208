package cli

import (
	"context"
	"log"
	"os"

	"github.com/reflecta-app/reflecta/internal/client/models"
)

func (a *App) add(ctx context.Context) {
	content, err := GetSimpleText(a.reader, "-What's on your mind?", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fields := models.EntryFields{Content: content}

	if fields.MoodLevel, err = GetLevel(a.reader, "mood", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if fields.EnergyLevel, err = GetLevel(a.reader, "energy", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if fields.StressLevel, err = GetLevel(a.reader, "stress", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}

	if fields.SleepHours, err = GetOptionalHours(a.reader, "sleep", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if fields.WorkHours, err = GetOptionalHours(a.reader, "work", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if fields.Tags, err = GetCommaList(a.reader, "-Tags (comma separated, empty to skip)", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}
	if fields.Activities, err = GetCommaList(a.reader, "-Activities (comma separated, empty to skip)", os.Stdout); err != nil {
		log.Printf("error: %v", err)
		return
	}

	res, err := a.sync.CreateEntry(ctx, fields)
	if err != nil {
		log.Printf("error saving entry: %v", err)
		return
	}

	if res.IsOffline {
		log.Printf("Saved offline as %s, will sync when back online", res.DraftID)
		return
	}
	log.Printf("Entry saved")
	if res.Entry.Reflection != "" {
		log.Printf("Reflection: %s", res.Entry.Reflection)
	}
}
