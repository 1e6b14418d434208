package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "-Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.api.Register(ctx, email, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	a.userName = email
	log.Printf("Registration successful")
}

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "-Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.userName = email
	log.Printf("Login successful")

	// Connectivity may have come back while logged out; push anything queued.
	a.sync.AutoSync(ctx)
}

func (a *App) Logout() {
	a.api.SetToken("")
	a.userName = ""
	log.Printf("Logged out")
}
