package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Reflecta (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if a.prober.IsOnline(ctx) {
		a.setMode(ModeOnline)
	} else {
		a.setMode(ModeOffline)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("reflecta %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: add, (l)ist, show, sync, status, refresh, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, add, (l)ist, show, status, exit")
			}

		case "register":
			a.Register(ctx)

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout()

		case "add":
			a.add(ctx)

		case "list", "l":
			a.list(ctx)

		case "show":
			a.show(ctx, parts[1:])

		case "sync":
			a.syncNow(ctx)

		case "status":
			a.status(ctx)

		case "refresh":
			a.refresh(ctx)

		case "exit", "quit":
			return

		default:
			fmt.Println("Unknown command, type 'help'")
		}
	}
}
