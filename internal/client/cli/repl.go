package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Vendors(ctx context.Context, args []string) error
	VendorDetail(ctx context.Context, args []string) error
	Nearby(ctx context.Context, args []string) error
	Cuisines(ctx context.Context) error
	CuisineDetail(ctx context.Context, args []string) error
	SearchCuisines(ctx context.Context, args []string) error
	Favorites(ctx context.Context) error
	ToggleFavorite(ctx context.Context, args []string) error
	RemoveFavorite(ctx context.Context, args []string) error
	Reviews(ctx context.Context, args []string) error
	AddReview(ctx context.Context, args []string) error
	EditReview(ctx context.Context, args []string) error
	DeleteReview(ctx context.Context, args []string) error
	LikeReview(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	Stats(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
}

const (
	loginHelp = "Available commands: login, register, theme [light|dark|system|toggle], exit"
	mainHelp  = "Available commands: vendors [query] [cuisine-id], vendor <id>, nearby <lat> <lng> [km], " +
		"cuisines, cuisine <id>, csearch <query>, favorites, fav <vendor-id>, unfav <vendor-id>, " +
		"reviews <vendor-id>, review <vendor-id> <rating> [comment], editreview <id> <rating> [comment], " +
		"delreview <id>, like <review-id>, profile, stats, refresh, theme, logout, exit"
)

// runREPL starts a simple read-eval-print loop. It reads a line from the
// provided scanner, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// The command set is branch-aware: while logged out only the login-flow
// commands are accepted; everything else tells the user to log in first.
// Errors returned by handlers are presented to the user and leave state
// as the handler left it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sbite %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(mainHelp)
			} else {
				printlnFn(loginHelp)
			}

		case "login":
			err = a.Login(ctx)

		case "register":
			err = a.Register(ctx)

		case "theme":
			err = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Please log in first (try 'login' or 'register')")
				continue
			}

			switch cmd {
			case "vendors":
				err = a.Vendors(ctx, args)
			case "vendor":
				err = a.VendorDetail(ctx, args)
			case "nearby":
				err = a.Nearby(ctx, args)
			case "cuisines":
				err = a.Cuisines(ctx)
			case "cuisine":
				err = a.CuisineDetail(ctx, args)
			case "csearch":
				err = a.SearchCuisines(ctx, args)
			case "favorites":
				err = a.Favorites(ctx)
			case "fav":
				err = a.ToggleFavorite(ctx, args)
			case "unfav":
				err = a.RemoveFavorite(ctx, args)
			case "reviews":
				err = a.Reviews(ctx, args)
			case "review":
				err = a.AddReview(ctx, args)
			case "editreview":
				err = a.EditReview(ctx, args)
			case "delreview":
				err = a.DeleteReview(ctx, args)
			case "like":
				err = a.LikeReview(ctx, args)
			case "profile":
				err = a.Profile(ctx)
			case "stats":
				err = a.Stats(ctx)
			case "refresh":
				err = a.Refresh(ctx)
			case "logout":
				err = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
