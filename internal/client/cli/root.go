package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to MessMate CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "mess %s> ", a.status())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(a.out, "read command: %v\n", err)
			return
		}

		if !a.Execute(ctx, line) {
			return
		}
	}
}

// Execute runs one command line. It returns false when the shell should
// exit.
func (a *App) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		a.printHelp()

	case "signin", "login":
		_ = a.SignIn(ctx)
	case "signup", "register":
		_ = a.SignUp(ctx)
	case "logout":
		_ = a.SignOut(ctx)
	case "whoami":
		a.WhoAmI()

	case "meals":
		_ = a.ShowMeals(ctx, firstArg(args))
	case "more":
		_ = a.MoreMeals(ctx)
	case "refresh":
		_ = a.RefreshMeals(ctx)
	case "stats":
		a.MealStats()
	case "addmeal":
		_ = a.AddMeal(ctx)
	case "delmeal":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: delmeal <id>")
			return true
		}
		_ = a.DeleteMeal(ctx, args[0])

	case "expenses":
		_ = a.ShowExpenses(ctx, firstArg(args))
	case "emore":
		_ = a.MoreExpenses(ctx)
	case "erefresh":
		_ = a.RefreshExpenses(ctx)
	case "addexpense":
		_ = a.AddExpense(ctx)
	case "delexpense":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: delexpense <id>")
			return true
		}
		_ = a.DeleteExpense(ctx, args[0])

	case "users":
		_ = a.ShowUsers(ctx)
	case "setname":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: setname <name>")
			return true
		}
		_ = a.UpdateName(ctx, strings.Join(args, " "))

	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return false

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return true
}

func (a *App) status() string {
	if u := a.session.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.DisplayName())
	}
	if a.session.IsLoading() {
		return "(...)"
	}
	return ""
}

func (a *App) printHelp() {
	if a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: meals [YYYY-MM], more, refresh, stats, addmeal, delmeal <id>,")
		fmt.Fprintln(a.out, "  expenses [YYYY-MM], emore, erefresh, addexpense, delexpense <id>,")
		fmt.Fprintln(a.out, "  users, setname <name>, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: signin, signup, exit")
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
