package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Root runs the interactive read-eval-print loop. Command handlers log
// their own errors; the loop stays alive until "exit" or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to versekeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("vk> ")
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp()
		case "add":
			a.addPoem(ctx)
		case "l", "list":
			a.listPoems(ctx)
		case "show":
			a.showPoem(ctx, args)
		case "edit":
			a.editPoem(ctx, args)
		case "delete":
			a.deletePoem(ctx, args)
		case "encrypt":
			a.encryptPoem(ctx, args)
		case "decrypt":
			a.decryptPoem(ctx, args)
		case "reveal":
			a.revealPoem(ctx, args)
		case "tag":
			a.tagPoem(ctx, args)
		case "mood":
			a.moodPoem(ctx, args)
		case "col":
			a.collection(ctx, args)
		case "journal":
			a.showJournal(ctx, args)
		case "stats":
			a.showStats(ctx)
		case "goals":
			a.showGoals(ctx)
		case "addgoal":
			a.addGoal(ctx)
		case "ach":
			a.showAchievements(ctx)
		case "templates":
			a.listTemplates(ctx)
		case "export":
			a.exportBackup(ctx, args)
		case "import":
			a.importBackup(ctx, args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  add                     write a new poem")
	fmt.Println("  (l)ist                  list poems")
	fmt.Println("  show <id>               show a poem with its versions")
	fmt.Println("  edit <id>               rewrite a poem's content")
	fmt.Println("  delete <id>             delete a poem")
	fmt.Println("  encrypt <id>            encrypt a poem with a password")
	fmt.Println("  decrypt <id>            decrypt a poem permanently")
	fmt.Println("  reveal <id>             view an encrypted poem without storing plaintext")
	fmt.Println("  tag <id> | mood <id>    replace a poem's tags or moods")
	fmt.Println("  col new|list|assign|poems")
	fmt.Println("  journal [date]          poems saved on a day (default today)")
	fmt.Println("  stats                   writing statistics")
	fmt.Println("  goals | addgoal | ach   goals and achievements")
	fmt.Println("  templates               list poem templates")
	fmt.Println("  export <file> | import <file>")
	fmt.Println("  exit")
}
