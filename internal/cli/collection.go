package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hecreatescode/versekeeper/internal/models"
)

func (a *App) collection(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: col new | col list | col assign <poemId> <colId> | col poems <colId>")
		return
	}

	switch args[0] {
	case "new":
		a.newCollection(ctx)
	case "list":
		a.listCollections(ctx)
	case "assign":
		if len(args) != 3 {
			fmt.Println("Usage: col assign <poemId> <colId>")
			return
		}
		if err := a.poemService.AssignToCollection(ctx, args[1], args[2]); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println("Assigned")
	case "poems":
		if len(args) != 2 {
			fmt.Println("Usage: col poems <colId>")
			return
		}
		poems, err := a.poemService.PoemsInCollection(ctx, args[1])
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, p := range poems {
			fmt.Printf("%s  %s  %s\n", p.ID, p.Date, p.Title)
		}
	default:
		fmt.Println("Unknown subcommand:", args[0])
	}
}

func (a *App) newCollection(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	c := &models.Collection{
		ID:          models.NewID("col"),
		Name:        name,
		Description: description,
		Color:       "#8b5cf6",
		CreatedAt:   time.Now(),
		Order:       len(a.collectionRepo.List(ctx)),
	}
	if err := a.collectionRepo.Upsert(ctx, c); err != nil {
		a.log.Error(ctx, "error saving collection", "err", err)
		return
	}
	fmt.Printf("Created %s\n", c.ID)
}

func (a *App) listCollections(ctx context.Context) {
	all := a.collectionRepo.List(ctx)
	if len(all) == 0 {
		fmt.Println("No collections yet.")
		return
	}
	for _, c := range all {
		fmt.Printf("%s  %s (%d poems)\n", c.ID, c.Name, len(c.PoemIDs))
	}
}

func (a *App) showJournal(ctx context.Context, args []string) {
	date := time.Now().Format(models.DateLayout)
	if len(args) == 1 {
		date = args[0]
	}

	j, err := a.journalRepo.FindByDate(ctx, date)
	if err != nil {
		fmt.Println("No journal entry for", date)
		return
	}

	fmt.Printf("%s: %d poem(s)\n", j.Date, len(j.PoemIDs))
	for _, id := range j.PoemIDs {
		p, err := a.poemService.Get(ctx, id)
		if err != nil {
			// deleted poems stay listed in the journal; skip them here
			continue
		}
		fmt.Printf("  %s  %s\n", p.ID, p.Title)
	}
}

func (a *App) listTemplates(ctx context.Context) {
	for _, tpl := range a.templateRepo.List(ctx) {
		fmt.Printf("%s  %s\n    %s\n", tpl.ID, tpl.Name, tpl.Structure)
	}
}
