package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hecreatescode/versekeeper/internal/models"
)

func (a *App) addPoem(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	tags, err := GetCommaList(a.reader, "Tags (comma-separated, empty for none)", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	moods, err := GetCommaList(a.reader, "Moods (comma-separated, empty for none)", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	p := &models.Poem{Title: title, Content: content, Tags: tags, Moods: moods}
	if err := a.poemService.Save(ctx, p); err != nil {
		a.log.Error(ctx, "error saving poem", "err", err)
		return
	}
	fmt.Printf("Saved %s\n", p.ID)
}

func (a *App) listPoems(ctx context.Context) {
	all := a.poemService.List(ctx)
	if len(all) == 0 {
		fmt.Println("No poems yet. Type 'add' to write one.")
		return
	}
	for _, p := range all {
		marker := " "
		if p.IsEncrypted {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  %s\n", marker, p.ID, p.Date, p.Title)
	}
}

func (a *App) showPoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "show <id>")
	if !ok {
		return
	}

	p, err := a.poemService.Get(ctx, id)
	if err != nil {
		fmt.Println("Poem not found:", id)
		return
	}

	fmt.Printf("%s (%s)\n", p.Title, p.Date)
	if len(p.Tags) > 0 {
		fmt.Printf("tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if len(p.Moods) > 0 {
		fmt.Printf("moods: %s\n", strings.Join(p.Moods, ", "))
	}
	if p.IsEncrypted {
		fmt.Println("[encrypted; use 'reveal' to view]")
	} else {
		fmt.Println(p.Content)
	}
	for i, v := range p.Versions {
		fmt.Printf("-- version %d (%s)\n", i+1, v.Timestamp.Format("2006-01-02 15:04"))
	}
}

func (a *App) editPoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "edit <id>")
	if !ok {
		return
	}

	p, err := a.poemService.Get(ctx, id)
	if err != nil {
		fmt.Println("Poem not found:", id)
		return
	}
	if p.IsEncrypted {
		fmt.Println("Decrypt the poem before editing it.")
		return
	}

	content, err := GetMultiline(a.reader, "New content", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	p.Content = content
	if err := a.poemService.Save(ctx, p); err != nil {
		a.log.Error(ctx, "error saving poem", "err", err)
		return
	}
	fmt.Printf("Saved; %d version(s) kept\n", len(p.Versions))
}

func (a *App) deletePoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "delete <id>")
	if !ok {
		return
	}
	if err := a.poemService.Delete(ctx, id); err != nil {
		a.log.Error(ctx, "error deleting poem", "err", err)
		return
	}
	fmt.Println("Deleted", id)
}

func (a *App) tagPoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "tag <id>")
	if !ok {
		return
	}

	p, err := a.poemService.Get(ctx, id)
	if err != nil {
		fmt.Println("Poem not found:", id)
		return
	}
	if len(p.Tags) > 0 {
		fmt.Printf("Current tags: %s\n", strings.Join(p.Tags, ", "))
	}

	tags, err := GetCommaList(a.reader, "Tags (comma-separated, empty to clear)", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	p.Tags = tags
	if err := a.poemService.Save(ctx, p); err != nil {
		a.log.Error(ctx, "error saving poem", "err", err)
		return
	}
	fmt.Println("Tagged", id)
}

func (a *App) moodPoem(ctx context.Context, args []string) {
	id, ok := oneArg(args, "mood <id>")
	if !ok {
		return
	}

	p, err := a.poemService.Get(ctx, id)
	if err != nil {
		fmt.Println("Poem not found:", id)
		return
	}

	available := a.settingsRepo.Get(ctx).Moods()
	fmt.Printf("Available moods: %s\n", strings.Join(available, ", "))

	moods, err := GetCommaList(a.reader, "Moods (comma-separated, empty to clear)", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	p.Moods = moods
	if err := a.poemService.Save(ctx, p); err != nil {
		a.log.Error(ctx, "error saving poem", "err", err)
		return
	}
	fmt.Println("Updated moods for", id)
}

func oneArg(args []string, usage string) (string, bool) {
	if len(args) != 1 {
		fmt.Println("Usage:", usage)
		return "", false
	}
	return args[0], true
}
