package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CodePen-Alt/ColorPicker/internal/colormodel"
	"github.com/CodePen-Alt/ColorPicker/internal/config"
	"github.com/CodePen-Alt/ColorPicker/internal/database"
	"github.com/CodePen-Alt/ColorPicker/internal/database/repository"
	"github.com/CodePen-Alt/ColorPicker/internal/session"
	"github.com/CodePen-Alt/ColorPicker/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	kv := repository.NewKVRepo(db)

	start, err := colormodel.ParseHex(cfg.UI.StartColor)
	if err != nil {
		start = colormodel.RGB{R: 79, G: 70, B: 229}
	}

	sess := session.New(kv, start)
	if err := sess.LoadPalettes(ctx); err != nil {
		log.Fatalf("load palettes: %v", err)
	}

	// a persisted theme choice wins over the config file
	if theme, ok, err := kv.Get(ctx, tui.PrefKeyTheme); err == nil && ok {
		cfg.UI.Theme = theme
	}

	m := tui.New(ctx, cfg, sess, nil, kv)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
