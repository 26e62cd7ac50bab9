package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rolodex/internal/app"
	"github.com/llehouerou/rolodex/internal/config"
	"github.com/llehouerou/rolodex/internal/contacts"
	"github.com/llehouerou/rolodex/internal/errmsg"
	"github.com/llehouerou/rolodex/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "rolodex")
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpInitialize, cfg.DebugLog, err))
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpDatabaseOpen, err))
	}
	defer st.Close()

	if err := seed(cfg, st); err != nil {
		return err
	}

	p := tea.NewProgram(app.New(cfg, st), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// seed fills an empty store from the configured data file, or from the
// bundled sample when none is set.
func seed(cfg *config.Config, st *store.Store) error {
	empty, err := st.Empty()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpContactsLoad, err))
	}
	if !empty {
		return nil
	}

	sections := contacts.Sample()
	if cfg.HasDataFile() {
		loaded, err := contacts.LoadFile(cfg.DataFile)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpDataFileRead, cfg.DataFile, err))
		}
		sections = loaded
	}

	seeded, err := st.Seed(sections)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpContactsSeed, err))
	}
	if seeded {
		log.Printf("seeded %d sections", len(sections))
	}
	return nil
}
