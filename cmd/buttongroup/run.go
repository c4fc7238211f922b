package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"buttongroup/internal/config"
	"buttongroup/internal/eventbus"
	"buttongroup/internal/ui"
	"buttongroup/internal/widgetmgr"
)

// forwardedEvents are the domain events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventValuePushed,
	eventbus.EventManagerStatus,
	eventbus.EventFormCleared,
	eventbus.EventWidgetValueSet,
	eventbus.EventError,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
}

func runTUI(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	defer bus.Close()

	// Subscribe before loading so the load event reaches the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range forwardedEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		})
	}

	cfg, path, err := loadConfig(bus)
	if err != nil {
		log.Printf("Error loading config %s: %v", path, err)
		return err
	}
	if cfg.AssignIDs() {
		persistIDs(bus, cfg, path)
	}

	mgr := widgetmgr.NewMemoryManagerWithBus(bus)

	log.Printf("Creating UI model...")
	uiModel, err := ui.NewModel(bus, cfg, mgr)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	defer uiModel.Close()

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	log.Printf("Starting UI...")
	_, err = p.Run()
	close(done)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return err
	}
	log.Printf("UI exited normally")
	return nil
}

// persistIDs writes generated widget IDs back so they survive restarts
func persistIDs(bus eventbus.EventBus, cfg *config.Config, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	svc := config.NewConfigServiceWithBus(bus)
	if err := svc.SaveToPath(cfg, path); err != nil {
		log.Printf("Failed to save generated widget ids: %v", err)
	}
}
