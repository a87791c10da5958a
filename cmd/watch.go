package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/switchboard/internal/log"
	"github.com/zjrosen/switchboard/internal/notify"
	"github.com/zjrosen/switchboard/internal/routes"
	"github.com/zjrosen/switchboard/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebind dispatchers live as the config file changes",
	Long: `Watch keeps a route planner and a notification service running and
rebinds their variants whenever the config file changes. Edit the strategy
or channel in the config and watch the next calls land on the new variant.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		return fmt.Errorf("no config file in use; pass --config or create .switchboard/config.yaml")
	}

	calc, err := calculatorFor(cfg)
	if err != nil {
		return err
	}
	planner, err := routes.NewPlanner(calc)
	if err != nil {
		return err
	}

	sender, closeSender, err := senderFor(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer func() { closeSender() }()

	service, err := notify.NewService(sender)
	if err != nil {
		return err
	}

	w, err := watcher.New(watcher.DefaultConfig(configPath))
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Echo debug log lines live when logging is enabled.
	if lines := log.Subscribe(ctx); lines != nil {
		go func() {
			for event := range lines {
				fmt.Print(subtleStyle.Render(event.Payload))
			}
		}()
	}

	fmt.Println(headingStyle.Render("watching " + configPath))
	demo(ctx, planner, service)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-changes:
			fresh, err := loadConfig()
			if err != nil {
				// Invalid config never disturbs the current bindings.
				fmt.Println(subtleStyle.Render("ignoring config change: " + err.Error()))
				continue
			}

			newCalc, err := calculatorFor(fresh)
			if err != nil {
				fmt.Println(subtleStyle.Render("ignoring config change: " + err.Error()))
				continue
			}
			newSender, newClose, err := senderFor(fresh, os.Stdout)
			if err != nil {
				fmt.Println(subtleStyle.Render("ignoring config change: " + err.Error()))
				continue
			}

			if err := planner.SetStrategy(newCalc); err != nil {
				newClose()
				continue
			}
			if err := service.Use(newSender); err != nil {
				newClose()
				continue
			}
			closeSender()
			closeSender = newClose
			cfg = fresh

			fmt.Println(successStyle.Render(fmt.Sprintf("rebound: strategy=%s channel=%s",
				cfg.Route.Strategy, cfg.Notify.Channel)))
			demo(ctx, planner, service)
		}
	}
}

// demo drives one call through each dispatcher so the current bindings are
// visible.
func demo(ctx context.Context, planner *routes.Planner, service *notify.Service) {
	route, err := planner.Plan(ctx, "Home", "Office")
	if err == nil && route.Description != "" {
		fmt.Println("  " + route.Description)
	}

	msg := notify.NewMessage("ops@example.com", "switchboard", "bindings in effect")
	if err := service.Notify(ctx, msg); err != nil {
		fmt.Println(subtleStyle.Render("  delivery failed: " + err.Error()))
	}
}
