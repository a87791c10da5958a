package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/switchboard/internal/notify"
	"github.com/zjrosen/switchboard/internal/tracing"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a notification via the configured channel",
	RunE:  runNotify,
}

func init() {
	notifyCmd.Flags().String("to", "", "recipient (required)")
	notifyCmd.Flags().String("subject", "", "message subject")
	notifyCmd.Flags().String("body", "", "message body (required)")
	notifyCmd.Flags().String("channel", "", "override the configured channel for this call")
	_ = notifyCmd.MarkFlagRequired("to")
	_ = notifyCmd.MarkFlagRequired("body")

	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	if channel, _ := cmd.Flags().GetString("channel"); channel != "" {
		cfg.Notify.Channel = channel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	sender, closeSender, err := senderFor(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer closeSender()

	service, err := notify.NewService(sender, notify.WithTracer(provider.Tracer()))
	if err != nil {
		return err
	}

	to, _ := cmd.Flags().GetString("to")
	subject, _ := cmd.Flags().GetString("subject")
	body, _ := cmd.Flags().GetString("body")

	msg := notify.NewMessage(to, subject, body)
	if err := service.Notify(cmd.Context(), msg); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("delivered %s via %s", msg.ID, cfg.Notify.Channel)))
	return nil
}
