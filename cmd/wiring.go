package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/zjrosen/switchboard/internal/capability"
	"github.com/zjrosen/switchboard/internal/config"
	"github.com/zjrosen/switchboard/internal/device"
	"github.com/zjrosen/switchboard/internal/notify"
	"github.com/zjrosen/switchboard/internal/pubsub"
	"github.com/zjrosen/switchboard/internal/routes"
)

// Capability names for the non-device contracts.
const (
	capRoutes = "route-calculation"
	capNotify = "message-delivery"
)

// buildRegistry assembles the full contract registry with every shipped
// variant registered. This is composition-root wiring only; no business
// logic lives here.
func buildRegistry(out io.Writer, emailFrom string) (*capability.Registry, error) {
	reg := capability.NewRegistry()

	if err := reg.RegisterContract(capability.Define[routes.Calculator](capRoutes, "Calculate advisory routes between two locations")); err != nil {
		return nil, err
	}
	if err := reg.RegisterContract(capability.Define[notify.Sender](capNotify, "Deliver notification messages")); err != nil {
		return nil, err
	}
	if err := device.RegisterContracts(reg); err != nil {
		return nil, err
	}

	for name, calc := range map[string]routes.Calculator{
		"driving": routes.Driving{},
		"walking": routes.Walking{},
		"cycling": routes.Cycling{},
	} {
		if err := reg.RegisterVariant(capRoutes, name, calc); err != nil {
			return nil, err
		}
	}

	for name, sender := range map[string]notify.Sender{
		"email": notify.NewEmailSender(out, emailFrom),
		"sms":   notify.NewSMSSender(out),
		"bus":   notify.NewBusSender(pubsub.NewBroker[notify.Message]()),
	} {
		if err := reg.RegisterVariant(capNotify, name, sender); err != nil {
			return nil, err
		}
	}

	if err := reg.RegisterVariant(device.CapPrinting, "inkjet", device.NewInkjet(out)); err != nil {
		return nil, err
	}
	for _, capName := range []string{device.CapPrinting, device.CapScanning, device.CapFaxing} {
		if err := reg.RegisterVariant(capName, "multifunction", device.NewMultifunction(out)); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// calculatorFor builds the route calculator named in the config.
func calculatorFor(cfg config.Config) (routes.Calculator, error) {
	var calc routes.Calculator
	switch cfg.Route.Strategy {
	case "driving":
		calc = routes.Driving{}
	case "walking":
		calc = routes.Walking{}
	case "cycling":
		calc = routes.Cycling{}
	default:
		return nil, fmt.Errorf("unknown route strategy %q", cfg.Route.Strategy)
	}
	if cfg.Cache.Enabled {
		calc = routes.NewCached(calc, cfg.Cache.TTL)
	}
	return calc, nil
}

// senderFor builds the delivery channel named in the config. Bus senders
// get a broker whose events are echoed to out so deliveries stay visible.
func senderFor(cfg config.Config, out io.Writer) (notify.Sender, func(), error) {
	switch cfg.Notify.Channel {
	case "email":
		return notify.NewEmailSender(out, cfg.Notify.EmailFrom), func() {}, nil
	case "sms":
		return notify.NewSMSSender(out), func() {}, nil
	case "bus":
		bus := pubsub.NewBroker[notify.Message]()
		ctx, cancel := context.WithCancel(context.Background())
		events := bus.Subscribe(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for event := range events {
				fmt.Fprintf(out, "BUS to=%s subject=%s\n", event.Payload.Recipient, event.Payload.Subject)
			}
		}()
		closeBus := func() {
			bus.Close()
			cancel()
			<-done
		}
		return notify.NewBusSender(bus), closeBus, nil
	default:
		return nil, nil, fmt.Errorf("unknown notify channel %q", cfg.Notify.Channel)
	}
}
