package device

import (
	"fmt"

	"github.com/zjrosen/switchboard/internal/capability"
	"github.com/zjrosen/switchboard/internal/dispatch"
	"github.com/zjrosen/switchboard/internal/log"
)

// RegisterContracts adds the three device contracts to a registry.
func RegisterContracts(reg *capability.Registry) error {
	contracts := []capability.Contract{
		capability.Define[Printer](CapPrinting, "Print documents"),
		capability.Define[Scanner](CapScanning, "Scan documents"),
		capability.Define[Faxer](CapFaxing, "Fax documents"),
	}
	for _, c := range contracts {
		if err := reg.RegisterContract(c); err != nil {
			return err
		}
	}
	return nil
}

// Workstation binds one device per capability it needs. Construction fails
// with ErrContractMismatch if the device cannot honor a requested
// capability, before any operation is attempted.
type Workstation struct {
	board *dispatch.Board
}

// NewWorkstation creates a workstation wired to the given device for every
// requested capability.
func NewWorkstation(dev any, needs ...string) (*Workstation, error) {
	reg := capability.NewRegistry()
	if err := RegisterContracts(reg); err != nil {
		return nil, err
	}

	board := dispatch.NewBoard(reg)
	for _, name := range needs {
		if err := board.Bind(name, dev); err != nil {
			return nil, fmt.Errorf("workstation: %w", err)
		}
	}

	log.Debug(log.CatDevice, "workstation assembled", "capabilities", needs, "device", fmt.Sprintf("%T", dev))
	return &Workstation{board: board}, nil
}

// Attach rebinds a capability to a different device. The new device must
// conform; a mismatch leaves the previous device attached.
func (w *Workstation) Attach(capability string, dev any) error {
	return w.board.Rebind(capability, dev)
}

// Capabilities returns the capabilities this workstation is wired for.
func (w *Workstation) Capabilities() []string {
	return w.board.Bound()
}

// Print forwards to the device bound for printing.
func (w *Workstation) Print(doc Document) error {
	dev, ok := w.board.Current(CapPrinting)
	if !ok {
		return fmt.Errorf("workstation printing: %w", dispatch.ErrNotBound)
	}
	// The bind-time conformance check guarantees this assertion.
	return dev.(Printer).Print(doc)
}

// Scan forwards to the device bound for scanning.
func (w *Workstation) Scan(doc Document) (string, error) {
	dev, ok := w.board.Current(CapScanning)
	if !ok {
		return "", fmt.Errorf("workstation scanning: %w", dispatch.ErrNotBound)
	}
	return dev.(Scanner).Scan(doc)
}

// Fax forwards to the device bound for faxing.
func (w *Workstation) Fax(doc Document, number string) error {
	dev, ok := w.board.Current(CapFaxing)
	if !ok {
		return fmt.Errorf("workstation faxing: %w", dispatch.ErrNotBound)
	}
	return dev.(Faxer).Fax(doc, number)
}
