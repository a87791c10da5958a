// Package device models document-handling hardware with capability-scoped
// contracts. A device implements only the interfaces it can fully honor:
// there is no monolithic device interface and no "not supported" failure
// anywhere. A device that cannot scan simply does not have a Scan method,
// and binding it for scanning fails at bind time.
package device

import (
	"fmt"
	"io"
)

// Capability names used when registering device contracts.
const (
	CapPrinting = "printing"
	CapScanning = "scanning"
	CapFaxing   = "faxing"
)

// Document is the payload devices operate on.
type Document struct {
	Name    string
	Content string
}

// Printer prints documents.
type Printer interface {
	Print(doc Document) error
}

// Scanner scans documents and returns the captured content.
type Scanner interface {
	Scan(doc Document) (string, error)
}

// Faxer transmits documents to a fax number.
type Faxer interface {
	Fax(doc Document, number string) error
}

// Inkjet is a print-only device. It deliberately has no Scan or Fax method;
// its capability set is exactly what it implements.
type Inkjet struct {
	out io.Writer
}

// NewInkjet creates a print-only device writing to the given output.
func NewInkjet(out io.Writer) *Inkjet {
	return &Inkjet{out: out}
}

func (d *Inkjet) Print(doc Document) error {
	_, err := fmt.Fprintf(d.out, "PRINT %s\n%s\n", doc.Name, doc.Content)
	if err != nil {
		return fmt.Errorf("printing %s: %w", doc.Name, err)
	}
	return nil
}

// Multifunction is a device that prints, scans, and faxes.
type Multifunction struct {
	out io.Writer
}

// NewMultifunction creates a full-capability device writing to the given
// output.
func NewMultifunction(out io.Writer) *Multifunction {
	return &Multifunction{out: out}
}

func (d *Multifunction) Print(doc Document) error {
	_, err := fmt.Fprintf(d.out, "PRINT %s\n%s\n", doc.Name, doc.Content)
	if err != nil {
		return fmt.Errorf("printing %s: %w", doc.Name, err)
	}
	return nil
}

func (d *Multifunction) Scan(doc Document) (string, error) {
	_, err := fmt.Fprintf(d.out, "SCAN %s\n", doc.Name)
	if err != nil {
		return "", fmt.Errorf("scanning %s: %w", doc.Name, err)
	}
	return doc.Content, nil
}

func (d *Multifunction) Fax(doc Document, number string) error {
	_, err := fmt.Fprintf(d.out, "FAX %s to=%s\n", doc.Name, number)
	if err != nil {
		return fmt.Errorf("faxing %s: %w", doc.Name, err)
	}
	return nil
}
