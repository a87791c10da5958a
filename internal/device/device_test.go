package device

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/switchboard/internal/capability"
)

func TestNewWorkstation_RejectsPrintOnlyDeviceForScanning(t *testing.T) {
	var out bytes.Buffer

	// Binding fails at construction, before any operation is attempted.
	_, err := NewWorkstation(NewInkjet(&out), CapPrinting, CapScanning, CapFaxing)
	require.ErrorIs(t, err, capability.ErrContractMismatch)
	require.Empty(t, out.String())
}

func TestNewWorkstation_PrintOnly(t *testing.T) {
	var out bytes.Buffer

	ws, err := NewWorkstation(NewInkjet(&out), CapPrinting)
	require.NoError(t, err)
	require.Equal(t, []string{CapPrinting}, ws.Capabilities())

	require.NoError(t, ws.Print(Document{Name: "report.pdf", Content: "Q3 numbers"}))
	require.Contains(t, out.String(), "PRINT report.pdf")

	// Operations outside the wired capabilities are not reachable.
	_, err = ws.Scan(Document{Name: "report.pdf"})
	require.Error(t, err)
}

func TestNewWorkstation_MultifunctionHonorsAllContracts(t *testing.T) {
	var out bytes.Buffer

	ws, err := NewWorkstation(NewMultifunction(&out), CapPrinting, CapScanning, CapFaxing)
	require.NoError(t, err)
	require.Equal(t, []string{CapFaxing, CapPrinting, CapScanning}, ws.Capabilities())

	doc := Document{Name: "contract.pdf", Content: "terms"}
	require.NoError(t, ws.Print(doc))

	content, err := ws.Scan(doc)
	require.NoError(t, err)
	require.Equal(t, "terms", content)

	require.NoError(t, ws.Fax(doc, "+1-555-0100"))
}

func TestWorkstation_AttachValidatesConformance(t *testing.T) {
	var out bytes.Buffer

	ws, err := NewWorkstation(NewMultifunction(&out), CapPrinting, CapScanning)
	require.NoError(t, err)

	// An inkjet can take over printing but not scanning.
	var inkjetOut bytes.Buffer
	require.NoError(t, ws.Attach(CapPrinting, NewInkjet(&inkjetOut)))
	require.ErrorIs(t, ws.Attach(CapScanning, NewInkjet(&inkjetOut)), capability.ErrContractMismatch)

	require.NoError(t, ws.Print(Document{Name: "memo.txt", Content: "hi"}))
	require.Contains(t, inkjetOut.String(), "PRINT memo.txt")

	// Scanning still runs on the multifunction device after the failed attach.
	_, err = ws.Scan(Document{Name: "memo.txt", Content: "hi"})
	require.NoError(t, err)
}

func TestRegistry_DetectsDeviceCapabilities(t *testing.T) {
	reg := capability.NewRegistry()
	require.NoError(t, RegisterContracts(reg))

	var out bytes.Buffer
	require.Equal(t, []string{CapPrinting}, reg.Detect(NewInkjet(&out)))
	require.Equal(t, []string{CapFaxing, CapPrinting, CapScanning}, reg.Detect(NewMultifunction(&out)))
}
