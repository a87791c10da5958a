package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/switchboard/internal/device"
)

var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Print a file on the selected device",
	Long: `Print a file, optionally scanning or faxing it too. The workstation is
assembled with exactly the capabilities the call needs; asking a print-only
device for scanning fails before anything runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().String("device", "multifunction", "device to use: inkjet or multifunction")
	printCmd.Flags().Bool("scan", false, "also scan the document")
	printCmd.Flags().String("fax", "", "also fax the document to this number")

	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	doc := device.Document{Name: args[0], Content: string(content)}

	var dev any
	switch name, _ := cmd.Flags().GetString("device"); name {
	case "inkjet":
		dev = device.NewInkjet(os.Stdout)
	case "multifunction":
		dev = device.NewMultifunction(os.Stdout)
	default:
		return fmt.Errorf("unknown device %q", name)
	}

	scan, _ := cmd.Flags().GetBool("scan")
	faxNumber, _ := cmd.Flags().GetString("fax")

	needs := []string{device.CapPrinting}
	if scan {
		needs = append(needs, device.CapScanning)
	}
	if faxNumber != "" {
		needs = append(needs, device.CapFaxing)
	}

	ws, err := device.NewWorkstation(dev, needs...)
	if err != nil {
		return err
	}

	if err := ws.Print(doc); err != nil {
		return err
	}
	if scan {
		if _, err := ws.Scan(doc); err != nil {
			return err
		}
	}
	if faxNumber != "" {
		if err := ws.Fax(doc, faxNumber); err != nil {
			return err
		}
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("done: %v", ws.Capabilities())))
	return nil
}
