package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List registered capability contracts and their variants",
	RunE:  runCapabilities,
}

func init() {
	rootCmd.AddCommand(capabilitiesCmd)
}

func runCapabilities(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry(os.Stdout, cfg.Notify.EmailFrom)
	if err != nil {
		return err
	}

	for _, name := range reg.List() {
		contract, _ := reg.ContractFor(name)
		fmt.Println(headingStyle.Render(name))
		if contract.Description != "" {
			fmt.Println(subtleStyle.Render("  " + contract.Description))
		}

		for _, m := range contract.Methods {
			fmt.Printf("  %s(%s) (%s)\n", m.Name, strings.Join(m.Params, ", "), strings.Join(m.Returns, ", "))
		}

		names := make([]string, 0)
		for _, v := range reg.Variants(name) {
			names = append(names, v.Name)
		}
		if len(names) > 0 {
			fmt.Println(subtleStyle.Render("  variants: " + strings.Join(names, ", ")))
		}
		fmt.Println()
	}
	return nil
}
