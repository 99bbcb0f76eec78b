package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parseaddr/pkg/countries"
	"github.com/parseaddr/pkg/parser"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parseaddr",
		Short: "Locale-parameterized postal address parser",
		Long:  `A regex-grammar-based postal address parser supporting multiple countries.`,
	}

	rootCmd.AddCommand(createParseCmd())
	rootCmd.AddCommand(createCountriesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createParseCmd() *cobra.Command {
	var country string
	var asJSON bool
	var singleStreet bool

	cmd := &cobra.Command{
		Use:   "parse [address]",
		Short: "Parse one or more addresses",
		Long:  `Parse an address given as an argument, or read addresses one per line from stdin when no argument is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return parseAndPrint(args[0], country, singleStreet, asJSON)
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				if err := parseAndPrint(line, country, singleStreet, asJSON); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&country, "country", "US", "country tag to parse against (US, CA)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as JSON")
	cmd.Flags().BoolVar(&singleStreet, "single-street", false, "treat input as a street-only line (no city/region/postal code)")

	return cmd
}

func parseAndPrint(input, country string, singleStreet, asJSON bool) error {
	sanitized, err := parser.ValidateAndSanitize(input)
	if err != nil {
		return fmt.Errorf("validate %q: %w", input, err)
	}

	if singleStreet {
		addr, err := parser.ParseSingleStreet(sanitized, country)
		if err != nil {
			return err
		}
		return printAddresses(addrOrEmpty(addr), asJSON)
	}

	addrs, err := parser.Parse(sanitized, country)
	if err != nil {
		return err
	}
	return printAddresses(addrs, asJSON)
}

func addrOrEmpty(a *parser.Address) []*parser.Address {
	if a == nil {
		return nil
	}
	return []*parser.Address{a}
}

func printAddresses(addrs []*parser.Address, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(addrs)
	}

	if len(addrs) == 0 {
		fmt.Println("no address found")
		return nil
	}
	for _, a := range addrs {
		fmt.Println(a.FullMatch)
	}
	return nil
}

func createCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List supported country tags",
		Run: func(cmd *cobra.Command, args []string) {
			for _, tag := range countries.Supported() {
				fmt.Println(tag)
			}
		},
	}
}
