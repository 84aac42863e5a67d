package config_test

import (
	"fmt"
	"log"

	"github.com/ajitpratap0/tabula/pkg/config"
)

// ExampleDefault demonstrates the default dataset settings.
func ExampleDefault() {
	cfg := config.Default()

	fmt.Printf("Encoding: %s\n", cfg.Dataset.Encoding)
	fmt.Printf("Delimiter: %q\n", cfg.Dataset.Delimiter)
	fmt.Printf("Extension: %s\n", cfg.Dataset.Extension)

	// Output:
	// Encoding: ISO-8859-1
	// Delimiter: ","
	// Extension: .csv
}

// ExampleConfig_Validate shows how to validate a configuration
// before opening a dataset.
func ExampleConfig_Validate() {
	cfg := config.Default()
	cfg.Dataset.Delimiter = "tab"
	cfg.Output.Format = config.FormatJSON

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Println("Configuration is valid!")

	// Output:
	// Configuration is valid!
}
