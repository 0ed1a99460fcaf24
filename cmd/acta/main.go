package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/coolbeans/acta/pkg/akn"
	"github.com/coolbeans/acta/pkg/frbr"
	"github.com/coolbeans/acta/pkg/profile"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "acta",
		Short: "Akoma Ntoso document toolkit",
		Long: `Acta creates and edits Akoma Ntoso legal documents.

It manages the metadata layer of legislative XML:
  - Skeleton documents for every Akoma Ntoso document type
  - FRBR work, expression and manifestation URIs kept in sync
  - Titles, dates, languages and lifecycle provenance
  - Reusable document profiles loaded from YAML`,
		Version: version,
	}

	rootCmd.AddCommand(newCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(setCmd())
	rootCmd.AddCommand(typesCmd())
	rootCmd.AddCommand(profilesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultProfilesDir returns the default profile directory location.
func defaultProfilesDir() string {
	return "profiles"
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new Akoma Ntoso document",
		Long: `Create a skeleton Akoma Ntoso document.

Give a document type directly, or name a profile from a directory of
profile YAML files. A profile pre-fills the title, language and FRBR
URI coordinates; --profile wins when both flags are set.

Examples:
  acta new --type act
  acta new --type judgment --version 2.0 --out judgment.xml
  acta new --profile za-by-law --profiles-dir ./profiles --out by-law.xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")
			versionStr, _ := cmd.Flags().GetString("version")
			profileName, _ := cmd.Flags().GetString("profile")
			profilesDir, _ := cmd.Flags().GetString("profiles-dir")
			out, _ := cmd.Flags().GetString("out")

			var doc *akn.StructuredDocument

			switch {
			case profileName != "":
				registry, err := profile.NewRegistryWithDirectory(profilesDir)
				if err != nil {
					return fmt.Errorf("failed to load profiles from %s: %w", profilesDir, err)
				}
				prof, ok := registry.Get(profileName)
				if !ok {
					return fmt.Errorf("unknown profile: %s\nUse 'acta profiles %s' to see available profiles", profileName, profilesDir)
				}
				doc, err = prof.Build()
				if err != nil {
					return fmt.Errorf("failed to build document from profile %s: %w", profileName, err)
				}
			case typeName != "":
				typ, ok := akn.ForDocumentType(typeName)
				if !ok {
					return fmt.Errorf("unknown document type: %s\nUse 'acta types' to see available types", typeName)
				}
				skeleton, err := akn.EmptyDocument(typ, versionStr)
				if err != nil {
					return err
				}
				doc, err = akn.NewStructuredDocument(typ, []byte(skeleton))
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("--type or --profile flag is required")
			}

			return writeDocument(doc, out)
		},
	}

	cmd.Flags().StringP("type", "t", "", "Document type (act, bill, judgment, ...)")
	cmd.Flags().String("version", akn.DefaultVersion, "Akoma Ntoso version (2.0, 3.0)")
	cmd.Flags().StringP("profile", "p", "", "Profile name to build from")
	cmd.Flags().String("profiles-dir", defaultProfilesDir(), "Directory of profile YAML files")
	cmd.Flags().StringP("out", "o", "", "Output file path (default: stdout)")

	return cmd
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show a document's metadata",
		Long: `Show the type, title, dates, language, FRBR URIs and components
of an Akoma Ntoso document.

Examples:
  acta show act.xml
  acta show act.xml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			info := collectInfo(doc)

			if asJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			}

			fmt.Printf("Type:     %s\n", info.Type)
			fmt.Printf("Title:    %s\n", info.Title)
			fmt.Printf("Language: %s\n", info.Language)

			if info.WorkURI != "" {
				fmt.Println()
				fmt.Printf("Work URI:          %s\n", info.WorkURI)
				fmt.Printf("Expression URI:    %s\n", info.ExpressionURI)
				fmt.Printf("Manifestation URI: %s\n", info.ManifestationURI)
			}

			fmt.Println()
			fmt.Printf("Work date:          %s\n", info.WorkDate)
			fmt.Printf("Expression date:    %s\n", info.ExpressionDate)
			fmt.Printf("Manifestation date: %s\n", info.ManifestationDate)

			if len(info.Components) > 0 {
				fmt.Println("\nComponents:")
				for _, name := range info.Components {
					fmt.Printf("  %s\n", name)
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}

// documentInfo is the metadata summary printed by 'acta show'.
type documentInfo struct {
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Language          string    `json:"language"`
	WorkDate          string    `json:"work_date,omitempty"`
	ExpressionDate    string    `json:"expression_date,omitempty"`
	ManifestationDate string    `json:"manifestation_date,omitempty"`
	WorkURI           string    `json:"work_uri,omitempty"`
	ExpressionURI     string    `json:"expression_uri,omitempty"`
	ManifestationURI  string    `json:"manifestation_uri,omitempty"`
	FrbrURI           *frbr.URI `json:"frbr_uri,omitempty"`
	Components        []string  `json:"components,omitempty"`
}

// collectInfo gathers what metadata the document has; missing pieces are
// left blank rather than reported as errors.
func collectInfo(doc *akn.StructuredDocument) *documentInfo {
	info := &documentInfo{
		Type:     doc.Type().DocumentType,
		Title:    doc.Title(),
		Language: doc.Language(),
	}

	if uri, err := doc.FrbrURI(); err == nil && uri != nil {
		info.FrbrURI = uri
		info.WorkURI = uri.WorkURI(false)
		info.ExpressionURI = uri.ExpressionURI(false)
		info.ManifestationURI = uri.ManifestationURI(false)
	}

	if t, err := doc.WorkDate(); err == nil {
		info.WorkDate = frbr.DateString(t)
	}
	if t, err := doc.ExpressionDate(); err == nil {
		info.ExpressionDate = frbr.DateString(t)
	}
	if t, err := doc.ManifestationDate(); err == nil {
		info.ManifestationDate = frbr.DateString(t)
	}

	if components, err := doc.Components(); err == nil {
		for _, component := range components {
			info.Components = append(info.Components, component.Name)
		}
	}

	return info
}

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file>",
		Short: "Set document metadata",
		Long: `Set metadata on an Akoma Ntoso document and save it.

Changing the FRBR URI rewrites the work, expression and manifestation
identification of every component. Changing the language or expression
date re-derives the expression and manifestation URIs. Any change
records the editing organization in the document lifecycle.

Examples:
  acta set act.xml --title "Fire Safety By-law"
  acta set act.xml --frbr-uri /akn/za-cpt/act/by-law/2015/25
  acta set act.xml --language fr --expression-date 2014-02-12 --out revised.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			languageCode, _ := cmd.Flags().GetString("language")
			frbrURI, _ := cmd.Flags().GetString("frbr-uri")
			workDate, _ := cmd.Flags().GetString("work-date")
			expressionDate, _ := cmd.Flags().GetString("expression-date")
			out, _ := cmd.Flags().GetString("out")

			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			changes := 0

			if frbrURI != "" {
				if err := doc.SetFrbrURIString(frbrURI); err != nil {
					return err
				}
				changes++
			}

			if title != "" {
				if err := doc.SetTitle(title); err != nil {
					return fmt.Errorf("failed to set title: %w", err)
				}
				changes++
			}

			if languageCode != "" {
				normalized, err := akn.NormalizeLanguage(languageCode)
				if err != nil {
					return fmt.Errorf("invalid language code: %s", languageCode)
				}
				if err := doc.SetLanguage(normalized); err != nil {
					return fmt.Errorf("failed to set language: %w", err)
				}
				changes++
			}

			if workDate != "" {
				t, err := time.Parse("2006-01-02", workDate)
				if err != nil {
					return fmt.Errorf("invalid work date: %s (use YYYY-MM-DD)", workDate)
				}
				if err := doc.SetWorkDate(t); err != nil {
					return fmt.Errorf("failed to set work date: %w", err)
				}
				changes++
			}

			if expressionDate != "" {
				t, err := time.Parse("2006-01-02", expressionDate)
				if err != nil {
					return fmt.Errorf("invalid expression date: %s (use YYYY-MM-DD)", expressionDate)
				}
				if err := doc.SetExpressionDate(t); err != nil {
					return fmt.Errorf("failed to set expression date: %w", err)
				}
				changes++
			}

			if changes == 0 {
				return fmt.Errorf("nothing to set (use --title, --language, --frbr-uri, --work-date or --expression-date)")
			}

			if _, err := doc.EnsureLifecycle(); err != nil {
				return fmt.Errorf("failed to record lifecycle: %w", err)
			}

			if out == "" {
				out = args[0]
			}
			data, err := doc.ToPrettyXML()
			if err != nil {
				return fmt.Errorf("failed to serialize document: %w", err)
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}

			fmt.Printf("Updated %s (%d change(s))\n", out, changes)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Document title")
	cmd.Flags().String("language", "", "Expression language (2- or 3-letter ISO-639 code)")
	cmd.Flags().String("frbr-uri", "", "FRBR work URI (e.g. /akn/za/act/2005/5)")
	cmd.Flags().String("work-date", "", "Work date (YYYY-MM-DD)")
	cmd.Flags().String("expression-date", "", "Expression date (YYYY-MM-DD)")
	cmd.Flags().StringP("out", "o", "", "Output file path (default: overwrite input)")

	return cmd
}

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered document types",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-15s %-22s %s\n", "TYPE", "STRUCTURE", "CONTENT ELEMENT")
			fmt.Println(strings.Repeat("-", 55))
			for _, typ := range akn.Types() {
				fmt.Printf("%-15s %-22s %s\n", typ.DocumentType, typ.Structure.Name, typ.Structure.ContentTag)
			}
			return nil
		},
	}
}

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles [dir]",
		Short: "List document profiles",
		Long: `List the document profiles found in a directory of YAML files.

Examples:
  acta profiles
  acta profiles ./profiles
  acta profiles ./profiles --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatStr, _ := cmd.Flags().GetString("format")

			dir := defaultProfilesDir()
			if len(args) > 0 {
				dir = args[0]
			}

			registry, err := profile.NewRegistryWithDirectory(dir)
			if err != nil {
				return fmt.Errorf("failed to load profiles from %s: %w", dir, err)
			}

			profiles := registry.List()

			if formatStr == "json" {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(profiles)
			}

			if len(profiles) == 0 {
				fmt.Printf("No profiles found in %s\n", dir)
				return nil
			}

			fmt.Printf("%-20s %-14s %-10s %-6s %s\n", "NAME", "TYPE", "PLACE", "LANG", "DESCRIPTION")
			fmt.Println(strings.Repeat("-", 80))

			for _, prof := range profiles {
				place := prof.Country
				if prof.Locality != "" {
					place += "-" + prof.Locality
				}
				fmt.Printf("%-20s %-14s %-10s %-6s %s\n",
					truncateString(prof.Name, 20),
					prof.Type,
					place,
					prof.Language,
					prof.Description,
				)
			}

			fmt.Printf("\n%d profile(s)\n", len(profiles))
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")

	return cmd
}

// readDocument loads and parses an Akoma Ntoso file.
func readDocument(path string) (*akn.StructuredDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := akn.NewFromXML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// writeDocument serializes a document to a file, or to stdout when no
// path is given.
func writeDocument(doc *akn.StructuredDocument, out string) error {
	data, err := doc.ToPrettyXML()
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Printf("Document written to: %s\n", out)
		return nil
	}

	fmt.Print(string(data))
	return nil
}

func truncateString(inputStr string, maxLength int) string {
	if len(inputStr) <= maxLength {
		return inputStr
	}
	return inputStr[:maxLength-3] + "..."
}
