package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtreloar/souschef/internal/config"
	"github.com/mtreloar/souschef/internal/cook/tui"
	"github.com/mtreloar/souschef/internal/cookbook"
	"github.com/mtreloar/souschef/internal/discovery"
	"github.com/mtreloar/souschef/internal/logging"
	"github.com/mtreloar/souschef/internal/recipe"
	"github.com/mtreloar/souschef/internal/urls"
)

// Command flags
var (
	cookbookDir  string
	outputFormat string
	scanTimeout  int
	suggestLimit int
)

func init() {
	// Common flags (persistent on root)
	rootCmd.PersistentFlags().StringVar(&cookbookDir, "cookbook", "", "Cookbook directory (default: config dir)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	// Add subcommands directly to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(cookCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(initCmd)
}

// openLibrary loads the cookbook from --cookbook or the default directory
func openLibrary() (*cookbook.Library, error) {
	dir := cookbookDir
	if dir == "" {
		var err error
		dir, err = cookbook.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate cookbook directory: %w", err)
		}
	}

	lib, err := cookbook.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load cookbook: %w", err)
	}
	return lib, nil
}

// findRecipe resolves a recipe argument against the cookbook
func findRecipe(lib *cookbook.Library, id string) (*recipe.Recipe, error) {
	r, ok := lib.Get(id)
	if !ok {
		return nil, fmt.Errorf("recipe %q not found in %s (use 'souschef list' to see the cookbook)", id, lib.Dir())
	}
	return r, nil
}

// runAssistant launches the interactive TUI (default command)
func runAssistant(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create fallback logger
		_ = err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	reg, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return tui.Run(lib, reg, nil)
}

// listCmd lists every recipe in the cookbook
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes in the cookbook",
	Long: `List every recipe in the cookbook with its step count, total time,
tags, and your rating.`,
	Example: `  # List the default cookbook
  souschef list

  # List a different recipe directory
  souschef list --cookbook ./recipes`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	if lib.Len() == 0 {
		fmt.Printf("Cookbook is empty (%s).\n", lib.Dir())
		fmt.Println("\nRun 'souschef init' to install the starter recipes,")
		fmt.Println("or drop recipe YAML files into the cookbook directory.")
		fmt.Printf("\nSee %s\n", urls.GettingStarted)
		return nil
	}

	reg, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("%d recipe(s) in %s:\n\n", lib.Len(), lib.Dir())
	for _, r := range lib.List() {
		fmt.Printf("  %s\n", r.Summary())
		fmt.Printf("    id: %s", r.ID)
		if stars := reg.Rating(r.ID); stars > 0 {
			fmt.Printf("  rating: %d/%d", stars, config.MaxRating)
		}
		fmt.Println()
	}

	fmt.Println("\nUse 'souschef show <id>' to view a recipe")
	fmt.Println("Use 'souschef cook <id>' to start cooking")
	return nil
}

// showCmd displays a single recipe
var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show a recipe",
	Long: `Display a recipe from the cookbook, including its ingredients and
numbered steps.`,
	Example: `  # Full recipe with ingredients and steps
  souschef show shakshuka

  # One-line summary
  souschef show shakshuka --format compact

  # JSON output for scripting
  souschef show shakshuka --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	r, err := findRecipe(lib, args[0])
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode recipe: %w", err)
		}
		fmt.Println(string(data))
	case "compact":
		fmt.Println(r.FormatCompact())
	case "detailed":
		fmt.Println(r.FormatDetailed())
	default:
		return fmt.Errorf("unknown format %q (expected detailed, compact, or json)", outputFormat)
	}

	return nil
}

// cookCmd starts cooking mode for one recipe
var cookCmd = &cobra.Command{
	Use:   "cook <recipe-id>",
	Short: "Cook a recipe step by step",
	Long: `Start the hands-free cooking mode for a recipe, skipping the
cookbook screen. One step is shown at a time; arrow keys move back and
forth and never run past the ends of the recipe.`,
	Example: `  # Cook straight away
  souschef cook shakshuka`,
	Args: cobra.ExactArgs(1),
	RunE: runCook,
}

func runCook(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create fallback logger
		_ = err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	r, err := findRecipe(lib, args[0])
	if err != nil {
		return err
	}

	reg, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return tui.Run(lib, reg, r)
}

// rateCmd records a star rating for a recipe
var rateCmd = &cobra.Command{
	Use:   "rate <recipe-id> <stars>",
	Short: "Rate a recipe",
	Long: fmt.Sprintf(`Record a star rating (0-%d) for a recipe. Values outside the range
are clamped rather than rejected; 0 clears the rating display.`, config.MaxRating),
	Example: `  # Five stars
  souschef rate shakshuka 5

  # Clear a rating
  souschef rate shakshuka 0`,
	Args: cobra.ExactArgs(2),
	RunE: runRate,
}

func runRate(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	r, err := findRecipe(lib, args[0])
	if err != nil {
		return err
	}

	stars, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid star count %q: %w", args[1], err)
	}

	reg, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg.SetRating(r.ID, stars)
	if err := reg.Save(); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	fmt.Printf("Rated %s: %d/%d\n", r.Title, reg.Rating(r.ID), config.MaxRating)
	return nil
}

// suggestCmd prints cookbook suggestions for a query
var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Suggest tags and recipes",
	Long: `Suggest cookbook tags matching a query. With no query, the most
common tags in the cookbook are shown. These are the same suggestions the
interactive assistant offers as chips above the recipe list.`,
	Example: `  # Most common tags
  souschef suggest

  # Tags and titles starting with "ba"
  souschef suggest ba`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 8, "Maximum number of suggestions")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	suggestions := lib.Suggest(query, suggestLimit)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}

	for _, s := range suggestions {
		fmt.Println(s)
	}
	return nil
}

// discoverCmd scans the network for cooking companions
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find cooking companions on the network",
	Long: `Scan the local network for souschef companions using mDNS/DNS-SD.

Companions are other devices running 'souschef-server'; each result shows
the recipe currently being cooked, if any.`,
	Example: `  # Scan with the default timeout
  souschef discover

  # Quick 2-second scan
  souschef discover --timeout 2`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for companions (timeout: %ds)...\n\n", scanTimeout)

	companions, err := discovery.Scan(time.Duration(scanTimeout) * time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(companions) == 0 {
		fmt.Println("No companions found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure 'souschef-server' is running with --announce")
		fmt.Println("  - Check both devices are on the same network")
		fmt.Println("  - Try increasing --timeout for slower networks")
		fmt.Printf("\nSee %s\n", urls.CompanionSetup)
		return nil
	}

	fmt.Printf("Found %d companion(s):\n\n", len(companions))
	for i, c := range companions {
		fmt.Printf("%d. %s\n", i+1, c.Name)
		fmt.Printf("   Address: %s:%d\n", c.IP, c.Port)
		if c.Recipe != "" {
			fmt.Printf("   Cooking: %s\n", c.Recipe)
		}
		fmt.Println()
	}

	return nil
}

// initCmd installs the starter recipes
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the starter recipes",
	Long: `Write the bundled starter recipes into the cookbook directory.

Existing files are never overwritten, so this is safe to run on a
cookbook you have already edited.`,
	Example: `  # Install into the default cookbook
  souschef init

  # Install into a custom directory
  souschef init --cookbook ./recipes`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := cookbookDir
	if dir == "" {
		var err error
		dir, err = cookbook.DefaultDir()
		if err != nil {
			return fmt.Errorf("failed to locate cookbook directory: %w", err)
		}
	}

	written, err := cookbook.WriteStarterRecipes(dir)
	if err != nil {
		return fmt.Errorf("failed to install starter recipes: %w", err)
	}

	if len(written) == 0 {
		fmt.Printf("Starter recipes already present in %s\n", dir)
		return nil
	}

	fmt.Printf("Installed %d starter recipe(s) into %s:\n", len(written), dir)
	for _, name := range written {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("\nRecipe format reference: %s\n", urls.RecipeFormat)
	return nil
}
