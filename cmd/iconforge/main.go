package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/mrsinham/iconforge/cmd/iconforge/wizard"
	"github.com/mrsinham/iconforge/internal/icon"
	"github.com/mrsinham/iconforge/internal/util"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		// Extract --from flag if present
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Define command-line flags
	width := flag.Int("width", 0, "Icon width in pixels (default: 256)")
	height := flag.Int("height", 0, "Icon height in pixels (default: 256)")
	size := flag.String("size", "", "Icon size as WIDTHxHEIGHT (e.g., '128x128', overrides --width/--height)")
	theme := flag.String("theme", "", "Force a theme instead of deriving it from the seed text")
	label := flag.String("label", "", "Text label drawn over the icon")
	workers := flag.Int("workers", 0, fmt.Sprintf("Number of parallel workers for batch mode (default: %d = CPU cores)", runtime.NumCPU()))

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Generate a batch of icons from a YAML config file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	// Handle interactive mode
	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Handle config file loading (batch mode)
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		opts, err := wizard.ToBatchOptions(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}
		opts.Quiet = false
		if *workers > 0 {
			opts.Workers = *workers
		}

		fmt.Println("iconforge")
		fmt.Println("=========")
		fmt.Printf("Loading config from %s\n\n", *configFile)

		if _, err := icon.GenerateBatch(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating icons: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Show version
	if *showVersion {
		fmt.Printf("iconforge %s\n", version)
		os.Exit(0)
	}

	// Show help
	if *help {
		printHelp()
		os.Exit(0)
	}

	// Validate positional arguments
	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly 2 arguments (seed text and output file), got %d\n", len(args))
		printUsage()
		os.Exit(1)
	}
	seedText := args[0]
	outputPath := args[1]

	if seedText == "" {
		fmt.Fprintf(os.Stderr, "Error: seed text cannot be empty\n")
		printUsage()
		os.Exit(1)
	}

	// Resolve dimensions from --size or --width/--height
	iconWidth, iconHeight := *width, *height
	if *size != "" {
		w, h, err := util.ParseDimensions(*size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		iconWidth, iconHeight = w, h
	}

	// Validate theme
	if *theme != "" && !icon.IsValidTheme(*theme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q, valid options: %v\n", *theme, icon.AllThemes())
		os.Exit(1)
	}

	opts := icon.Options{
		SeedText: seedText,
		Width:    iconWidth,
		Height:   iconHeight,
		Theme:    icon.Theme(*theme),
		Label:    *label,
	}

	generated, err := icon.GenerateFile(opts, outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating icon: %v\n", err)
		os.Exit(1)
	}

	// Save config if requested
	if *saveConfig != "" {
		state := wizard.FromOptions(opts, outputPath, *workers)
		if err := wizard.SaveToYAML(state, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	fmt.Printf("Generated %s for '%s' (theme: %s, %dx%d, %d bytes)\n",
		generated.Path, seedText, generated.Theme, generated.Width, generated.Height, generated.Size)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  iconforge [options] <seed text> <output.tga>")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("iconforge")
	fmt.Println("=========")
	fmt.Println()
	fmt.Println("Generate deterministic app icons as TGA images from seed text.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  iconforge [options] <seed text> <output.tga>")
	fmt.Println("  iconforge --config <file.yaml>")
	fmt.Println("  iconforge wizard [--from <file.yaml>]")
	fmt.Println()
	fmt.Println("Arguments:")
	fmt.Println("  <seed text>           Text that seeds the icon; the same text always")
	fmt.Println("                        produces the same image")
	fmt.Println("  <output.tga>          Output file path (uncompressed 24-bit TGA)")
	fmt.Println()
	fmt.Println("Optional arguments:")
	fmt.Println("  --width <N>           Icon width in pixels (default: 256)")
	fmt.Println("  --height <N>          Icon height in pixels (default: 256)")
	fmt.Println("  --size <WxH>          Shorthand for width and height (e.g., '128x128')")
	fmt.Println("  --theme <NAME>        Force a theme instead of deriving it from keywords")
	fmt.Println("                        in the seed text")
	fmt.Println("  --label <TEXT>        Draw a text label over the icon")
	fmt.Printf("  --workers <N>         Parallel workers for batch mode (default: %d = CPU cores)\n", runtime.NumCPU())
	fmt.Println()
	fmt.Println("Batch and interactive options:")
	fmt.Println("  --config <FILE>       Generate a batch of icons from a YAML config file")
	fmt.Println("  --save-config <FILE>  Save this invocation as a YAML config file")
	fmt.Println("  --interactive, -i     Launch the interactive wizard")
	fmt.Println()
	fmt.Println("  --help                Show this help message")
	fmt.Println("  --version             Show version")
	fmt.Println()
	fmt.Println("Themes:")
	fmt.Println("  The theme is picked from keywords in the seed text. For example 'My")
	fmt.Println("  TikTok Clone' renders the tiktok theme and 'budget calculator' the")
	fmt.Println("  finance theme. Text matching no keyword uses the default theme.")
	fmt.Println()
	fmt.Print("  Available themes: ")
	for i, t := range icon.AllThemes() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(string(t))
	}
	fmt.Println()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Generate a 256x256 icon for a note-taking app")
	fmt.Println("  iconforge \"My Notes App\" notes.tga")
	fmt.Println()
	fmt.Println("  # Generate a 128x128 icon with a forced theme")
	fmt.Println("  iconforge --size 128x128 --theme rust \"build tool\" build.tga")
	fmt.Println()
	fmt.Println("  # Generate an icon with a label drawn on top")
	fmt.Println("  iconforge --label \"GO\" \"compiler playground\" go.tga")
	fmt.Println()
	fmt.Println("  # Generate a batch of icons from a config file")
	fmt.Println("  iconforge --config icons.yaml")
	fmt.Println()
	fmt.Println("  # Launch the interactive wizard")
	fmt.Println("  iconforge wizard")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  Uncompressed 24-bit true-color TGA (file type 2). A WxH icon is")
	fmt.Println("  exactly 18 + W*H*3 bytes: an 18-byte header followed by BGR pixel")
	fmt.Println("  rows, top row first.")
	fmt.Println()
	fmt.Println("Reproducibility:")
	fmt.Println("  The seed text is hashed to seed the pixel generator, so the same")
	fmt.Println("  text and size always produce byte-identical files across runs.")
}
