package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"output": {
		Title:       "OUTPUT DIRECTORY",
		Description: "Directory where TGA icon files will be created.",
		Details:     "Will be created if it doesn't exist.",
	},
	"width": {
		Title:       "WIDTH",
		Description: "Default icon width in pixels.",
		Details:     "Range 1-65535 (TGA header limit). 256 is the usual size.",
	},
	"height": {
		Title:       "HEIGHT",
		Description: "Default icon height in pixels.",
		Details:     "Range 1-65535 (TGA header limit). 256 is the usual size.",
	},
	"num_icons": {
		Title:       "NUMBER OF ICONS",
		Description: "How many icons to generate in this batch.",
		Details:     "Each icon becomes a separate .tga file in the output directory.",
	},
	"workers": {
		Title:       "WORKERS",
		Description: "Number of parallel workers for batch generation.",
		Details:     "0 = one worker per CPU core. Each icon is still rendered by a single worker.",
	},
	"seed_text": {
		Title:       "SEED TEXT",
		Description: "Text the icon is derived from.",
		Details: `The same seed text always produces the same pixels.
Keywords in the text pick the theme (e.g. "rust", "chat", "budget").`,
	},
	"file": {
		Title:       "FILE NAME",
		Description: "Output file name for this icon.",
		Details:     "Relative to the output directory. Defaults to icon_NNN.tga.",
	},
	"theme": {
		Title:       "THEME",
		Description: "Visual style for this icon.",
		Details:     "Auto picks the theme from keywords in the seed text.",
	},
	"label": {
		Title:       "LABEL",
		Description: "Optional text drawn centered on the icon.",
		Details:     "White glyphs over a black outline, scaled to 30% of the width. Leave empty for none.",
	},
	"bulk_choice": {
		Title:       "BULK ICON CONFIGURATION",
		Description: "Choose how to handle remaining icons.",
		Details: `Generate automatically: seed texts derived from the icon index
Configure each one: step through each icon's configuration screen`,
	},
	"action": {
		Title:       "ACTION",
		Description: "What to do with the reviewed configuration.",
		Details:     "Generate writes the files; Save exports the configuration as YAML.",
	},
}
