package cli

// Options holds the command-line flags.
type Options struct {
	Days      int    `long:"days" description:"Number of days of history to export (default: export.days from config, 7)"`
	Path      string `long:"path" description:"Path to the Chromium History database (required)"`
	Config    string `long:"config" description:"Path to config file"`
	OutputDir string `long:"output-dir" description:"Directory to create the output folder in"`
	Verbose   bool   `long:"verbose" description:"Enable verbose output"`
	Version   bool   `long:"version" description:"Show version and exit"`
}
