package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/journaltrace/journaltrace/internal/cmdsupport"
	"github.com/journaltrace/journaltrace/internal/config"
	"github.com/journaltrace/journaltrace/internal/daemonrpc"
	"github.com/journaltrace/journaltrace/internal/ntfs"
)

func getResults() (ntfs.ScanResult, error) {
	client, err := dialDaemon()
	if err != nil {
		return ntfs.ScanResult{}, err
	}
	defer client.Close()

	var result ntfs.ScanResult
	err = client.Call(daemonrpc.ServiceName+".GetResults", &struct{}{}, &result)
	return result, err
}

// filterEntries removes entries whose path matches any of patterns,
// applied only to the CLI's rendered view: the result buffer returned by
// GetResults/ExportResults is never filtered. Backslashes in both patterns
// and paths are converted to forward slashes before matching, so a Windows
// pattern such as C:\Windows\** works; a backslash is never an escape.
func filterEntries(entries []ntfs.ChangeEntry, patterns []string) ([]ntfs.ChangeEntry, error) {
	if len(patterns) == 0 {
		return entries, nil
	}
	var kept []ntfs.ChangeEntry
	for _, entry := range entries {
		excluded := false
		path := strings.ReplaceAll(entry.Path, `\`, "/")
		for _, pattern := range patterns {
			matched, err := doublestar.Match(strings.ReplaceAll(pattern, `\`, "/"), path)
			if err != nil {
				return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
			}
			if matched {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, entry)
		}
	}
	return kept, nil
}

// resolveExcludePatterns appends the configured defaultExcludes globs to the
// patterns supplied on the command line. A config load failure is not fatal
// here; it just means only the explicit flags apply.
func resolveExcludePatterns(flagExcludes []string) []string {
	path, err := configFilePath()
	if err != nil {
		return flagExcludes
	}
	cfg, err := config.Load(path)
	if err != nil || len(cfg.DefaultExcludes) == 0 {
		return flagExcludes
	}
	return append(append([]string{}, flagExcludes...), cfg.DefaultExcludes...)
}

func renderTable(entries []ntfs.ChangeEntry) {
	fmt.Printf("%-12s %-6s %-10s %s\n", "USN", "RENAME", "REASON", "PATH")
	for _, entry := range entries {
		fmt.Printf("%-12d %-6s %-10s %s\n", entry.USN, entry.RenameType, entry.Reason, entry.Path)
	}
	fmt.Printf("%d entries\n", len(entries))
}

var resultsConfiguration struct {
	json    bool
	exclude []string
}

func resultsMain(command *cobra.Command, arguments []string) error {
	result, err := getResults()
	if err != nil {
		return err
	}

	entries, err := filterEntries(result.Entries, resolveExcludePatterns(resultsConfiguration.exclude))
	if err != nil {
		return err
	}

	if resultsConfiguration.json {
		payload, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
		return nil
	}

	renderTable(entries)
	return nil
}

var resultsCommand = &cobra.Command{
	Use:   "results",
	Short: "Prints the current scan results",
	Run:   cmdsupport.Mainify(resultsMain),
}

func init() {
	flags := resultsCommand.Flags()
	flags.BoolVar(&resultsConfiguration.json, "json", false, "Print raw JSON instead of a table")
	flags.StringArrayVar(&resultsConfiguration.exclude, "exclude", nil, "Glob pattern to exclude from the rendered output (repeatable)")
}
