/*
Package cli provides command-line utilities for the xcodegen command.

It includes the typed errors commands return, output formatting for command
results (text and JSON), and signal handling for long-running modes such as
validate --watch:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
	    return err
	}

	ctx := cli.SetupSignalHandler()
	// ctx is cancelled on SIGINT/SIGTERM
*/
package cli
