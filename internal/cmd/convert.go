package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/fleetinglore/lore-cli/internal/lore"
	"github.com/fleetinglore/lore-cli/internal/output"
	"github.com/fleetinglore/lore-cli/internal/render"
)

// runConvert is the root command: read the lore file, build the forest,
// render HTML, and write it out. The output file is only written after
// rendering succeeds; there is no partial output.
func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	inputPath, outputPath := args[0], args[1]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return &ReadError{Path: inputPath, Err: err}
	}
	if !utf8.Valid(data) {
		return &ReadError{Path: inputPath, Err: fmt.Errorf("not valid UTF-8")}
	}

	forest := lore.BuildForest(lore.ParseLines(string(data)))

	title := strings.TrimSpace(titleFlag)
	if title == "" {
		title = titleFromPath(outputPath)
	}

	var opts []render.Option
	if strings.TrimSpace(stylesheet) != "" {
		opts = append(opts, render.WithStylesheet(stylesheet))
	}
	html := render.Document(forest, title, opts...)

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}

	ctx := cmd.Context()
	if !output.QuietFromContext(ctx) {
		fmt.Fprintf(stdoutFromContext(ctx), "done from %s to %s\n", inputPath, outputPath)
	}
	return nil
}

// titleFromPath derives the document title from the file name, without
// directory or extension.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == "/" {
		return "local"
	}
	return stem
}
