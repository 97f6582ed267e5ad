package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleetinglore/lore-cli/internal/lore"
	"github.com/fleetinglore/lore-cli/internal/output"
)

var inspectLines bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <input-path>",
	Short: "Parse lore input and print its structure",
	Long: `Parse lore input and print the resulting forest without rendering HTML.

Reads from a file, or from stdin when the path is "-". The default output
is text (an indented outline); piped output defaults to JSON. Use --output
to choose text, json, ndjson, yaml, or table, and --query to filter the
JSON form with a jq expression.

Examples:
  # Print the forest as JSON
  lore inspect notes.lore -o json

  # Count top-level entries
  lore inspect notes.lore --query 'length'

  # List every hyperlink target
  lore inspect notes.lore --query '.. | select(.kind? == "rail") | .value'

  # Show the tokenized lines instead of the built forest
  lore inspect notes.lore --lines -o table`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectLines, "lines", false, "Print tokenized lines instead of the built forest")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	input, err := readInputSource(args[0], stdinFromContext(ctx))
	if err != nil {
		return &ReadError{Path: args[0], Err: err}
	}

	lines := lore.ParseLines(input)
	if lines == nil {
		lines = []lore.Line{}
	}
	if inspectLines {
		return printInspected(ctx, lines, lineTable(lines), linesOutline(lines))
	}

	forest := lore.BuildForest(lines)
	if forest == nil {
		forest = []*lore.Node{}
	}
	return printInspected(ctx, forest, forestTable(forest), forestOutline(forest))
}

// printInspected routes the parsed data to the configured format. JSON and
// NDJSON go through a marshal/unmarshal round trip so jq queries see
// normalized values.
func printInspected(ctx context.Context, data interface{}, table output.Table, outline string) error {
	w := stdoutFromContext(ctx)
	printer := output.NewPrinter(w, output.FormatFromContext(ctx))

	switch output.FormatFromContext(ctx) {
	case output.FormatTable:
		return printer.Print(ctx, table)
	case output.FormatText:
		_, err := io.WriteString(w, outline)
		return err
	case output.FormatJSON, output.FormatNDJSON:
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode: %w", err)
		}
		var normalized interface{}
		if err := json.Unmarshal(raw, &normalized); err != nil {
			return fmt.Errorf("failed to encode: %w", err)
		}
		return printer.Print(ctx, normalized)
	default:
		return printer.Print(ctx, data)
	}
}

// forestOutline re-serializes the forest in source form, one construct per
// line, two spaces per nesting level.
func forestOutline(forest []*lore.Node) string {
	var b strings.Builder
	var walk func(node *lore.Node, depth int)
	walk = func(node *lore.Node, depth int) {
		b.WriteString(nodeLine(node, depth).String())
		b.WriteByte('\n')
		for _, child := range node.Rails {
			walk(child, depth+1)
		}
	}
	for _, root := range forest {
		walk(root, 0)
	}
	return b.String()
}

func linesOutline(lines []lore.Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// nodeLine maps a tree node back to its line form at the given depth.
func nodeLine(node *lore.Node, depth int) lore.Line {
	switch node.Kind {
	case lore.NodePlaceHolder:
		return lore.Line{Kind: lore.LinePlaceHolder, Indent: depth}
	case lore.NodeComment:
		return lore.Line{Kind: lore.LineComment, Indent: depth, Name: node.Name}
	case lore.NodeRail:
		return lore.Line{Kind: lore.LineLink, Indent: depth, Name: node.Name, Value: node.Value}
	case lore.NodeDomain:
		return lore.Line{Kind: lore.LineDomain, Indent: depth, Name: node.Name}
	case lore.NodeReference:
		return lore.Line{Kind: lore.LineReference, Indent: depth, Name: node.Name, Value: node.Value}
	default:
		return lore.Line{Kind: lore.LineAtom, Indent: depth, Name: node.Name}
	}
}

func forestTable(forest []*lore.Node) output.Table {
	table := output.Table{Headers: []string{"DEPTH", "KIND", "NAME", "VALUE", "RAILS"}}
	var walk func(node *lore.Node, depth int)
	walk = func(node *lore.Node, depth int) {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(depth),
			node.Kind.String(),
			node.Name,
			node.Value,
			strconv.Itoa(len(node.Rails)),
		})
		for _, child := range node.Rails {
			walk(child, depth+1)
		}
	}
	for _, root := range forest {
		walk(root, 0)
	}
	return table
}

func lineTable(lines []lore.Line) output.Table {
	table := output.Table{Headers: []string{"INDENT", "KIND", "NAME", "VALUE"}}
	for _, line := range lines {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(line.Indent),
			line.Kind.String(),
			line.Name,
			line.Value,
		})
	}
	return table
}
