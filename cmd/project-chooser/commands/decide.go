package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"project-chooser/internal/block"
	"project-chooser/internal/decide"
	"project-chooser/internal/diagnostic"
	"project-chooser/internal/recommend"
)

type decideFlags struct {
	responsePath string
	blocksPath   string
	outputPath   string
}

// NewDecideCmd creates the decide command.
func NewDecideCmd(global *globalFlags) *cobra.Command {
	flags := &decideFlags{}

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Decide which blocks to activate and deactivate",
		Long: `Decide which project blocks to activate and deactivate.

The response file holds the model's JSON answer with include_projects and
exclude_projects. The blocks file holds the extracted blocks as a JSON list.

Examples:
  project-chooser decide --response answer.json --blocks blocks.json
  project-chooser decide --response answer.json --blocks blocks.json --output updated.json
  project-chooser decide --response answer.json --blocks blocks.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecide(cmd, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.responsePath, "response", "r", "", "Model response JSON file")
	cmd.Flags().StringVarP(&flags.blocksPath, "blocks", "b", "", "Block list JSON file")
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Write the block list with toggles applied")
	_ = cmd.MarkFlagRequired("response")
	_ = cmd.MarkFlagRequired("blocks")

	return cmd
}

func runDecide(cmd *cobra.Command, global *globalFlags, flags *decideFlags) error {
	pol, err := global.loadPolicy()
	if err != nil {
		return err
	}

	rec, err := recommend.LoadFile(flags.responsePath)
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidResponse) {
			return fmt.Errorf("%w\nexpected: {\"include_projects\": [\"Title\"], \"exclude_projects\": [\"Title\"]}", err)
		}

		return err
	}

	blocks, err := block.LoadFile(flags.blocksPath)
	if err != nil {
		return err
	}

	logger := global.newLogger(cmd.ErrOrStderr())
	if rec.IsEmpty() {
		logger.Warn().Str("file", flags.responsePath).Msg("recommendation names no projects")
	}

	logger.Debug().
		Int("blocks", len(blocks)).
		Int("active", block.CountActive(blocks)).
		Msg("loaded blocks")

	var diags diagnostic.Diagnostics

	sink := diagnostic.Tee(diagnostic.NewZerologSink(logger), &diags)
	dec := decide.NewDecider(decide.WithPolicy(pol), decide.WithSink(sink)).Decide(rec, blocks)

	if global.format == formatJSON {
		err = writeDecisionJSON(cmd.OutOrStdout(), dec, diags.Warnings)
	} else {
		err = writeDecisionText(cmd.OutOrStdout(), dec)
	}

	if err != nil {
		return err
	}

	if flags.outputPath == "" {
		return nil
	}

	return writeApplied(flags.outputPath, blocks, dec)
}

// decisionView is the JSON shape of a Decision.
type decisionView struct {
	Activate   []*block.Block `json:"activate"`
	Deactivate []*block.Block `json:"deactivate"`
	Staged     []stagedView   `json:"staged"`
	Satisfied  []string       `json:"satisfied"`
	Unmatched  []string       `json:"unmatched"`
	Conflicts  []string       `json:"conflicts"`
	Warnings   []string       `json:"warnings"`
}

type stagedView struct {
	Block string `json:"block"`
	decide.Staged
}

func writeDecisionJSON(w io.Writer, dec decide.Decision, warnings []diagnostic.Diagnostic) error {
	view := decisionView{
		Activate:   dec.ToActivate,
		Deactivate: dec.ToDeactivate,
		Staged:     make([]stagedView, len(dec.Staged)),
		Satisfied:  nonNil(dec.Satisfied),
		Unmatched:  nonNil(dec.Unmatched),
		Conflicts:  nonNil(dec.Conflicts),
		Warnings:   make([]string, len(warnings)),
	}

	for i, d := range warnings {
		view.Warnings[i] = d.String()
	}

	for i, st := range dec.Staged {
		view.Staged[i] = stagedView{Block: st.Block.Title, Staged: st}
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

func writeDecisionText(w io.Writer, dec decide.Decision) error {
	if dec.IsNoop() {
		fmt.Fprintln(w, "No changes")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "ACTION\tBLOCK\tCURRENTLY\tSOURCE\tRECOMMENDED AS\tSCORE\n")
		fmt.Fprintf(tw, "------\t-----\t---------\t------\t--------------\t-----\n")

		for _, st := range dec.Staged {
			title := st.Title
			if title == "" {
				title = "-"
			}

			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n",
				st.Action, st.Block.Title, st.Block.Status(), st.Source, title, st.Score)
		}

		if err := tw.Flush(); err != nil {
			return err
		}
	}

	printList(w, "Already satisfied", dec.Satisfied)
	printList(w, "Unmatched", dec.Unmatched)
	printList(w, "Conflicts", dec.Conflicts)

	return nil
}

func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(w, "%s:\n", label)

	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

// writeApplied writes blocks with the decision's toggles applied. The loaded
// blocks belong to the command, so they are flipped in place.
func writeApplied(path string, blocks []*block.Block, dec decide.Decision) error {
	for _, b := range dec.ToActivate {
		b.Active = true
	}

	for _, b := range dec.ToDeactivate {
		b.Active = false
	}

	data, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling blocks: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write block file %s: %w", path, err)
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
