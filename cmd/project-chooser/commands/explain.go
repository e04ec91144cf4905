package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"project-chooser/internal/block"
	"project-chooser/internal/match"
	"project-chooser/internal/policy"
)

type explainFlags struct {
	blocksPath string
	top        int
	matching   bool
}

// NewExplainCmd creates the explain command.
func NewExplainCmd(global *globalFlags) *cobra.Command {
	flags := &explainFlags{}

	cmd := &cobra.Command{
		Use:   "explain TITLE...",
		Short: "Show how titles score against every block",
		Long: `Show the ranked candidate blocks for each title with the score breakdown:
sequence ratio, token coverage, containment and the final score.

Examples:
  project-chooser explain --blocks blocks.json "Chess Engine"
  project-chooser explain --blocks blocks.json --top 2 "Weather" "Blog"
  project-chooser explain --blocks blocks.json --matching "Chess Bot"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, global, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.blocksPath, "blocks", "b", "", "Block list JSON file")
	cmd.Flags().IntVarP(&flags.top, "top", "n", 5, "Number of candidates to show per title")
	cmd.Flags().BoolVar(&flags.matching, "matching", false, "Only show candidates at or above the match threshold")
	_ = cmd.MarkFlagRequired("blocks")

	return cmd
}

// explanation is the ranking of one title.
type explanation struct {
	Title      string          `json:"title"`
	Normalized string          `json:"normalized"`
	Match      string          `json:"match,omitempty"`
	Strong     bool            `json:"strong"`
	Ambiguous  bool            `json:"ambiguous"`
	Candidates []candidateView `json:"candidates"`
}

type candidateView struct {
	Block     string  `json:"block"`
	Ratio     float64 `json:"ratio"`
	Coverage  float64 `json:"coverage"`
	Contained bool    `json:"contained"`
	Score     float64 `json:"score"`
}

func runExplain(cmd *cobra.Command, global *globalFlags, flags *explainFlags, titles []string) error {
	pol, err := global.loadPolicy()
	if err != nil {
		return err
	}

	blocks, err := block.LoadFile(flags.blocksPath)
	if err != nil {
		return err
	}

	explanations := make([]explanation, 0, len(titles))
	for _, title := range titles {
		explanations = append(explanations, explainTitle(pol, title, blocks, flags))
	}

	if global.format == formatJSON {
		data, err := json.MarshalIndent(explanations, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)

		return nil
	}

	return writeExplanationsText(cmd.OutOrStdout(), explanations)
}

func explainTitle(pol policy.Policy, title string, blocks []*block.Block, flags *explainFlags) explanation {
	scorer := pol.Scorer()
	ranked := scorer.RankCandidates(title, blocks)

	exp := explanation{
		Title:      title,
		Normalized: match.NormalizeTitle(title),
		Ambiguous:  ranked.IsAmbiguous(match.DefaultAmbiguityGap),
		Candidates: []candidateView{},
	}

	if best, _ := scorer.FindBestMatch(title, blocks, pol.MatchThreshold); best != nil {
		exp.Match = best.Title
	}

	if strong, _ := scorer.Match(title, blocks); strong != nil {
		exp.Strong = true
	}

	if flags.matching {
		ranked = ranked.AboveThreshold(pol.MatchThreshold)
	}

	for _, c := range ranked.Top(flags.top) {
		exp.Candidates = append(exp.Candidates, candidateView{
			Block:     c.Block.Title,
			Ratio:     c.Score.Ratio,
			Coverage:  c.Score.Coverage,
			Contained: c.Score.Contained,
			Score:     c.Score.Total,
		})
	}

	return exp
}

func writeExplanationsText(w io.Writer, explanations []explanation) error {
	for i, exp := range explanations {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%q (normalized %q)\n", exp.Title, exp.Normalized)

		switch {
		case exp.Match == "":
			fmt.Fprintln(w, "  no match")
		case exp.Ambiguous:
			fmt.Fprintf(w, "  match: %s (ambiguous)\n", exp.Match)
		case exp.Strong:
			fmt.Fprintf(w, "  match: %s (strong)\n", exp.Match)
		default:
			fmt.Fprintf(w, "  match: %s\n", exp.Match)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  BLOCK\tRATIO\tCOVERAGE\tCONTAINED\tSCORE\n")

		for _, c := range exp.Candidates {
			fmt.Fprintf(tw, "  %s\t%.2f\t%.2f\t%t\t%.2f\n", c.Block, c.Ratio, c.Coverage, c.Contained, c.Score)
		}

		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
