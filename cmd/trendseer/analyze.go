package main

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cultrend/trendseer/internal/config"
	apperrors "github.com/cultrend/trendseer/internal/errors"
	"github.com/cultrend/trendseer/internal/profile"
)

var (
	flagTimeframe string
	flagTopRecs   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [preference text...]",
	Short: "One-shot analysis: preference text in, JSON analysis out",
	Long: `Runs the full pipeline non-interactively. Preference text is taken
from the arguments, or from stdin when no arguments are given, and the
complete analysis (profile, predictions, recommendations, brand kit)
is printed as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !config.ValidTimeframe(flagTimeframe) {
			return apperrors.User(apperrors.CodeConfigInvalid, "timeframe must be one of 30d, 90d, 180d")
		}
		svc := buildServices(cfg)

		utterances := args
		if len(utterances) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					utterances = append(utterances, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		prefs := profile.NewExtractor().Extract(utterances)
		prof := svc.analyzer.BuildProfile(cmd.Context(), prefs)
		analysis := svc.analyzer.PredictForProfile(cmd.Context(), prof, flagTimeframe)
		kit := svc.brands.Build(cmd.Context(), prof)
		recs := svc.ranker.Rank(prof, svc.catalog.All(), flagTopRecs)

		out := map[string]any{
			"preferences":      prefs,
			"cultural_profile": prof,
			"trend_analysis":   analysis,
			"brand_kit":        kit,
			"recommendations":  recs,
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&flagTimeframe, "timeframe", "90d", "prediction horizon (30d, 90d, 180d)")
	analyzeCmd.Flags().IntVar(&flagTopRecs, "recommendations", 6, "how many recommendations to include")
}
