package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schepal/crypto-vol-arb/src/arb"
	"github.com/schepal/crypto-vol-arb/src/deribit"
	"github.com/schepal/crypto-vol-arb/src/ftx"
	"github.com/schepal/crypto-vol-arb/src/models"
	"github.com/schepal/crypto-vol-arb/src/utils"
)

type RunArgs struct {
	Contract        string
	StrikeTolerance float64
	DaysTolerance   float64
	Legs            []string
	ConfigFile      string
}

var runCmd = &cobra.Command{
	Use:   "volarb --contract BTC-MOVE-WK-0828 --strike-tolerance 300 --days-tolerance 2",
	Short: "Compare an FTX MOVE contract against its nearest Deribit straddle",
	Run: func(cmd *cobra.Command, args []string) {
		contract, err := cmd.Flags().GetString("contract")
		if err != nil {
			log.Fatalf("error getting contract: %v", err)
		}

		strikeTolerance, err := cmd.Flags().GetFloat64("strike-tolerance")
		if err != nil {
			log.Fatalf("error getting strike-tolerance: %v", err)
		}

		daysTolerance, err := cmd.Flags().GetFloat64("days-tolerance")
		if err != nil {
			log.Fatalf("error getting days-tolerance: %v", err)
		}

		legs, err := cmd.Flags().GetStringSlice("legs")
		if err != nil {
			log.Fatalf("error getting legs: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		if err := Run(RunArgs{
			Contract:        contract,
			StrikeTolerance: strikeTolerance,
			DaysTolerance:   daysTolerance,
			Legs:            legs,
			ConfigFile:      configFile,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func loadConfig(configFile string) (*models.VolArbConfigYAML, error) {
	var config models.VolArbConfigYAML
	if configFile == "" {
		return &config, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %v", err)
	}

	return &config, nil
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(); err != nil {
		return fmt.Errorf("error loading environment variables: %v", err)
	}

	config, err := loadConfig(args.ConfigFile)
	if err != nil {
		return err
	}

	futuresClient := ftx.NewClient()
	if url := os.Getenv("FTX_BASE_URL"); url != "" {
		futuresClient.BaseURL = url
	}
	if config.FTXBaseURL != "" {
		futuresClient.BaseURL = config.FTXBaseURL
	}
	if config.ProductPrefix != "" {
		futuresClient.ProductPrefix = config.ProductPrefix
	}
	if config.StrikeRounding != 0 {
		futuresClient.StrikeRounding = config.StrikeRounding
	}
	if config.IndexFallback != nil {
		futuresClient.IndexFallback = *config.IndexFallback
	}

	optionsClient := deribit.NewClient()
	if url := os.Getenv("DERIBIT_BASE_URL"); url != "" {
		optionsClient.BaseURL = url
	}
	if config.DeribitBaseURL != "" {
		optionsClient.BaseURL = config.DeribitBaseURL
	}

	strikeTolerance := args.StrikeTolerance
	if config.StrikeTolerance != nil {
		strikeTolerance = *config.StrikeTolerance
	}

	daysTolerance := args.DaysTolerance
	if config.DaysTolerance != nil {
		daysTolerance = *config.DaysTolerance
	}

	matcher, err := arb.NewMatcher(futuresClient, optionsClient, args.Contract, strikeTolerance, daysTolerance)
	if err != nil {
		return fmt.Errorf("error creating matcher: %v", err)
	}

	candidates, err := matcher.FindComparableOptions()
	if err != nil {
		return fmt.Errorf("error finding comparable options: %v", err)
	}

	if candidates.Len() == 0 {
		return fmt.Errorf("%w: increase --strike-tolerance and --days-tolerance", models.NoComparableOptionsErr)
	}

	fmt.Println(candidates)

	straddle := candidates
	if len(args.Legs) > 0 {
		straddle = candidates.Subset(args.Legs)
	} else if candidates.Len() != 2 {
		straddle, err = matcher.SelectStraddle(candidates)
		if err != nil {
			return fmt.Errorf("could not auto-select a straddle, rerun with --legs CALL,PUT: %v", err)
		}
	}

	report, err := matcher.Compare(straddle)
	if err != nil {
		return fmt.Errorf("error comparing contracts: %v", err)
	}

	fmt.Println(report)

	return nil
}

func main() {
	runCmd.PersistentFlags().String("contract", "", "The FTX MOVE contract to compare against its nearest Deribit straddle.")
	runCmd.PersistentFlags().Float64("strike-tolerance", arb.DefaultStrikeTolerance, "The maximum dollar amount by which the straddle strike may differ from the MOVE strike.")
	runCmd.PersistentFlags().Float64("days-tolerance", arb.DefaultDaysTolerance, "The maximum number of days by which the straddle maturity may differ from the MOVE maturity.")
	runCmd.PersistentFlags().StringSlice("legs", []string{}, "Deribit instrument names to subset from the candidate table, ONE call and ONE put.")
	runCmd.PersistentFlags().String("config", "", "Optional YAML config file with venue endpoints and tolerances.")

	runCmd.MarkPersistentFlagRequired("contract")

	runCmd.Execute()
}
