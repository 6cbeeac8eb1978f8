package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	"github.com/gregory-bot/telecurehospital/internal/evaluation"
	"github.com/gregory-bot/telecurehospital/internal/ml"
	"github.com/gregory-bot/telecurehospital/internal/triage"
	"github.com/gregory-bot/telecurehospital/pkg/config"
)

func main() {
	casesPath := flag.String("cases", "config/golden_cases.json", "path to the golden case file")
	exportPath := flag.String("export-params", "", "write the evaluated model parameters to this file")
	flag.Parse()

	// Summary goes to stdout, logs to stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var vocabOpts []vocabulary.Option
	if cfg.Triage.FeeSchedulePath != "" {
		vocabOpts = append(vocabOpts, vocabulary.WithFeeOverrides(cfg.Triage.FeeSchedulePath))
	}
	vocab, err := vocabulary.Load(vocabOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load triage vocabulary")
	}

	opts, err := triage.ModelSource{
		ParametersPath: cfg.Triage.ModelParametersPath,
		Seed:           cfg.Triage.ModelSeed,
		HasSeed:        cfg.Triage.HasModelSeed,
	}.Options()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load model parameters")
	}
	analyzer := triage.NewAnalyzer(vocab, opts...)

	ctx := context.Background()
	if err := analyzer.Warm(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize condition classifier")
	}

	// Load golden cases
	cases, err := evaluation.LoadGoldenCases(*casesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load golden cases")
	}
	if err := evaluation.ValidateGoldenCases(cases, vocab); err != nil {
		log.Fatal().Err(err).Msg("invalid golden cases")
	}

	runner := evaluation.NewRunner(analyzer)
	summary, err := runner.Run(ctx, cases)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	// Output results as JSON
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode summary")
	}
	fmt.Println(string(out))

	if *exportPath != "" {
		if err := exportParameters(ctx, analyzer, *exportPath); err != nil {
			log.Fatal().Err(err).Msg("failed to export model parameters")
		}
		log.Info().Str("path", *exportPath).Str("model_id", analyzer.ModelID()).Msg("model parameters exported")
	}

	violations := evaluation.NewGuardrails(evaluation.DefaultGuardrails()).Check(summary)
	for _, v := range violations {
		log.Error().Str("model_id", summary.ModelID).Msg(v)
	}
	if len(violations) > 0 {
		os.Exit(1)
	}
}

func exportParameters(ctx context.Context, analyzer *triage.Analyzer, path string) error {
	net, err := analyzer.Classifier().Network(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ml.WriteParameters(f, net); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
