package main

import (
	"context"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/pisces-labs/masterreg/internal/config"
	"github.com/pisces-labs/masterreg/internal/matrix"
	"github.com/pisces-labs/masterreg/internal/matrixio"
	"github.com/pisces-labs/masterreg/internal/mrs"
	"github.com/pisces-labs/masterreg/internal/scoring"
	"github.com/pisces-labs/masterreg/internal/utils/logger"
)

func main() {
	logger.Init()

	cfg, err := config.LoadAnalysisEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	m, err := matrixio.ReadActivityCSV(cfg.ActivityPath)
	if err != nil {
		log.Fatal().Err(err).Msgf("failed to read activity matrix %s", cfg.ActivityPath)
	}
	rows, cols := m.Dims()
	log.Info().Int("proteins", rows).Int("samples", cols).Msgf("loaded activity matrix from %s", cfg.ActivityPath)

	var clustering scoring.Clustering
	if cfg.ClusteringPath != "" {
		clustering, err = matrixio.ReadClusterCSV(cfg.ClusteringPath)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to read cluster labels %s", cfg.ClusteringPath)
		}
		log.Info().Int("samples", len(clustering)).Msgf("loaded cluster labels from %s", cfg.ClusteringPath)
	}

	collection, err := run(cfg, m, clustering)
	if err != nil {
		log.Fatal().Err(err).Msg("master regulator selection failed")
	}

	payload, err := sonic.Marshal(collection)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode results")
	}
	if cfg.OutputPath == "" {
		os.Stdout.Write(payload)
		os.Stdout.Write([]byte("\n"))
		return
	}
	if err := os.WriteFile(cfg.OutputPath, payload, 0o644); err != nil {
		log.Fatal().Err(err).Msgf("failed to write %s", cfg.OutputPath)
	}
	log.Info().Msgf("wrote master regulators to %s", cfg.OutputPath)
}

func run(cfg *config.AnalysisEnvConfig, m *matrix.Matrix, clustering scoring.Clustering) (*mrs.Collection, error) {
	method := strings.ToLower(cfg.Method)
	if method == "ttest" {
		lists, err := scoring.BootstrapTTest(context.Background(), m, clustering,
			scoring.WithIterations(cfg.BootstrapNum),
			scoring.WithSeed(cfg.Seed),
		)
		if err != nil {
			return nil, err
		}
		for label, list := range lists {
			if cfg.IncludeBottom {
				lists[label] = append(list.Top(cfg.NumMRs), list.Bottom(cfg.NumMRs)...)
			} else {
				lists[label] = list.Top(cfg.NumMRs)
			}
		}
		return mrs.Clustered(lists), nil
	}

	opts := []mrs.SelectOption{mrs.WithNumMRs(cfg.NumMRs)}
	if cfg.IncludeBottom {
		opts = append(opts, mrs.WithBottom())
	}
	if clustering != nil {
		opts = append(opts, mrs.WithClustering(clustering))
	}
	return mrs.Select(m, mrs.Method(method), opts...)
}
