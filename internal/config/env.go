// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

// AnalysisEnvConfig configures one master-regulator analysis run.
type AnalysisEnvConfig struct {
	// ActivityPath is the protein-activity matrix CSV; a .gz suffix
	// enables gzip decompression.
	ActivityPath   string `env:"ACTIVITY_MATRIX" envDefault:"activity.csv"`
	ClusteringPath string `env:"CLUSTER_LABELS"`
	Method         string `env:"MR_METHOD" envDefault:"stouffer"`
	NumMRs         int    `env:"NUM_MRS" envDefault:"50"`
	IncludeBottom  bool   `env:"INCLUDE_BOTTOM" envDefault:"false"`
	BootstrapNum   int    `env:"BOOTSTRAP_NUM" envDefault:"100"`
	Seed           uint64 `env:"SEED" envDefault:"1"`
	OutputPath     string `env:"OUTPUT_PATH"`
	Environment    string `env:"ENVIRONMENT" envDefault:"dev"`
}

// RegulonEnvConfig configures the network-processing collaborator's
// artifact output. OutDir and OutName are concatenated as-is, so a
// trailing separator belongs in OutDir when one is wanted.
type RegulonEnvConfig struct {
	OutDir  string `env:"REGULON_OUT_DIR" envDefault:"./"`
	OutName string `env:"REGULON_OUT_NAME" envDefault:""`
}

// LoadAnalysisEnv parses the analysis configuration from the
// environment.
func LoadAnalysisEnv() (*AnalysisEnvConfig, error) {
	cfg := &AnalysisEnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadRegulonEnv parses the regulon artifact configuration from the
// environment.
func LoadRegulonEnv() (*RegulonEnvConfig, error) {
	cfg := &RegulonEnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
