package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/applicants"
	"github.com/spigell/hire-ranker/internal/export"
	"github.com/spigell/hire-ranker/internal/filtering"
	"github.com/spigell/hire-ranker/internal/jobdesc"
	"github.com/spigell/hire-ranker/internal/logger"
)

const descriptionLogLimit = 120

func init() {
	rootCmd.PersistentFlags().StringP("applicants", "a", "", "path to the applicants JSON file (env HIRE_RANKER_APPLICANTS)")
	rootCmd.PersistentFlags().StringP("exclude-file", "e", "", "special file with applicants to exclude. Default is unset.")
	rootCmd.PersistentFlags().StringSlice("exclude-email", nil, "applicant email to exclude, can be repeated")
	rootCmd.PersistentFlags().Bool("keep-duplicates", false, "do not drop applicants with duplicate emails")
	rootCmd.PersistentFlags().String("xlsx", "", "write the ranking report to this xlsx file")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "do not ask what to do with the results")
	rootCmd.PersistentFlags().String("description", "", "job description text")
	rootCmd.PersistentFlags().String("description-file", "", "file with the job description, wins over --description")

	viper.BindPFlag("applicants", rootCmd.PersistentFlags().Lookup("applicants"))
	viper.BindPFlag("exclude.file", rootCmd.PersistentFlags().Lookup("exclude-file"))
	viper.BindPFlag("exclude.emails", rootCmd.PersistentFlags().Lookup("exclude-email"))
	viper.BindPFlag("exclude.keep-duplicates", rootCmd.PersistentFlags().Lookup("keep-duplicates"))
	viper.BindPFlag("report.xlsx", rootCmd.PersistentFlags().Lookup("xlsx"))
	viper.BindPFlag("yes", rootCmd.PersistentFlags().Lookup("yes"))
	viper.BindPFlag("job.description", rootCmd.PersistentFlags().Lookup("description"))
	viper.BindPFlag("job.description-file", rootCmd.PersistentFlags().Lookup("description-file"))
}

// start builds the logger and reads the config for a ranking command.
func start(mode string) (*zap.Logger, *Config) {
	base, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), viper.GetString("log-file"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		base.Fatal("getting a config", zap.Error(err))
	}

	lg := base
	if mode != "" {
		jobType := ""
		if mode == export.ModeCriteria {
			jobType = config.Job.Type
		}
		lg = logger.WithCommonFields(base, mode, jobType)
	}

	lg.Info("starting the hire-ranker", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	lg.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return lg, config
}

// loadApplicants reads the applicants file and runs the filter chain over it.
func loadApplicants(ctx context.Context, lg *zap.Logger, config *Config) (*applicants.Applicants, error) {
	path := strings.TrimSpace(config.Applicants)
	if path == "" {
		return nil, errors.New("applicants file is not configured")
	}

	loaded, err := applicants.Load(path)
	if err != nil {
		return nil, err
	}

	lg.Info("loaded applicants", zap.String("file", path), zap.Int("count", loaded.Len()))
	lg.Debug("known applicant vocabulary",
		zap.Strings("skills", loaded.Skills()),
		zap.Strings("roles", loaded.Roles()),
	)

	steps := filtering.Default()
	if config.Exclude.KeepDuplicates {
		filtering.DisableByName(steps, "unique_email", "keep-duplicates is set")
	}

	for _, status := range filtering.Describe(steps) {
		lg.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	filtered, err := filtering.Run(ctx, &filtering.Config{
		ExcludeEmails: config.Exclude.Emails,
		ExcludeFile:   config.Exclude.File,
	}, filtering.Deps{Logger: lg}, steps, loaded)
	if err != nil {
		return nil, fmt.Errorf("filtering applicants: %w", err)
	}

	return filtered, nil
}

// loadDescription resolves the job description from the config.
func loadDescription(lg *zap.Logger, config *Config) (string, error) {
	description, err := jobdesc.Resolve(jobdesc.Input{
		Text: config.Job.Description,
		File: config.Job.DescriptionFile,
	})
	if err != nil {
		return "", err
	}

	lg.Info("using job description",
		zap.String("from", description.Origin()),
		zap.String("description", description.Summary(descriptionLogLimit)),
	)

	return description.Text, nil
}

// descriptionFailed logs a fatal description error, with a config hint when
// no description was given at all.
func descriptionFailed(lg *zap.Logger, err error) {
	fields := []zap.Field{zap.Error(err)}
	if hint := descriptionHint(err); hint != "" {
		fields = append(fields, zap.String("hint", hint))
	}
	lg.Fatal("loading job description", fields...)
}

func descriptionHint(err error) string {
	if errors.Is(err, jobdesc.ErrNotProvided) {
		return "set job.description or job.description-file, or pass --description/--description-file"
	}
	return ""
}

// dedupeSkills trims skills and drops empty and repeated (case-insensitive) entries.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, skill)
	}
	return result
}
