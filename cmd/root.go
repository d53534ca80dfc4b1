package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hire-ranker"
)

type Config struct {
	Applicants string         `mapstructure:"applicants"`
	Top        int            `mapstructure:"top"`
	Yes        bool           `mapstructure:"yes"`
	Job        *JobConfig     `mapstructure:"job"`
	Exclude    *ExcludeConfig `mapstructure:"exclude"`
	Report     *ReportConfig  `mapstructure:"report"`
}

type JobConfig struct {
	Type            string   `mapstructure:"type"`
	Skills          []string `mapstructure:"skills"`
	Description     string   `mapstructure:"description"`
	DescriptionFile string   `mapstructure:"description-file"`
}

type ExcludeConfig struct {
	Emails         []string `mapstructure:"emails"`
	File           string   `mapstructure:"file"`
	KeepDuplicates bool     `mapstructure:"keep-duplicates"`
}

type ReportConfig struct {
	XLSX string `mapstructure:"xlsx"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hire-ranker ranks job applicants against a job profile or a free-text job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	if err := viper.BindEnv("applicants", "HIRE_RANKER_APPLICANTS"); err != nil {
		log.Fatalf("binding HIRE_RANKER_APPLICANTS environment variable: %v", err)
	}

	viper.SetDefault("top", 3)
	viper.SetDefault("job.type", "tech")
	viper.SetDefault("job.skills", []string{"React", "JavaScript"})

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hire-ranker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "also write logs to this file")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if versionCmd.CalledAs() != "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The default config file is optional, flags and env are enough to run.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Job == nil {
		config.Job = &JobConfig{}
	}
	if config.Exclude == nil {
		config.Exclude = &ExcludeConfig{}
	}
	if config.Report == nil {
		config.Report = &ReportConfig{}
	}

	return config, nil
}
