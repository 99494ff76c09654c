// Package settings describes a scheduled repository-sync job and validates it
// field by field with pkg/validator.
package settings

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputcheck/pkg/config"
	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

// Settings is the configuration of one sync job. It can be decoded from YAML
// or loaded from SYNC_* environment variables.
type Settings struct {
	ServerURL       string `yaml:"server_url" json:"server_url" env:"SYNC_SERVER_URL"`
	NotifyEmail     string `yaml:"notify_email" json:"notify_email,omitempty" env:"SYNC_NOTIFY_EMAIL"`
	APIKey          string `yaml:"api_key" json:"api_key" env:"SYNC_API_KEY"`
	APIKeyMinLength int    `yaml:"api_key_min_length" json:"api_key_min_length,omitempty" env:"SYNC_API_KEY_MIN_LENGTH" envDefault:"10"`
	Branch          string `yaml:"branch" json:"branch" env:"SYNC_BRANCH" envDefault:"main"`
	RepoPath        string `yaml:"repo_path" json:"repo_path" env:"SYNC_REPO_PATH"`
	Time            string `yaml:"time" json:"time" env:"SYNC_TIME" envDefault:"09:00"`
	Weekday         int    `yaml:"weekday" json:"weekday" env:"SYNC_WEEKDAY" envDefault:"1"`
}

// Defaults returns Settings with the same defaults the env loader applies.
func Defaults() Settings {
	return Settings{
		APIKeyMinLength: validator.DefaultAPIKeyMinLength,
		Branch:          "main",
		Time:            "09:00",
		Weekday:         1,
	}
}

// Validate checks every field and returns validator.ValidationErrors with one
// entry per failing field, or nil.
func (s Settings) Validate() error {
	minLength := s.APIKeyMinLength
	if minLength <= 0 {
		minLength = validator.DefaultAPIKeyMinLength
	}

	rules := []validator.Rule{
		validator.ValidateURL(s.ServerURL).Rule("server_url", validator.Key(validator.RuleURL)),
		validator.ValidateAPIKeyMinLength(s.APIKey, minLength).Rule("api_key", validator.Key(validator.RuleAPIKey)),
		validator.ValidateBranchName(s.Branch).Rule("branch", validator.Key(validator.RuleBranch)),
		validator.ValidateFilePath(s.RepoPath).Rule("repo_path", validator.Key(validator.RuleFilePath)),
		validator.ValidateTimeFormat(s.Time).Rule("time", validator.Key(validator.RuleTime)),
		validator.ValidateDayOfWeek(s.Weekday).Rule("weekday", validator.Key(validator.RuleDayOfWeek)),
	}
	if s.NotifyEmail != "" {
		rules = append(rules, validator.ValidateEmail(s.NotifyEmail).Rule("notify_email", validator.Key(validator.RuleEmail)))
	}

	return validator.Apply(rules...)
}

// Parse decodes a YAML document on top of Defaults. Unknown keys are rejected.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, errors.Join(ErrDecodeFile, err)
	}
	return s, nil
}

// LoadFile reads and decodes the YAML file at path. The result is not validated.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Join(ErrReadFile, err)
	}
	return Parse(data)
}

// FromEnv loads Settings from SYNC_* variables (and the default .env file).
// Invalid settings are reported joined with config.ErrInvalidConfig.
func FromEnv() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
