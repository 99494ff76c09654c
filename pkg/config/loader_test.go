package config_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/pkg/config"
	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

type TestConfigDefault struct {
	Time    string `env:"TEST_TIME_DEFAULT" envDefault:"09:00"`
	Weekday int    `env:"TEST_WEEKDAY_DEFAULT" envDefault:"1"`
	Enabled bool   `env:"TEST_ENABLED_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	Time    string `env:"TEST_TIME_SUCCESS" envDefault:"09:00"`
	Weekday int    `env:"TEST_WEEKDAY_SUCCESS" envDefault:"1"`
	Enabled bool   `env:"TEST_ENABLED_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	Branch string `env:"TEST_BRANCH_SINGLETON" envDefault:"main"`
}

type TestConfigDifferent1 struct {
	Value string `env:"VALUE_TYPE1" envDefault:"default1"`
}

type TestConfigDifferent2 struct {
	Value string `env:"VALUE_TYPE2" envDefault:"default2"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

// ScheduleConfig validates itself with the validator package.
type ScheduleConfig struct {
	Time    string `env:"TEST_SCHEDULE_TIME" envDefault:"09:00"`
	Weekday int    `env:"TEST_SCHEDULE_WEEKDAY" envDefault:"1"`
}

func (c ScheduleConfig) Validate() error {
	return validator.Apply(
		validator.ValidateTimeFormat(c.Time).Rule("time", validator.Key(validator.RuleTime)),
		validator.ValidateDayOfWeek(c.Weekday).Rule("weekday", validator.Key(validator.RuleDayOfWeek)),
	)
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_TIME_SUCCESS", "18:45")
	t.Setenv("TEST_WEEKDAY_SUCCESS", "5")
	t.Setenv("TEST_ENABLED_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "18:45", cfg.Time)
	assert.Equal(t, 5, cfg.Weekday)
	assert.False(t, cfg.Enabled)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_TIME_DEFAULT")
	os.Unsetenv("TEST_WEEKDAY_DEFAULT")
	os.Unsetenv("TEST_ENABLED_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "09:00", cfg.Time)
	assert.Equal(t, 1, cfg.Weekday)
	assert.True(t, cfg.Enabled)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.True(t, errors.Is(err, config.ErrParsingConfig), "Error should be ErrParsingConfig")
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_BRANCH_SINGLETON", "develop")

	var firstConfig TestConfigSingleton
	err := config.Load(&firstConfig)
	require.NoError(t, err, "First load should not return an error")

	t.Setenv("TEST_BRANCH_SINGLETON", "main")

	var secondConfig TestConfigSingleton
	err = config.Load(&secondConfig)
	require.NoError(t, err, "Second load should not return an error")

	assert.Equal(t, "develop", secondConfig.Branch, "Second config should have the first value due to caching")
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("VALUE_TYPE1", "test_type1")
	t.Setenv("VALUE_TYPE2", "test_type2")

	var config1 TestConfigDifferent1
	require.NoError(t, config.Load(&config1))

	var config2 TestConfigDifferent2
	require.NoError(t, config.Load(&config2))

	assert.Equal(t, "test_type1", config1.Value)
	assert.Equal(t, "test_type2", config2.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err, "Load should return an error when given a nil pointer")
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_Validate(t *testing.T) {
	t.Run("invalid values are rejected and not cached", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SCHEDULE_TIME", "9:00")
		t.Setenv("TEST_SCHEDULE_WEEKDAY", "7")

		var cfg ScheduleConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"time", "weekday"}, verrs.Fields())

		t.Setenv("TEST_SCHEDULE_TIME", "21:15")
		t.Setenv("TEST_SCHEDULE_WEEKDAY", "6")

		var fixed ScheduleConfig
		require.NoError(t, config.Load(&fixed), "a failed load must not poison the cache")
		assert.Equal(t, "21:15", fixed.Time)
		assert.Equal(t, 6, fixed.Weekday)
	})
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("VALUE_TYPE1", "shared")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var cfg TestConfigDifferent1
			if err := config.Load(&cfg); err == nil {
				results[i] = cfg.Value
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, "shared", v)
	}
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})

	assert.NotPanics(t, func() {
		var cfg TestConfigDefault
		config.MustLoad(&cfg)
	})
}
