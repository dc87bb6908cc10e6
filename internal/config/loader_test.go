package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load("")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_TOP_ATHLETES", "20")
			_ = os.Setenv("PODIUM_RATE_LIMIT_RPS", "2.5")
			_ = os.Setenv("PODIUM_AGE_SPORTS", "Judo, Rowing")
			_ = os.Setenv("PODIUM_NOC_ALIASES", "URS:RUS")

			cfg, err := config.Load("")

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.TopAthletes, convey.ShouldEqual, 20)
				convey.So(cfg.RateLimitRPS, convey.ShouldEqual, 2.5)
				convey.So(cfg.AgeSports, convey.ShouldResemble, []string{"Judo", "Rowing"})
				convey.So(cfg.NOCAliases["URS"], convey.ShouldEqual, "RUS")
				convey.So(cfg.NOCAliases["SGP"], convey.ShouldEqual, "SIN")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
events_path: /srv/athlete_events.csv
season: Winter
max_limit: 50
age_sports:
  - Biathlon
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("PODIUM_CONFIG", tmpFile)

			cfg, err := config.Load("")

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.EventsPath, convey.ShouldEqual, "/srv/athlete_events.csv")
				convey.So(cfg.Season, convey.ShouldEqual, "Winter")
				convey.So(cfg.MaxLimit, convey.ShouldEqual, 50)
				convey.So(cfg.AgeSports, convey.ShouldResemble, []string{"Biathlon"})
			})

			convey.Convey("And environment variables override file values", func() {
				_ = os.Setenv("PODIUM_ADDR", ":8080")
				cfg, err := config.Load("")
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Season, convey.ShouldEqual, "Winter")
			})

			convey.Convey("And an explicit path wins over PODIUM_CONFIG", func() {
				other := createTempConfigFile(t, "addr: \":7070\"\n")
				cfg, err := config.Load(other)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Season, convey.ShouldEqual, "Summer")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)

			cfg, err := config.Load(tmpFile)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			cfg, err := config.Load("/non/existent/file.yaml")
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			convey.So(cfg, convey.ShouldBeNil)
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("PODIUM_ADDR", "")

			cfg, err := config.Load("")

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "Addr")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown season", func() {
			_ = os.Setenv("PODIUM_SEASON", "Spring")
			_, err := config.Load("")
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"PODIUM_CONFIG",
		"PODIUM_ADDR",
		"PODIUM_TOP_ATHLETES",
		"PODIUM_RATE_LIMIT_RPS",
		"PODIUM_AGE_SPORTS",
		"PODIUM_NOC_ALIASES",
		"PODIUM_SEASON",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	tmpFile, err := os.CreateTemp(t.TempDir(), "podium-config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatal(err)
	}

	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpFile.Name()
}
