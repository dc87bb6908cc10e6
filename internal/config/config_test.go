package config_test

import (
	"errors"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.Season, convey.ShouldEqual, "Summer")
			convey.So(cfg.TopAthletes, convey.ShouldEqual, 15)
			convey.So(cfg.TopCountryAthletes, convey.ShouldEqual, 10)
			convey.So(cfg.NOCAliases, convey.ShouldResemble, map[string]string{"SGP": "SIN"})
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs breaking one rule each", t, func() {
		cases := map[string]func(c *config.Config){
			"log level":   func(c *config.Config) { c.LogLevel = "loud" },
			"log format":  func(c *config.Config) { c.LogFormat = "xml" },
			"events path": func(c *config.Config) { c.EventsPath = "" },
			"top limit":   func(c *config.Config) { c.TopAthletes = 0 },
			"max limit":   func(c *config.Config) { c.MaxLimit = 5 },
			"burst":       func(c *config.Config) { c.RateLimitBurst = -1 },
			"alias":       func(c *config.Config) { c.NOCAliases = map[string]string{"SGP": ""} },
			"age sport":   func(c *config.Config) { c.AgeSports = []string{"Judo", ""} },
		}
		for name, mutate := range cases {
			cfg := config.New()
			mutate(cfg)
			err := cfg.Validate()
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			if err == nil {
				t.Errorf("%s: expected validation error", name)
			}
		}
	})
}
