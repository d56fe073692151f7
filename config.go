package chronoaxis

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config is the file-loadable form of the axis options, so chart
// tooling can ship axis presets next to its other YAML configuration.
// Zero values mean "use the default"; Options translates a Config into
// the corresponding functional options.
type Config struct {
	// IntervalType and MinorIntervalType name a tier: "auto", "manual",
	// "years", "months", "weeks", "days", "hours", "minutes",
	// "seconds", "milliseconds".
	IntervalType      string `yaml:"interval_type"`
	MinorIntervalType string `yaml:"minor_interval_type"`

	// Interval is the manual major step in day units, used with
	// interval_type: manual.
	Interval float64 `yaml:"interval"`

	// Format overrides the per-tier label patterns.
	Format string `yaml:"format"`

	// Locale is a BCP 47 tag such as "en-US" or "de".
	Locale string `yaml:"locale"`

	// TimeZone is an IANA zone name such as "Europe/Berlin".
	TimeZone string `yaml:"time_zone"`

	// FirstDayOfWeek is an English weekday name.
	FirstDayOfWeek string `yaml:"first_day_of_week"`

	// WeekRule is "first-day", "first-full-week", or "iso".
	WeekRule string `yaml:"week_rule"`

	// TargetLabelSize is the pixel budget per label.
	TargetLabelSize float64 `yaml:"target_label_size"`
}

// LoadConfig reads an axis configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read axis config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses an axis configuration from YAML bytes.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse axis config: %w", err)
	}
	return c, nil
}

// Options translates the config into functional options for New.
// Invalid names (unknown tier, zone, locale) are reported as errors
// rather than silently ignored.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	if c.IntervalType != "" {
		t, err := parseTier(c.IntervalType)
		if err != nil {
			return nil, fmt.Errorf("interval_type: %w", err)
		}
		opts = append(opts, WithIntervalType(t))
	}
	if c.MinorIntervalType != "" {
		t, err := parseTier(c.MinorIntervalType)
		if err != nil {
			return nil, fmt.Errorf("minor_interval_type: %w", err)
		}
		opts = append(opts, WithMinorIntervalType(t))
	}
	if c.Interval > 0 {
		opts = append(opts, WithInterval(c.Interval))
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(c.Format))
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", c.Locale, err)
		}
		opts = append(opts, WithLocale(tag))
	}
	if c.TimeZone != "" {
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("time_zone %q: %w", c.TimeZone, err)
		}
		opts = append(opts, WithLocation(loc))
	}
	if c.FirstDayOfWeek != "" {
		d, err := parseWeekday(c.FirstDayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("first_day_of_week: %w", err)
		}
		opts = append(opts, WithFirstDayOfWeek(d))
	}
	if c.WeekRule != "" {
		r, err := parseWeekRule(c.WeekRule)
		if err != nil {
			return nil, fmt.Errorf("week_rule: %w", err)
		}
		opts = append(opts, WithWeekRule(r))
	}
	if c.TargetLabelSize > 0 {
		opts = append(opts, WithTargetLabelSize(c.TargetLabelSize))
	}
	return opts, nil
}

func parseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto":
		return TierAuto, nil
	case "manual":
		return TierManual, nil
	case "years":
		return TierYears, nil
	case "months":
		return TierMonths, nil
	case "weeks":
		return TierWeeks, nil
	case "days":
		return TierDays, nil
	case "hours":
		return TierHours, nil
	case "minutes":
		return TierMinutes, nil
	case "seconds":
		return TierSeconds, nil
	case "milliseconds":
		return TierMilliseconds, nil
	}
	return TierAuto, fmt.Errorf("unknown tier %q", name)
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

func parseWeekRule(name string) (WeekRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first-day", "firstday":
		return WeekRuleFirstDay, nil
	case "first-full-week", "firstfullweek":
		return WeekRuleFirstFullWeek, nil
	case "iso":
		return WeekRuleISO, nil
	}
	return WeekRuleFirstDay, fmt.Errorf("unknown week rule %q", name)
}
