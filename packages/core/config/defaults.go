package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Output:          "json",
		Indent:          2,
		NoColor:         BoolPtr(false),
		Quiet:           BoolPtr(false),
		ReportDangling:  BoolPtr(false),
		Extensions:      []string{".ndtl", ".indental"},
		TableExtensions: []string{".tbtl", ".tablatal"},
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Output == defaults.Output &&
		c.Indent == defaults.Indent &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.GetQuiet() == defaults.GetQuiet() &&
		c.GetReportDangling() == defaults.GetReportDangling() &&
		equalStrings(c.Extensions, defaults.Extensions) &&
		equalStrings(c.TableExtensions, defaults.TableExtensions)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
