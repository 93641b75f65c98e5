// Package config loads the engine configuration: logging settings and
// the tunable analysis policy (confidence gates, rule windows, score
// cutoffs).
//
// Configuration is resolved from a YAML file, a .env file (via
// godotenv), and CALLINTEL_* environment variables (via viper), in
// that order of increasing precedence. Every policy value has a
// default; an empty config is valid.
//
// # Example config.yml
//
//	logging:
//	  level: "debug"
//	policy:
//	  roles:
//	    max_top_share: 0.88
//	  outcome:
//	    booked_cutoff: 4
package config
