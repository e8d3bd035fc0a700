// Package config manages user-level settings stored at ~/.zygokit/config.yaml.
// Values can be overridden with ZYGOKIT_* environment variables; the runner
// used for generator commands and the default output directory live here.
package config
