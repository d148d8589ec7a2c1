// Package config manages user-level settings stored at ~/.resproj/config.yaml.
// Every key can also be supplied through a RESPROJ_-prefixed environment
// variable, which takes precedence over the file.
package config
