/*
Package config loads sequencer runtime configuration from a YAML file
using gopkg.in/yaml.v3, with a Duration type that unmarshals strings
like "100ms" instead of requiring raw nanosecond integers.
*/
package config
