// Package config loads the optional YAML configuration file for the CLI.
//
// Every setting in the file has a matching command-line flag; flags that were
// set explicitly always win over file values, which in turn win over the
// built-in defaults.
package config
