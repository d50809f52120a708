// Package config defines the configuration for a fairshow server.
//
// Whether fairshow is started from Go code or from the command line, it uses
// the Config object defined in this package. On top of the command line flags,
// fairshow looks in Config.DataDir for an optional configuration file:
//
//  fairshow.toml // (or .yaml, .json) values for any of the run flags.
//
// Nothing else is read from or written to the data directory; sessions live in
// memory only. When LogDir is set, info and debug logs are also written to
// fairshow_info.log and fairshow_debug.log in that directory.
package config
