// Command filenamify converts strings into valid, portable filenames.
//
// Usage:
//
//	filenamify [flags] [input...]      sanitize each argument, or each stdin line
//	filenamify path <path...>          sanitize the last element of each path
//	filenamify components <path...>    sanitize every element of relative paths
//	filenamify trace <input>           show the output of every pipeline stage
//	filenamify config                  print the effective configuration
//
// Flags override values from the config file and FILENAMIFY_* variables.
package main
