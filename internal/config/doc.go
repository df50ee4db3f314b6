// Package config loads textobj configuration.
//
// Configuration is assembled from three sources, later ones overriding
// earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A configuration file, TOML or YAML depending on its extension
//  3. TEXTOBJ_* environment variables
//
// A file may contain any subset of the sections:
//
//	[logging]
//	level = "debug"
//	file = "/tmp/textobj.log"
//
//	[editor]
//	help_overlay = true
//	parallel_threshold = 64
//
//	[listing]
//	show_hidden = false
//	dirs_first = true
//
//	[[languages]]
//	name = "python"
//	extensions = ["py"]
//	comment_tokens = ["#"]
//
//	[keys.normal]
//	"gm" = "goto_matching_pair"
//
// Unknown keys are rejected so that typos surface at load time.
//
// Watch follows a file with fsnotify and hands every successfully or
// unsuccessfully reloaded Config to a callback. Bursts of events from a
// single save are folded into one reload.
package config
