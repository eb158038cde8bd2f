// Package config loads flipbook settings from a TOML file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flipbook/config.toml
//  3. If the file doesn't exist, use the built-in defaults
//  4. Fields missing from the file keep their defaults
//
// # TOML Format
//
//	book = "~/books/tale.yaml"     # manifest or directory; empty = demo book
//	transition_ms = 600            # lock held after each page turn
//	touch_min_distance_px = 30
//	touch_min_ms = 50
//	touch_max_ms = 500
//	input_strategy = "wheel"       # or "scroll"
//	scroll_sync = true             # scroll the container to follow the page
//	cell_height_px = 16            # terminal row height used for gestures
//	touch_device = ""              # e.g. /dev/input/event5
//	log_file = ""                  # empty disables logging
//	log_level = "info"
//
// Paths starting with ~ are expanded to the home directory.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors and values that
// fail Validate. Validation errors wrap ErrInvalid. A missing file is not an
// error.
package config
