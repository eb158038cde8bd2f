// Package app is the composition root of flipbook.
//
// Run loads the config and applies command line overrides, builds the zap
// logger, loads the book inventory, creates the state store and hands
// everything to the UI. When a touch device is configured, a background pump
// forwards its samples to the UI event loop and reopens the device with
// exponential backoff when reads fail.
//
// Fatal errors (returned from Run):
//   - Invalid config file or overrides
//   - A book that cannot be loaded or has no leaves
//
// Recoverable errors (logged):
//   - Touch device failures
//   - Preference save failures
package app
