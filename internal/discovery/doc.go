// Package discovery finds engine installations below a scan root.
//
// Each immediate subdirectory of the root is one candidate installation.
// A Strategy decides, per host platform, which files are launchable
// executables and how their embedded version metadata is read. Only
// Windows has a strategy; other hosts get ErrUnimplemented from Scan.
//
// A directory that yields no valid executable is reported and skipped;
// its siblings are still scanned. Every accepted directory gets an empty
// "._sc_" marker that confines the engine's own settings to that directory.
package discovery
