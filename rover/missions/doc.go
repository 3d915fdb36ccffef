// Package missions provides mission library management for the Plateau Rover
// Mission Simulator.
//
// The missions package handles:
//   - Loading mission text files from the missions directory
//   - Parse-time validation of every loaded mission
//   - Default mission fallback
//   - Mission discovery and listing
//
// Mission File Format:
//
// Missions are stored as plain .txt files, one mission per file, in the text
// format the parser accepts: a plateau line followed by position/commands
// pairs. The filename without extension is the mission ID used for session
// creation.
//
// Validation:
//
// A mission file is only served after it parses cleanly; listing skips files
// the parser rejects. Saving a mission validates the text first, so the
// library never contains a mission the simulator cannot run.
package missions
