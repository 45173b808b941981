package assetmin

import "time"

// An Observer is told about every CompileAndMinify call
type Observer interface {
	Observe(ev Event)
}

// Event describes a single CompileAndMinify call
type Event struct {
	AssetType AssetType
	Skipped   bool // Body passed through without an engine
	In, Out   int  // Body sizes in bytes
	Took      time.Duration
	Err       *Error // Set when an engine failed
}
