package assetmin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/thatguystone/cog/stringc"
)

// Stage is the point in the pipeline where a failure originated
type Stage string

const (
	// StageCompile failures come from a step that runs before minification
	// (eg. SCSS compilation). There's nothing sensible to fall back to.
	StageCompile Stage = "compile"

	// StageMinify failures come from a minification engine. The unminified
	// body is still usable.
	StageMinify Stage = "minify"
)

var (
	// ErrUnknownEngine is returned by New when an engine name isn't registered
	ErrUnknownEngine = errors.New("unknown engine")

	// ErrNoResult is returned by Minify when the error handler never called
	// back
	ErrNoResult = errors.New("error handler did not call back")
)

// ErrIndent is used to indent nested error messages
const ErrIndent = "    "

// Error carries everything known about a failed minification. It's built once
// by the Dispatcher and handed to the error handler.
type Error struct {
	Stage     Stage
	Err       error  // Underlying failure
	Body      string // Input to the failed stage (compiled CSS for SCSS minify failures)
	AssetType AssetType
	Options   Options
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s %s failed: %v", err.AssetType, err.Stage, err.Err)
}

// Unwrap gives the underlying error
func (err *Error) Unwrap() error { return err.Err }

// Cause gives the underlying error, for errors.Cause
func (err *Error) Cause() error { return err.Err }

// Errors is a list of sub-errors reported by an engine in one pass. CSS
// engines report failures this way.
type Errors []error

func (errs Errors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(errs))

	for _, err := range errs {
		b.WriteString("\n")
		b.WriteString(stringc.Indent(err.Error(), ErrIndent))
	}

	return b.String()
}

// MarshalJSON encodes the list as an array of messages
func (errs Errors) MarshalJSON() ([]byte, error) {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return json.Marshal(msgs)
}

// serializeError gives a JSON form of err, for use as a stand-in body
func serializeError(err error) string {
	if err == nil {
		return "null"
	}

	var b []byte
	var jerr error

	if m, ok := err.(json.Marshaler); ok {
		b, jerr = m.MarshalJSON()
	} else {
		b, jerr = json.Marshal(err.Error())
	}

	if jerr != nil {
		return strconv.Quote(err.Error())
	}

	return string(b)
}

// oneLine flattens an error message for places that can't take newlines
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
