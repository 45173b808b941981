package assetmin

// Callback receives the final result of a CompileAndMinify call
type Callback func(err error, body string)

// ErrorHandlerFunc decides what a caller gets back when minification fails. It
// must call cb exactly once before returning. It may recover by passing a nil
// error and a substitute body.
type ErrorHandlerFunc func(info *Error, cb Callback)

// DefaultErrorHandler never drops content. Compile failures have nothing to
// fall back on, so the body becomes a JSON rendering of the error; minify
// failures fall back to the original body. The error is always surfaced.
func DefaultErrorHandler(info *Error, cb Callback) {
	if info.Stage == StageCompile {
		cb(info.Err, serializeError(info.Err))
		return
	}

	cb(info.Err, info.Body)
}

// StrictErrorHandler fails hard: the whole *Error is returned with an empty
// body.
func StrictErrorHandler(info *Error, cb Callback) {
	cb(info, "")
}
