package assetmin

import (
	"io"
	"net/http"

	"github.com/goji/param"
)

// handlerArgs are the query arguments accepted by the handler, eg.
// "?type=css&minify=false&css[precision]=3"
type handlerArgs struct {
	Type   string      `param:"type"`
	Minify *bool       `param:"minify"`
	JS     JSOptions   `param:"js"`
	CSS    CSSOptions  `param:"css"`
	HTML   HTMLOptions `param:"html"`
}

type handler struct {
	d       *Dispatcher
	maxBody int64
}

// MaxHandlerBody is the largest body NewHandler accepts
const MaxHandlerBody = 32 << 20

// NewHandler exposes d over HTTP: POST a body, with the asset type and options
// in the query string, and get the minified body back. When the error handler
// produces an error, the status is 422, the error is in the X-Minify-Error
// header, and the body is whatever fallback the error handler chose.
func NewHandler(d *Dispatcher) http.Handler {
	return handler{
		d:       d,
		maxBody: MaxHandlerBody,
	}
}

func (args handlerArgs) options() Options {
	return Options{
		Minify: args.Minify,
		JS:     args.JS,
		CSS:    args.CSS,
		HTML:   args.HTML,
	}
}

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "only POST is supported", http.StatusMethodNotAllowed)
		return
	}

	var args handlerArgs
	err := param.Parse(r.URL.Query(), &args)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	out, err := h.d.Minify(args.Type, args.options(), string(body))

	at := ParseAssetType(args.Type)
	if at != Unknown {
		w.Header().Set("Content-Type", at.MediaType())
	} else if ct := r.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}

	if err != nil {
		w.Header().Set("X-Minify-Error", oneLine(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
	}

	io.WriteString(w, out)
}
