package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is where the profiling endpoints are served. pprof.Index resolves
// named profiles relative to this exact path, so it cannot be moved.
const PprofPath = "/debug/pprof/"

// PprofHandler returns a handler serving the net/http/pprof endpoints under
// PprofPath. Mount it on PprofPath without stripping the prefix.
func PprofHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPath, pprof.Index)
	mux.HandleFunc(PprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPath+"profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPath+"trace", pprof.Trace)

	return mux
}
