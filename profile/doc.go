// Package profile runs an optional pprof profiler around a stencil command.
//
// Profiling is compiled in only with the "pprof" build tag ([Tag]); without
// it [Modes] yields nothing and [Config.Start] always returns a no-op
// [Stopper]. The profilers are provided by [github.com/pkg/profile]:
//
//	go build -tags pprof .
//	./stencil --pprof-mode cpu parse page.stn
//	go tool pprof -http=: ~/.cache/stencil/pprof/cpu.pprof
//
// A pprof build also imports [net/http/pprof], so a program that serves
// [net/http.DefaultServeMux] exposes /debug/pprof/ as well.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
