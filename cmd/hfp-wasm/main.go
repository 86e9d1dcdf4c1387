//go:build js && wasm

// Command hfp-wasm is the WebAssembly entry point the browser SPA loads.
// It registers the wasmhost bridge functions on the JS global object and
// then blocks forever, the standard wasm_exec.js-compatible pattern.
package main

import (
	"github.com/hfproviders/hfp/internal/wasmhost"
)

func main() {
	wasmhost.Register()
	select {}
}
