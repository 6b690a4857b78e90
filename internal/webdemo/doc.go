// Package webdemo holds the browser demo engine behind web/wasm. It has no
// dependency on syscall/js so it can be tested natively.
package webdemo
