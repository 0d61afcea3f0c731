// Package views renders the HTML of the generator UI as templ components.
//
// Interactive parts are driven by datastar: the generator form keeps its state
// in signals, posts every change to /preview and keeps a stream open on
// /preview/stream that patches the #preview, #warnings and #logo-status
// elements.
package views
