// Package preview drives the live preview of a visitor's QR code.
//
// A Session holds one visitor's input and the image currently on display.
// Every input change bumps a generation counter and restarts a debounce timer;
// only when the timer fires without further changes is a render started. A
// render's result is applied only if its generation is still the latest one,
// so results that complete out of order are dropped.
//
// Displayed images live in a Registry under opaque handles. A session releases
// the previous handle as soon as a new image is installed, when the preview is
// cleared, and when the session is closed.
//
// Manager keeps sessions in an LRU keyed by visitor ID and closes sessions it
// evicts.
package preview
