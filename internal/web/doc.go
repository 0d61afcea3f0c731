// Package web is the HTTP surface of the QR generator.
//
// It serves the generator pages, the public QR API (/api/qr) and the live
// preview endpoints. Visitors are identified by a signed cookie; each visitor
// owns one preview.Session that debounces renders and keeps exactly one
// preview image alive.
//
// Routes:
//
//	GET  /                       generator, url content type
//	GET  /{slug}                 generator landing page (wifi, vcard, ...)
//	GET  /api/qr                 ?text=&size=&fg=&bg=&format=&dots=&corners=
//	POST /api/qr                 {"text": "...", "width": 256, ...}
//	POST /api/qr/compose         multipart form with optional logo, returns a download
//	POST /preview                datastar signals; schedules a debounced render
//	GET  /preview/stream         datastar stream of preview states
//	GET  /preview/image/{handle} bytes of a live preview image
//	POST /preview/logo           multipart logo upload
//	DELETE /preview/logo         removes the logo
//	GET  /download               full size render of the visitor's current code
//	GET  /health/live, /health/ready, /metrics
package web
