// package transport contains implementations to requirements on *message syntaxes*
// defined by http related RFCs, HTTP/1.1 (RFC9112) request serialization only.
//
// the request line and header block are written by hand, byte for byte, so
// tests driving a server know exactly what went on the wire:
//
//	GET / HTTP/1.1\r\n
//	Host: localhost:8888\r\n
//	Accept: */*\r\n
//	\r\n
//
// reading the response is intentionally not handled here. url parsing and
// header field validation are reused from [net/url] and httpguts.

package transport
