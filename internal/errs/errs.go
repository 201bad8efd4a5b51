// Package errs defines the error types returned to API clients.
//
// Every error leaving a handler is converted into an *HTTPError by the
// global error handler, which decides both the status code and the JSON
// body. Two body shapes exist:
//
//	{"error": "Restaurant not found"}   single message (404, 500)
//	{"errors": ["validation errors"]}  list of messages (400)
package errs
