// Package api handles incoming HTTP requests for the task resource. It
// decodes and checks request input, calls the task service and maps its
// results and errors onto JSON responses.
package api
