// Package domain contains the task entity, its status lifecycle, the
// validation rules for user input, and the sort vocabulary used when
// listing tasks. It has no knowledge of storage or transport.
package domain
