// Package errs holds the typed errors shared by the domain, the use cases and
// the HTTP adapter.
//
// Every type unwraps to one sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired). Callers classify failures with
// errors.Is against the sentinel and read details with errors.As; the HTTP
// adapter maps ErrObjectNotFound to 404 and the three value sentinels to 422.
package errs
