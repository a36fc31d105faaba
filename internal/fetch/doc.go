package fetch

// Package fetch retrieves the record payload over HTTP and decodes it. Fetch is
// fail-soft: any transport, status or decoding failure is logged and turned
// into an empty record set so the UI never sees an error.
