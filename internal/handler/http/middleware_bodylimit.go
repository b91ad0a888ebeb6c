// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// maxBodyBytes caps request bodies at 1 MiB. Reads past the limit fail
// with [http.MaxBytesError], which decodeBody turns into 413.
const maxBodyBytes = 1 << 20

func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
