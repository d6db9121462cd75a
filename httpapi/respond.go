/*
 * Copyright 2026 motorlot.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/motorlot/motorlot/types"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError renders err with the status its type maps to. Server-side
// failures are logged and masked; their details are not for clients.
func (a *api) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	detail := err.Error()
	if status >= http.StatusInternalServerError {
		a.log.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
		detail = "internal server error"
	}
	respondJSON(w, status, errorResponse{Detail: detail})
}

func statusFor(err error) int {
	var ri *types.ReferentialIntegrityError
	switch {
	case types.IsValidation(err):
		return http.StatusBadRequest
	case types.IsNotFound(err):
		return http.StatusNotFound
	case types.IsConflict(err):
		return http.StatusConflict
	case errors.As(err, &ri):
		// A sale naming an unknown vehicle reads as "vehicle not found".
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
