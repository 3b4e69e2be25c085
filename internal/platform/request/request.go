// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devkabir/moviq/internal/platform/apperr"
	"github.com/devkabir/moviq/internal/platform/ctxutil"
	"github.com/devkabir/moviq/internal/platform/identity"
	"github.com/devkabir/moviq/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ContentID parses the {id} URL parameter as a catalog content identifier.

A malformed selector token is actionable input gone wrong, so it surfaces
as a validation error rather than being dropped silently.
*/
func ContentID(request *http.Request) (int64, error) {
	raw := chi.URLParam(request, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Invalid content identifier")
	}

	return id, nil
}

/*
Sender extracts the sender identity from the request context.

Returns nil if the request carried no X-Sender-ID header.
*/
func Sender(request *http.Request) *identity.Sender {
	return ctxutil.GetSender(request.Context())
}

/*
RequiredSender ensures the request is identified and returns the sender.

Returns:
  - *identity.Sender: The forwarded sender identity
  - error: apperr.Unauthorized if the transport did not identify the sender
*/
func RequiredSender(request *http.Request) (*identity.Sender, error) {

	// Get the forwarded identity
	sender := ctxutil.GetSender(request.Context())

	// If the transport did not identify the sender, reject the request
	if sender == nil {
		return nil, apperr.Unauthorized("Sender identification required")
	}

	return sender, nil
}
