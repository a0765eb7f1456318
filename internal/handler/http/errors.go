// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when looking for the
// session token. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned by the auth middleware when the request
	// carries neither an "Authorization" header nor a session cookie.
	ErrNoSessionToken = errors.New("authentication required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoPictureUploaded is returned when the multipart form has no
	// "profilePicture" file.
	ErrNoPictureUploaded = errors.New("no profile picture uploaded")

	// ErrUploadTooLarge is returned when the upload exceeds the configured
	// size limit.
	ErrUploadTooLarge = errors.New("profile picture is too large")

	// ErrMissingUserID means a protected handler ran without the auth
	// middleware.
	ErrMissingUserID = errors.New("no user id in request context")
)
