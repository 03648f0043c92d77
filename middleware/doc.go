// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by the demo backend's
handlers.

  - Logger: request start/completion logging with duration
  - JSONResponse: write any value as a JSON body with a status code
  - ErrorResponse: write the standard {error, message} envelope
  - ParseJSONBody: decode a request body into a struct

Cross-origin handling lives in the router (go-chi/cors), not here.
*/
package middleware
