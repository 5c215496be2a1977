// Package api carries the embedded OpenAPI document served at
// /swagger/openapi.json.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPISpec []byte
