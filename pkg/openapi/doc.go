// Package openapi exports Go parameter and result types as kin-openapi
// schemas, so a function signature can be published as the request body of
// an RPC-style operation. Struct fields follow encoding/json naming rules.
package openapi
