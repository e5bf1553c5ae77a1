// Package docs provides OpenAPI documentation for the rosterhub API
//
// The swagger document is registered with swaggo/swag and served via Swagger UI
// at /docs/index.html.
//
// @title           Rosterhub Player API
// @version         1.0.0
// @description     CRUD endpoints for player records.
// @description
// @description     ## Envelope
// @description
// @description     Every response is JSON with a boolean `success` flag. Successful responses may carry
// @description     `data` and `message`; failures carry a single human readable `error`.
//
// @license.name  MIT
// @BasePath      /
package docs
