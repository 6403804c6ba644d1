// Package api provides the read-only REST API over the domain registry
// @title DomainIndexor API
// @version 1.0
// @description REST API for querying the domain registry materialized by DomainIndexor
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/DomainIndexor
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /api/v1
// @schemes http https
package api
