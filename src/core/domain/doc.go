// Package domain contains the core domain model for the jokes API.
//
// This package defines:
//   - Entities: Joke and the JokeFields used to create or patch one
//   - Domain Errors: StoreError and its kinds, the only error shape
//     that leaves the data access layer
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
package domain
