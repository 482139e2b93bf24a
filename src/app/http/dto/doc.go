// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Keep the wire names (_id, __v) out of the domain model
//
// Naming convention:
//   - Request types: <Resource>Request (e.g., JokeRequest)
//   - Response types: <Resource>Response (e.g., JokeResponse)
package dto
