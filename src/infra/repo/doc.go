// Package repo contains the document store adapters behind ports.JokeRepository.
//
// Adapters:
//   - MongoRepository: one collection of joke documents (the default store)
//   - PostgresRepository: jokes kept as JSONB documents in a single table
//   - MemoryRepository: process-local store for development and tests
//   - Instrumented: decorator recording Prometheus metrics for any adapter
//
// Every adapter validates records with the shared schema before writing
// and returns *domain.StoreError on failure.
package repo
