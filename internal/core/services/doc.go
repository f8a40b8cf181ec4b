// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Retrieval here is deliberately deterministic: substring matching,
// regex extraction and co-occurrence scans over the in-memory
// document. There is no embedding model, vector index or graph.
package services
