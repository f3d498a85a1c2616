// Package inventoryquickservice is a stateless inventory-management HTTP API
// backed by a single DynamoDB table.
//
// The service exposes CRUD operations on item records (id, name, quantity,
// price) plus bulk CSV import/export, served either as an AWS Lambda behind
// API Gateway or as a local HTTP server for development.
//
// Layout:
//
//   - codec: wire<->storage value conversion; numbers persist as exact
//     decimals built from their canonical string form.
//   - dyndb: raw-record DynamoDB store, update-expression builder with
//     reserved-word aliasing, fluent scan, test mocks.
//   - inventory: the item model and business service (create, partial update,
//     delete, list, CSV bulk transfer).
//   - pkg/transport: request routing, response envelopes with CORS, the local
//     gorilla/mux runtime.
//   - pkg/config, pkg/logger, pkg/metrics, envloader: service configuration,
//     zerolog setup, Datadog statsd metrics, env-tag struct loading.
//
// cmd/server wires everything together and picks the runtime from
// configuration.
package inventoryquickservice
