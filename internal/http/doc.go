// Package http provides the REST surface of the game session scheduler.
//
// The router exposes the following endpoints:
//   - POST /games, GET /games, PATCH /games/{id}/status,
//     PATCH /games/{id}/genre, DELETE /games/{id}: game catalog management
//     exchanging the `gameDTO` payload defined in game_handler.go.
//   - POST /fixed-events, GET /fixed-events, DELETE /fixed-events/{id}:
//     immovable commitments exchanging the `fixedEventDTO` payload defined
//     in fixed_event_handler.go. Events have no update operation.
//   - POST /schedules/generate: regenerates the whole schedule set over
//     the planning horizon, replacing any prior set.
//   - GET /schedules, PATCH /schedules/{id}/move,
//     POST /schedules/{id}/complete, POST /schedules/{id}/skip: play
//     session listing and outcome operations; complete and skip also fire
//     the points ledger.
//   - GET /points, GET /points/records, GET /points/motivation: ledger
//     reads.
//   - GET /notifications, POST /notifications/{id}/read,
//     POST /notifications/read-all, GET /notification-settings,
//     PUT /notification-settings: reminder log and preferences.
//
// Request/response DTOs live alongside their respective handlers so tests
// and documentation share the same ground truth.
package http
