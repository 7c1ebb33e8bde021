// Package notify delivers alerts and digests to the notification
// boundary over NATS.
//
// The engine itself never renders user-facing text; it publishes
// structured JSON that downstream notification services (push, email,
// in-app) subscribe to and render per locale. Subjects are scoped per
// household:
//
//	fairshare.household.<householdID>.alerts
//	fairshare.household.<householdID>.digest
//
// A no-op publisher is provided for embedding the engine without a
// notification pipeline.
package notify
