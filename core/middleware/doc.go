// Package middleware groups the fiber middleware mounted by the start command.
//
//   - rayid: assigns each request an X-Ray-ID and stores it for request loggers.
//   - auth: rejects requests without the configured X-API-Key. Disabled when no key is set.
//
// rayid is registered first so that auth failures are logged with a ray id.
package middleware
