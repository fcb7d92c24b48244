// Package auth protects the API with a shared key sent in the X-API-Key header.
package auth
