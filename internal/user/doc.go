// Package user defines the stored user record, its exposable profile
// projection, and the PostgreSQL repository for it.
package user
