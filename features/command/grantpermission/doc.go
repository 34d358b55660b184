// Package grantpermission implements the Grant Permission use case used by the admin CLI.
//
// Granting a permission the user already holds, explicitly or as superuser, is an idempotent no-op.
package grantpermission
