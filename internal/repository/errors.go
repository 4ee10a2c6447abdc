// Package repository persists ledger snapshots in MySQL.  Sentinel
// errors defined here let callers tell an empty table apart from a
// database failure.
package repository

import "errors"

// ErrNoSnapshot is returned by Latest when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot stored")
