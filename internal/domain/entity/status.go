package entity

import "time"

// Status is the diagnostic snapshot served by the status endpoint.
type Status struct {
	UpdatedAt    time.Time
	Dependencies StatusDependencies
}

// StatusDependencies groups the external dependencies reported in Status.
type StatusDependencies struct {
	Database DatabaseStatus
}

// DatabaseStatus describes the relational store.
type DatabaseStatus struct {
	Version           string
	MaxConnections    int
	OpenedConnections int
}

// Migration is one schema migration known to the migrator.
type Migration struct {
	Path      string // Source file path inside the migrations directory.
	Name      string // File name without version prefix or extension.
	Timestamp int64  // Version number, a creation timestamp.
}
