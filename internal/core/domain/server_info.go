// Package domain holds the core data model shared by all adapters.
package domain

import "time"

// ServerInfo identifies one running workspace server.
//
// WorkspaceRoot is the canonicalized absolute project root and is the unique
// key of the registry. Port is unique among live entries; uniqueness is
// enforced by pruning dead entries before allocation, with the OS exclusive
// bind as the final arbiter.
type ServerInfo struct {
	WorkspaceRoot string    `json:"workspace_root"`
	Port          int       `json:"port"`
	PID           int       `json:"pid"`
	StartedAt     time.Time `json:"started_at"`
	LastActivity  time.Time `json:"last_activity"`
}

// RegistryDoc is the persisted shape of the server registry,
// a single JSON document under the user-scoped metadata directory.
type RegistryDoc struct {
	Servers []ServerInfo `json:"servers"`
}
