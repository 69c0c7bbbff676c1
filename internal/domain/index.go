package domain

import "time"

// SyncStats holds statistics from a cache sync operation
type SyncStats struct {
	SynsetsStored   int
	NounsStored     int
	HypernymsStored int
	Rebuilt         bool
	Duration        time.Duration
}
