package health

import (
	"fmt"
	"runtime"
	"time"

	"gorm.io/gorm"
)

// Status represents the overall health of the application
type Status struct {
	Status    string                 `json:"status"` // "healthy", "degraded"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]interface{} `json:"checks"`
	Duration  int64                  `json:"duration_ms"`
}

// ComponentHealth represents health of a single component
type ComponentHealth struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// Checker provides health check functionality
type Checker struct {
	db        *gorm.DB
	version   string
	startTime time.Time
}

// NewChecker creates a new health checker
func NewChecker(db *gorm.DB, version string) *Checker {
	return &Checker{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// Check performs a complete health check
func (hc *Checker) Check() Status {
	start := time.Now()
	status := Status{
		Timestamp: start,
		Version:   hc.version,
		Checks:    make(map[string]interface{}),
	}

	dbCheck := hc.checkDatabase()
	status.Checks["database"] = dbCheck

	goroutineCount := runtime.NumGoroutine()
	status.Checks["goroutines"] = map[string]interface{}{
		"count":   goroutineCount,
		"healthy": goroutineCount < 10000,
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memoryMB := m.Alloc / 1024 / 1024
	status.Checks["memory"] = map[string]interface{}{
		"healthy":      memoryMB < 500,
		"allocated_mb": memoryMB,
		"num_gc":       m.NumGC,
	}

	status.Checks["uptime_seconds"] = int64(time.Since(hc.startTime).Seconds())

	if dbCheck.Healthy && goroutineCount < 10000 && memoryMB < 500 {
		status.Status = "healthy"
	} else {
		status.Status = "degraded"
	}

	status.Duration = time.Since(start).Milliseconds()
	return status
}

// checkDatabase verifies database connectivity
func (hc *Checker) checkDatabase() ComponentHealth {
	if hc.db == nil {
		return ComponentHealth{Healthy: false, Error: "database not initialized"}
	}

	sqlDB, err := hc.db.DB()
	if err != nil {
		return ComponentHealth{
			Healthy: false,
			Error:   fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return ComponentHealth{
			Healthy: false,
			Error:   fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return ComponentHealth{Healthy: true}
}

// IsReady returns true if system is ready to serve traffic
func (hc *Checker) IsReady() bool {
	return hc.checkDatabase().Healthy
}

// IsAlive returns true if system is running
func (hc *Checker) IsAlive() bool {
	return true
}
