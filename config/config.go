// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	App           AppConfig
	Storage       StorageConfig
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// StorageConfig holds the flat-file layout. Every entity and ledger lives
// in its own file under DataDir; names default to the layout the data files
// were originally created with.
type StorageConfig struct {
	DataDir string

	StudentsFile       string
	TeachersFile       string
	StaffFile          string
	TimetableFile      string
	AttendanceFile     string
	TermReportsFile    string
	AssignmentsFile    string
	FeesLedgerFile     string
	LeaveRequestsFile  string
	ParentRequestsFile string
	FeeChallansFile    string
	SalaryPaymentsFile string
	GradesFile         string
}

// Path returns the full path of a configured file name.
func (s StorageConfig) Path(name string) string {
	return filepath.Join(s.DataDir, name)
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel string // debug, info, warn, error
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "school-records-hub"),
			Environment: Environment(getEnv("APP_ENV", "development")),
			Debug:       getEnvBool("APP_DEBUG", false),
			Version:     getEnv("APP_VERSION", "0.1.0"),
		},
		Storage: StorageConfig{
			DataDir:            getEnv("DATA_DIR", "."),
			StudentsFile:       getEnv("STUDENTS_FILE", "students.txt"),
			TeachersFile:       getEnv("TEACHERS_FILE", "teachers.txt"),
			StaffFile:          getEnv("STAFF_FILE", "staff.txt"),
			TimetableFile:      getEnv("TIMETABLE_FILE", "timetable.txt"),
			AttendanceFile:     getEnv("ATTENDANCE_FILE", "attendance.txt"),
			TermReportsFile:    getEnv("TERM_REPORTS_FILE", "termReports.txt"),
			AssignmentsFile:    getEnv("ASSIGNMENTS_FILE", "assignments_due.txt"),
			FeesLedgerFile:     getEnv("FEES_LEDGER_FILE", "fees_ledger.txt"),
			LeaveRequestsFile:  getEnv("LEAVE_REQUESTS_FILE", "leave_requests.txt"),
			ParentRequestsFile: getEnv("PARENT_REQUESTS_FILE", "parent_requests.txt"),
			FeeChallansFile:    getEnv("FEE_CHALLANS_FILE", "fee_challans.txt"),
			SalaryPaymentsFile: getEnv("SALARY_PAYMENTS_FILE", "salary_payments.txt"),
			GradesFile:         getEnv("GRADES_FILE", "grades.txt"),
		},
		Observability: ObservabilityConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Storage.DataDir == "" {
		errs = append(errs, "DATA_DIR cannot be empty")
	}
	switch c.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, "APP_ENV must be development or production")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
