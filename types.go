package main

import "time"

// Status classifies the outcome of updating a single repository.
type Status string

const (
	StatusNotARepo Status = "Not a Git repository"
	StatusFailed   Status = "Failed"
	StatusUpToDate Status = "Up-to-date"
	StatusSuccess  Status = "Success"
	StatusTimeout  Status = "Timeout"
	StatusError    Status = "Error"
)

// UpdateResult is the outcome of one repository's update for one run.
type UpdateResult struct {
	Repo   string
	Status Status
	Detail string
}

// Config carries everything the tool needs. Components receive it (or the
// fields they need) explicitly; there is no ambient global state.
type Config struct {
	Root      string
	CacheFile string
	Workers   int
	Refresh   bool
	Timeout   time.Duration
}
