package models

// JobFlag holds the worker command line of one job run.
type JobFlag struct {
	JobName string
	Version string
	Date    string
	Month   int
	BatchID int64
}
