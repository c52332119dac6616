package util

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeCSV = "text/csv"
)
