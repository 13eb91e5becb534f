package common

// DateLayout
const (
	DateFormatYYYYMMDD          = "2006-01-02"
	DateFormatDDMMYYYYWithSlash = "02/01/2006"
)

// TIMEZONE
const (
	TimezoneBuenosAires = "America/Argentina/Buenos_Aires"
)
