package models

// ModelRegistry lists every model included in auto-migration.
// Register new models here so --auto-migrate picks them up.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
	&PitchSubmission{},
}
