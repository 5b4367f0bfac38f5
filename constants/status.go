package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusProcessing JobStatus = "processing" // initial, set at creation
	JobStatusCompleted  JobStatus = "completed"  // terminal success
	JobStatusError      JobStatus = "error"      // terminal failure
)

// FactureStatus is the canonical status for rows in factures.
type FactureStatus string

const (
	FactureStatusProcessed FactureStatus = "traite"
	FactureStatusError     FactureStatus = "erreur"
)

// Confidence marks whether a product line passed arithmetic cross-validation.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// Roles for users.role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
