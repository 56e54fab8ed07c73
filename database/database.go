package database

// Capability identifies one operation an annotation database supports. The
// host application reads the declared capabilities to decide which UI
// affordances to enable for the adapter.
type Capability string

const (
	// CapabilityGet - the adapter returns annotation strings for a feature.
	CapabilityGet Capability = "get"
	// CapabilityAnnotate - the adapter accepts user-submitted annotations.
	CapabilityAnnotate Capability = "annotate"
	// CapabilityEnrichment - the adapter runs statistical enrichment queries
	// over groups of features.
	CapabilityEnrichment Capability = "enrichment"
)

// AnnotationTypeOther selects the default (black) color for a list entry in
// the host display.
const AnnotationTypeOther = "other"

// Detail keys recognised by the host.
const (
	DetailKeyUnirefID       = "unirefid"
	DetailKeyAnnotationType = "annotationtype"
)

// AnnotationDetail carries the machine-readable part of an annotation. It
// contains at least the annotationtype key; adapters may add keys for their
// own use.
type AnnotationDetail map[string]string

// AnnotationEntry pairs annotation details with a display summary line.
type AnnotationEntry struct {
	Detail  AnnotationDetail `json:"detail"`
	Summary string           `json:"summary"`
}

// Database is the contract a feature annotation source implements for the
// host application.
type Database interface {
	// Name returns the unique identifier for this adapter.
	Name() string

	// Capabilities returns the operations this adapter supports.
	Capabilities() []Capability

	// GetAnnotationStrings returns display summaries of the annotations for
	// a feature, identifier echo first.
	GetAnnotationStrings(feature string) ([]AnnotationEntry, error)

	// ShowAnnotationInfo opens an external viewer for an annotation. The
	// argument is the feature identifier string.
	ShowAnnotationInfo(annotation string) error
}

// Supports reports whether db declares the given capability.
func Supports(db Database, c Capability) bool {
	for _, declared := range db.Capabilities() {
		if declared == c {
			return true
		}
	}
	return false
}
