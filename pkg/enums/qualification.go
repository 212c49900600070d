package enums

import "fmt"

// QualificationType identifies what kind of work a warehouse worker is certified for.
// The wire contract uses the same uppercase values.
type QualificationType string

const (
	QualificationBasicWorker QualificationType = "BASIC_WORKER"
	QualificationCargoDriver QualificationType = "CARGO_DRIVER"
	QualificationEngineer    QualificationType = "ENGINEER"
)

var validQualificationTypes = []QualificationType{
	QualificationBasicWorker,
	QualificationCargoDriver,
	QualificationEngineer,
}

// QualificationTypes returns all defined qualification types in assignment order.
func QualificationTypes() []QualificationType {
	return append([]QualificationType(nil), validQualificationTypes...)
}

// String implements fmt.Stringer.
func (q QualificationType) String() string {
	return string(q)
}

// IsValid reports whether the value is one of the defined qualification types.
func (q QualificationType) IsValid() bool {
	for _, candidate := range validQualificationTypes {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQualificationType converts raw input into QualificationType.
func ParseQualificationType(value string) (QualificationType, error) {
	for _, candidate := range validQualificationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid qualification type %q", value)
}
