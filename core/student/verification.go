package student

// ToggleVerified flips "true" to "false". Anything else becomes "true".
func ToggleVerified(v string) string {
	if v == Verified {
		return Unverified
	}
	return Verified
}

// ApplyVerification returns a copy of `students` where every record matching
// `target` (see Student.SameAs) carries `verified`. No other field changes.
// Call it only once the backend accepted the update.
func ApplyVerification(students []Student, target Student, verified string) []Student {
	updated := make([]Student, len(students))
	for i, s := range students {
		if s.SameAs(target) {
			s.Verified = verified
		}
		updated[i] = s
	}
	return updated
}
