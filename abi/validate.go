package abi

// ValidateSchema reports whether every parameter in schema falls into
// exactly one of the recognized shape classes (including tuples, whose
// members are validated recursively). Validation is a prerequisite of
// every other public operation in this package; all of them report
// failure if the schema they're given does not validate.
func ValidateSchema(schema Schema) bool {
	for _, p := range schema {
		if classify(p) == ShapeInvalid {
			return false
		}
	}
	return true
}
