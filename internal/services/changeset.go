// Package services is the data access layer: typed CRUD per collection with
// uniqueness enforcement. Updates take partial change sets keyed by the wire
// field names and report how many rows they touched; an update or delete
// against a missing id is a zero-effect success, not an error.
package services

// filterChanges maps wire field names to column names and drops anything not
// in the whitelist. Unknown keys in a change set are ignored rather than
// rejected, matching the tolerant update contract.
func filterChanges(changes map[string]interface{}, columns map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(changes))
	for key, value := range changes {
		if col, ok := columns[key]; ok {
			out[col] = value
		}
	}
	return out
}
