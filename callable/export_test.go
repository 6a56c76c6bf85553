package callable

// ResetIDs restarts the id counter. Tests only.
func ResetIDs() { lastID.Store(0) }
