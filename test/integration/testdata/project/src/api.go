package api

// remind: 2001/02/03 remove v1 handlers
func V1() {}

	// remind: 2998/07/08 migrate to v3
// remind: no date here
