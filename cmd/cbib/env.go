package main

import "os"

// envContact reads the doi.org contact address from the environment.
func envContact() string {
	return os.Getenv("CBIB_CONTACT")
}
