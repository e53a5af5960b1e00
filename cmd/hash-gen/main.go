package main

import (
	"fmt"
	"log"
	"os"

	"event-portal.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

// hash-gen produces a bcrypt hash suitable for the ADMIN_PASS_HASH
// environment variable, so the admin password need not live in plain text.

func resolvePassword(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "acmvitap"
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	password := resolvePassword(os.Args[1:])

	printfFn("Generating hash for password: %s\n", password)

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
	}

	printfFn("ADMIN_PASS_HASH=%s\n", hash)
}
