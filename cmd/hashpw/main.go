// Command hashpw prints a bcrypt hash suitable for API_PASSWORD_HASH.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/roomdesk/meeting-room-backend/internal/auth"
)

func main() {
	cost := flag.Int("cost", 0, "bcrypt cost (0 selects the default)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: hashpw [-cost N] <password>")
	}

	hasher := auth.NewBcryptPasswordHasher(*cost)
	hash, err := hasher.Hash(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	fmt.Println(hash)
}
