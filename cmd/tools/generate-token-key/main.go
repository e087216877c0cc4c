package main

import (
	"fmt"
	"log"

	"github.com/forumapi-dev/forumapi/internal/jwt"
)

func main() {
	accessKey, err := jwt.GenerateKey()
	if err != nil {
		log.Fatalf("Failed to generate access token key: %v", err)
	}
	refreshKey, err := jwt.GenerateKey()
	if err != nil {
		log.Fatalf("Failed to generate refresh token key: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Println("  Token signing keys (HS256)")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("Add these to your config/private.yaml:")
	fmt.Printf("access_token_key: \"%s\"\n", accessKey)
	fmt.Printf("refresh_token_key: \"%s\"\n", refreshKey)
	fmt.Println()
	fmt.Println("Rotating a key logs out every holder of a token signed with it.")
	fmt.Println("=================================================")
}
