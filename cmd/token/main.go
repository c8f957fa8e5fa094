// Command token mints an API token for an operator.
//
//	token -subject ops -role ADMIN
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/spec-kit/seller-service/internal/api/dto"
	"github.com/spec-kit/seller-service/internal/auth"
	"github.com/spec-kit/seller-service/internal/config"
	"github.com/spec-kit/seller-service/internal/domain"
)

func main() {
	subject := flag.String("subject", "", "operator identifier recorded in the token")
	role := flag.String("role", string(domain.RoleViewer), "ADMIN or VIEWER")
	flag.Parse()

	if *subject == "" {
		log.Fatal("-subject is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	token, exp, err := tokens.GenerateToken(*subject, domain.Role(strings.ToUpper(*role)))
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.AuthResponse{Token: token, ExpiresAt: exp}); err != nil {
		log.Fatalf("failed to write token: %v", err)
	}
}
