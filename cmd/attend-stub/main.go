// attend-stub runs the in-memory stub of the attendance service for local
// development. All state is lost when the process exits.
package main

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Shivam2709/attendance-cli/internal/stubserver"
)

type envConfig struct {
	Addr       string `env:"ADDR" env-default:":8080"`
	JWTSecret  string `env:"JWT_SECRET" env-default:"dev-secret"`
	AdminEmail string `env:"ADMIN_EMAIL" env-default:"admin@example.com"`
}

func main() {
	var cfg envConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read env: %v", err)
	}

	srv := stubserver.NewServer(stubserver.Config{
		JWTSecret:  cfg.JWTSecret,
		AdminEmail: cfg.AdminEmail,
	})

	fmt.Printf("attend-stub listening on %s (admin: %s)\n", cfg.Addr, cfg.AdminEmail)
	if err := srv.Run(cfg.Addr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
