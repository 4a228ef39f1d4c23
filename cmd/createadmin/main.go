package main

import (
	"flag"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-saas/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-saas/internal/db"
	"github.com/BruksfildServices01/barber-saas/internal/models"
)

// Cria o super admin da plataforma. Uso:
//
//	createadmin -name "Fulano" -email admin@example.com -password segredo
func main() {
	name := flag.String("name", "", "nome do admin")
	email := flag.String("email", "", "e-mail de login")
	password := flag.String("password", "", "senha")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("uso: createadmin -name ... -email ... -password ...")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	normalized := strings.ToLower(strings.TrimSpace(*email))

	var count int64
	db.Model(&models.SuperAdmin{}).Where("email = ?", normalized).Count(&count)
	if count > 0 {
		log.Fatalf("admin %s já existe", normalized)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.SuperAdmin{
		Name:         *name,
		Email:        normalized,
		PasswordHash: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin %q criado", admin.Email)
}
