package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := []byte("admin") // 你要设置的密码
	hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("ID: %s\n", uuid.NewString())
	fmt.Printf("Email: admin@example.com\n")
	fmt.Printf("Hashed Password: %s\n", string(hashedPassword))
}

// INSERT INTO users (id, email, password_hash, display_name, role, created_at, updated_at)
// VALUES ('<上面打印的 ID>', 'admin@example.com', '<上面打印的哈希>', 'Admin', 'admin', strftime('%Y-%m-%d %H:%M:%S', 'now'), strftime('%Y-%m-%d %H:%M:%S', 'now'));
