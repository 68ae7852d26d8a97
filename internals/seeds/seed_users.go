package seeds

import (
	"context"
	"embed"
	"errors"
	"log"

	"github.com/bytedance/sonic"

	"otm_dashboard/internals/stubapi"
)

//go:embed data
var dataFS embed.FS

type UserSeed struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
	Roles    string `json:"roles"`
}

func SeedUsersFromJSON(ctx context.Context, users stubapi.UserStore, filePath string) error {
	log.Println("📥 Reading user seeds:", filePath)

	file, err := dataFS.ReadFile(filePath)
	if err != nil {
		return err
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		if _, err := users.FindUser(ctx, data.UserName); err == nil {
			log.Printf("ℹ️ User '%s' already exists, skipped.", data.UserName)
			continue
		} else if !errors.Is(err, stubapi.ErrNotFound) {
			return err
		}

		// 🔐 hash before storing
		hashed, err := stubapi.HashPassword(data.Password)
		if err != nil {
			return err
		}
		u := &stubapi.UserModel{UserName: data.UserName, Password: hashed, Roles: data.Roles}
		if err := users.SaveUser(ctx, u); err != nil {
			log.Printf("❌ Failed to insert user '%s': %v", data.UserName, err)
			return err
		}
		log.Printf("✅ Inserted user '%s'", data.UserName)
	}
	return nil
}
