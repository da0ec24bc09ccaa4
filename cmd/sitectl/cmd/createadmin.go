package cmd

import (
	"fmt"

	"mosaic-media/internal/auth"
	"mosaic-media/internal/db"

	"github.com/spf13/cobra"
)

var adminEmail string
var adminPassword string

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Creates an admin account for the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminEmail == "" || adminPassword == "" {
			return fmt.Errorf("--email and --password are required")
		}
		if err := auth.ValidatePassword(adminPassword); err != nil {
			return err
		}

		database, err := db.New(appConfig.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		admin, err := database.CreateUser(adminEmail, hash, "admin")
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		fmt.Printf("Admin created: id=%d email=%s role=%s\n", admin.ID, admin.Email, admin.Role)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (min 8 characters)")
	rootCmd.AddCommand(createAdminCmd)
}
