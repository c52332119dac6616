package main

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/service"
	"fmt"

	"github.com/spf13/cobra"
)

func newTeacherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teacher",
		Short: "Manage teacher accounts",
	}
	cmd.AddCommand(newTeacherAddCmd(), newHashPasswordsCmd())
	return cmd
}

func newTeacherAddCmd() *cobra.Command {
	var (
		name     string
		email    string
		password string
		role     string
		hash     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a teacher account",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := model.TeacherRole(role)
			if r != model.RoleTeacher && r != model.RoleAdmin {
				return fmt.Errorf("invalid role %q", role)
			}

			_, db, err := openDB(false)
			if err != nil {
				return err
			}
			defer closeDB(db)

			auth := service.NewAuthService(repository.NewTeacherRepository(db))
			t, err := auth.CreateTeacher(cmd.Context(), name, email, password, r, hash)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "teacher created: id=%d email=%s role=%s\n", t.ID, t.Email, t.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	cmd.Flags().StringVar(&role, "role", string(model.RoleTeacher), "teacher or admin")
	cmd.Flags().BoolVar(&hash, "hash", false, "store the password as a bcrypt hash")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newHashPasswordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passwords",
		Short: "Replace every plaintext teacher password with a bcrypt hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB(false)
			if err != nil {
				return err
			}
			defer closeDB(db)

			auth := service.NewAuthService(repository.NewTeacherRepository(db))
			n, err := auth.HashLegacyPasswords(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "hashed %d passwords\n", n)
			return nil
		},
	}
}
