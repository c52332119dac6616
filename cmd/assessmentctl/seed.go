package main

import (
	"assessment_backend/internal/repository"
	"assessment_backend/internal/service"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo category, presentation, students and teacher",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return errors.New("--confirm is required to write demo data")
			}

			cfg, db, err := openDB(true)
			if err != nil {
				return err
			}
			defer closeDB(db)

			presentations := repository.NewPresentationRepository(db)
			seeder := &service.SeedService{
				Presentations: service.NewPresentationService(presentations, true, cfg.Location()),
				Assessments:   repository.NewAssessmentRepository(db),
				Students:      repository.NewStudentRepository(db),
				Auth:          service.NewAuthService(repository.NewTeacherRepository(db)),
			}

			res, err := seeder.Seed(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "category id:     %d\n", res.CategoryID)
			fmt.Fprintf(out, "presentation id: %d\n", res.PresentationID)
			fmt.Fprintf(out, "teacher login:   %s / teacher123\n", res.TeacherEmail)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm writing demo data")
	return cmd
}
