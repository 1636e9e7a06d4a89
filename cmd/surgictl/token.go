package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/surgishop-scanner/pkg/config"
	"github.com/jhoicas/surgishop-scanner/pkg/jwt"
)

func newTokenCmd() *cobra.Command {
	var (
		userID  string
		role    string
		minutes int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT para el ERP (rol system), un administrador o un escáner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch role {
			case jwt.RoleAdmin, jwt.RoleSystem, jwt.RoleUser:
			default:
				return fmt.Errorf("rol desconocido %q (admin, system o user)", role)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if userID == "" {
				userID = uuid.NewString()
			}
			if minutes <= 0 {
				minutes = cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(cfg.JWT.Secret, userID, role, cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"user_id": userID, "role": role, "token": tok})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user_id del token (por defecto un UUID nuevo)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleSystem, "rol: admin, system o user")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
