package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/surgishop-scanner/internal/application/dto"
	"github.com/jhoicas/surgishop-scanner/internal/application/scanner"
	"github.com/jhoicas/surgishop-scanner/internal/application/settings"
	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/domain/gs1"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/memory"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/postgres"
)

// parsedCode salida de "gs1 parse".
type parsedCode struct {
	GTIN       string               `json:"gtin"`
	Expiry     string               `json:"expiry,omitempty"`
	ExpiryDate string               `json:"expiry_date,omitempty"`
	Lot        string               `json:"lot,omitempty"`
	Serial     string               `json:"serial,omitempty"`
	Batch      string               `json:"batch,omitempty"`
	Resolution *dto.BatchResolution `json:"resolution,omitempty"`
	Warnings   []string             `json:"warnings,omitempty"`
}

func newGS1Cmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gs1",
		Short: "Utilidades para códigos GS1",
	}
	cmd.AddCommand(newGS1ParseCmd(opts))
	return cmd
}

func newGS1ParseCmd(opts *rootOptions) *cobra.Command {
	var (
		itemCode string
		template string
		resolve  bool
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "parse <código>",
		Short: "Interpreta un código GS1 y, opcionalmente, lo resuelve a un lote",
		Example: `  surgictl gs1 parse "(01)09506000134352(17)260630(10)LOT7" --item ITEM-001
  surgictl gs1 parse "01095060001343521726063010LOT7" --item ITEM-001 --resolve --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := gs1.Parse(gs1.Sanitize(args[0]))
			if err != nil {
				return err
			}
			out := parsedCode{GTIN: res.GTIN, Expiry: res.Expiry, Lot: res.Lot, Serial: res.Serial}
			if res.Expiry != "" {
				if t, err := gs1.ParseExpiry(res.Expiry); err == nil {
					out.ExpiryDate = t.Format(time.DateOnly)
				} else {
					out.Warnings = append(out.Warnings, err.Error())
				}
			}
			if itemCode != "" && res.Lot != "" {
				out.Batch = gs1.BatchID(template, itemCode, res.Lot)
			}

			if resolve {
				if dryRun && itemCode == "" {
					return fmt.Errorf("--dry-run requiere --item")
				}
				uc, cleanup, err := newResolver(cmd, opts, dryRun, itemCode, res.GTIN, template)
				if err != nil {
					return err
				}
				defer cleanup()
				r, err := uc.Resolve(cmd.Context(), scanner.ResolveBatchInput{
					GTIN:     res.GTIN,
					Expiry:   res.Expiry,
					Lot:      res.Lot,
					ItemCode: itemCode,
				})
				if err != nil {
					return err
				}
				out.Resolution = r
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&itemCode, "item", "", "código del artículo (opcional)")
	cmd.Flags().StringVar(&template, "template", entity.BatchNamingItemLot, "plantilla de nombre de lote ({item}-{lot} o {lot})")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "resolver el lote (crea o completa el vencimiento)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "resolver en memoria sin tocar la base de datos")
	return cmd
}

// newResolver arma el caso de uso sobre memoria (dry-run) o PostgreSQL.
func newResolver(cmd *cobra.Command, opts *rootOptions, dryRun bool, itemCode, gtin, template string) (*scanner.ResolveBatchUseCase, func(), error) {
	if dryRun {
		s := entity.DefaultSettings()
		s.BatchNamingTemplate = template
		items := memory.NewItemRepo()
		items.AddItem(entity.Item{Code: itemCode, HasBatchNo: true}, gtin)
		resolver := settings.NewResolver(memory.NewSettingsRepo(&s), nil, 0, zerolog.Nop())
		tx := &memory.TxRunner{Batches: memory.NewBatchRepo()}
		return scanner.NewResolveBatchUseCase(resolver, items, tx, nil, zerolog.Nop()), func() {}, nil
	}

	cfg, log, err := loadEnv(opts)
	if err != nil {
		return nil, nil, err
	}
	pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	resolver := settings.NewResolver(postgres.NewSettingsRepository(pool), nil, 0, log.Component("settings"))
	uc := scanner.NewResolveBatchUseCase(resolver, postgres.NewItemRepository(pool), postgres.NewTxRunner(pool), nil, log.Component("scanner"))
	return uc, pool.Close, nil
}
