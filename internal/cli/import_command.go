// filepath: internal/cli/import_command.go
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"payinfo/internal/logging"
	"payinfo/internal/models"
	"payinfo/internal/services"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newImportCommand() *cobra.Command {
	var file string

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Load payment infos from a JSON or YAML file",
		Long: `Reads a file with a top-level 'payment_infos' list and stores every entry.
Entries are validated like API writes. Existing reference ids are replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			imp, err := readImportFile(file)
			if err != nil {
				return err
			}

			repo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			svc := services.NewPaymentInfoService(repo, cfg.Retention)
			stored, err := importPaymentInfos(cmd.Context(), svc, imp.PaymentInfos)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d payment info(s) from %s\n", stored, len(imp.PaymentInfos), file)
			return err
		},
	}

	importCmd.Flags().StringVar(&file, "file", "", "Path to a .json, .yaml or .yml file.")
	importCmd.Flags().String("db-path", "", "Path to the SQLite database file. (Env: PAYINFO_DATABASE_PATH)")
	importCmd.Flags().String("retention", "", "How long imported payment infos stay valid. (Env: PAYINFO_HOUSEKEEPING_RETENTION)")
	_ = importCmd.MarkFlagRequired("file")

	return importCmd
}

// readImportFile decodes path according to its extension.
func readImportFile(path string) (*models.PaymentInfoImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	var imp models.PaymentInfoImport
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &imp)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &imp)
	default:
		return nil, fmt.Errorf("unsupported import file type '%s' (want .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse import file %s: %w", path, err)
	}
	return &imp, nil
}

// importPaymentInfos stores every entry and keeps going past invalid ones.
// It returns the number stored and the joined errors of the rest.
func importPaymentInfos(ctx context.Context, svc services.PaymentInfoService, infos []models.PaymentInfo) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	stored := 0
	for i, info := range infos {
		result, err := svc.StorePaymentInfo(ctx, info)
		if err != nil {
			logging.Log.Warnf("Import: entry %d ('%s') rejected: %v", i, info.ReferenceID, err)
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		logging.Log.Debugf("Import: stored '%s'", result.ReferenceID)
		stored++
	}
	return stored, errors.Join(errs...)
}
