package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"recipe-box/domain"
	"recipe-box/internal/utils"
	"recipe-box/pkg/digest"

	"github.com/spf13/cobra"
)

var digestCmd = &cobra.Command{
	Use:   "digest <file.json|->",
	Short: "Import one recipe with its ingredients and instructions",
	Long: `Import a recipe payload in one transaction and print the result envelope.

The payload has the same shape as POST /api/v1/recipes/digest. Use "-" to read
it from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runDigest,
}

func runDigest(cmd *cobra.Command, args []string) error {
	raw, err := readPayload(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db)

	service := digest.NewDigestService(digest.NewDigestRepository(db), utils.InitValidator())
	recipe, err := digestPayload(cmd.Context(), service, raw)
	result := domain.Envelope(recipe, err, domain.MessageFailedDigestRecipe)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(result); encErr != nil {
		return encErr
	}
	if err != nil {
		return errReported
	}
	return nil
}

func readPayload(stdin io.Reader, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return raw, nil
}

func digestPayload(ctx context.Context, service digest.DigestService, raw []byte) (domain.Recipe, error) {
	var req domain.DigestRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return domain.Recipe{}, domain.NewValidationError("invalid recipe JSON: %s", err.Error())
	}
	return service.DigestRecipe(ctx, req)
}
