package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/goassets/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "goassets-cli",
		Short:         "GoAssets CLI tool",
		Long:          `A command line interface for interacting with the GoAssets API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoAssets API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(saveCmd(), averageCmd())
	return rootCmd
}

func saveCmd() *cobra.Command {
	var assets []string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Save an assets list, replacing the previous one",
		Example: `  goassets-cli save --asset id_1=5 --asset id_2=10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.SaveAssetsListRequest{Assets: make([]dto.AssetRequest, 0, len(assets))}
			for _, raw := range assets {
				asset, err := parseAsset(raw)
				if err != nil {
					return err
				}
				req.Assets = append(req.Assets, asset)
			}

			body, err := json.Marshal(req)
			if err != nil {
				return err
			}

			resp, err := newClient().Post(baseURL+"/asset", "application/json", bytes.NewReader(body))
			if err != nil {
				return fmt.Errorf("error making request: %w", err)
			}
			defer resp.Body.Close()

			return printResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringArrayVar(&assets, "asset", nil, "Asset as id=interest_rate (repeatable)")
	return cmd
}

func averageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "average",
		Short: "Show the average interest rate of the saved list",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Get(baseURL + "/interest_rate")
			if err != nil {
				return fmt.Errorf("error making request: %w", err)
			}
			defer resp.Body.Close()

			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
}

func newClient() *http.Client {
	return &http.Client{Timeout: timeout}
}

// parseAsset parses "id=rate".
func parseAsset(raw string) (dto.AssetRequest, error) {
	id, rateStr, ok := strings.Cut(raw, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return dto.AssetRequest{}, fmt.Errorf("invalid asset %q: want id=interest_rate", raw)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
	if err != nil {
		return dto.AssetRequest{}, fmt.Errorf("invalid interest rate in %q: %w", raw, err)
	}

	return dto.AssetRequest{ID: &id, InterestRate: &rate}, nil
}

func printResponse(w io.Writer, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status: %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	out.WriteByte('\n')

	_, err = out.WriteTo(w)
	return err
}
